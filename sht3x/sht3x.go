// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sht3x

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

const (
	// DefaultAddress is the address with the ADDR pin pulled low.
	DefaultAddress uint16 = 0x44
	// AlternateAddress is the address with the ADDR pin pulled high.
	AlternateAddress uint16 = 0x45

	softResetDuration = 2 * time.Millisecond
)

// StatusWord is the content of the sensor status register.
type StatusWord uint16

const (
	// Status flags returned by ReadStatus()
	StatusAlertPending  StatusWord = 1 << 15
	StatusHeaterOn      StatusWord = 1 << 13
	StatusRHAlert       StatusWord = 1 << 11
	StatusTempAlert     StatusWord = 1 << 10
	StatusResetDetected StatusWord = 1 << 4
	// Set if the last command was not processed.
	StatusCommandFailed StatusWord = 1 << 1

	// Set if the checksum of the last write transfer was wrong.
	StatusWriteCRCFailed StatusWord = 1 << 0
)

// Opts holds the configuration options.
type Opts struct {
	// Repeatability of single shot measurements.
	Repeatability Repeatability
	// Registry tracks the selected periodic mode. When nil the device gets
	// its own. Pass the same registry to several devices to share it.
	Registry *ModeRegistry
	// CommitModeOnError records the mode in the registry even when the mode
	// select command could not be sent. Some firmware relies on this.
	CommitModeOnError bool
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Repeatability: RepeatabilityHigh,
}

// Dev is a handle to an initialized SHT3x device.
type Dev struct {
	d        *i2c.Dev
	mu       sync.Mutex
	opts     Opts
	registry *ModeRegistry
	cache    readingCache
	// True while the sensor is in periodic acquisition mode.
	periodic bool
	shutdown chan struct{}
	now      func() time.Time
}

// New returns a device attached to the sensor at addr on bus. opts may be
// nil, in which case DefaultOpts is used. The bus remains owned by the
// caller.
//
// No command is sent, the sensor is assumed to be idle in single shot mode.
func New(bus i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	if addr > 0x7f {
		return nil, &BusError{Op: "attach", Err: fmt.Errorf("invalid 7-bit address 0x%x", addr)}
	}
	if opts == nil {
		opts = &DefaultOpts
	}
	if !opts.Repeatability.valid() {
		return nil, fmt.Errorf("sht3x: invalid repeatability %d", opts.Repeatability)
	}
	dev := &Dev{
		d:        &i2c.Dev{Bus: bus, Addr: addr},
		opts:     *opts,
		registry: opts.Registry,
		now:      time.Now,
	}
	if dev.registry == nil {
		dev.registry = NewModeRegistry()
	}
	return dev, nil
}

// transmit sends a command word.
func (dev *Dev) transmit(cmd Command) error {
	w := cmd.Encode()
	if err := dev.d.Tx(w[:], nil); err != nil {
		return &BusError{Op: "transmit", Cmd: cmd, Err: err}
	}
	return nil
}

// receive reads len(r) bytes from the sensor.
func (dev *Dev) receive(r []byte) error {
	if err := dev.d.Tx(nil, r); err != nil {
		return &BusError{Op: "receive", Err: err}
	}
	return nil
}

// readFrame receives a measurement frame and converts it.
func (dev *Dev) readFrame() (Reading, error) {
	var f Frame
	if err := dev.receive(f[:]); err != nil {
		return Reading{}, err
	}
	return decodeReading(f)
}

// command sends a command that has no response.
func (dev *Dev) command(cmd Command) error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	return dev.transmit(cmd)
}

// SoftReset reboots the sensor into single shot mode.
func (dev *Dev) SoftReset() error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if err := dev.transmit(CmdSoftReset); err != nil {
		return err
	}
	dev.periodic = false
	time.Sleep(softResetDuration)
	return nil
}

// StopPeriodic ends periodic acquisition and returns the sensor to single
// shot mode.
func (dev *Dev) StopPeriodic() error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	return dev.stopPeriodic()
}

func (dev *Dev) stopPeriodic() error {
	if err := dev.transmit(CmdStopPeriodic); err != nil {
		return err
	}
	dev.periodic = false
	return nil
}

// TriggerART starts accelerated response time acquisition, sampling at
// 4Hz. The sensor is in periodic mode afterwards.
func (dev *Dev) TriggerART() error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if err := dev.transmit(CmdART); err != nil {
		return err
	}
	dev.periodic = true
	return nil
}

// SetHeater switches the internal heater on or off. The heater can be used
// to check the sensor, or to drive off condensation.
func (dev *Dev) SetHeater(on bool) error {
	if on {
		return dev.command(CmdHeaterOn)
	}
	return dev.command(CmdHeaterOff)
}

// SetMeasurementMode starts periodic acquisition using mode and records its
// measurement period. Unless Opts.CommitModeOnError is set the period is
// only recorded when the command was sent.
func (dev *Dev) SetMeasurementMode(mode Mode) error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	err := dev.transmit(Command(mode))
	if err == nil {
		dev.periodic = true
	}
	if err == nil || dev.opts.CommitModeOnError {
		dev.registry.Set(Command(mode).HighByte())
	}
	return err
}

// Period returns the minimum interval between single shot bus reads.
func (dev *Dev) Period() time.Duration {
	return dev.registry.Period()
}

// ReadPeriodic fetches the latest periodic acquisition result. It always
// goes to the bus.
func (dev *Dev) ReadPeriodic() (Reading, error) {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if err := dev.transmit(CmdFetch); err != nil {
		return Reading{}, err
	}
	return dev.readFrame()
}

// ReadSingleShot returns a measurement. If the previous successful read is
// more recent than Period(), that reading is returned again and the bus is
// not used. A failed read leaves the previous reading in place.
//
// In periodic mode the latest result is fetched, otherwise a single shot
// measurement is triggered and waited for.
func (dev *Dev) ReadSingleShot() (Reading, error) {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	return dev.readSingleShot()
}

func (dev *Dev) readSingleShot() (Reading, error) {
	now := dev.now()
	if r, ok := dev.cache.get(now, dev.registry.Period()); ok {
		return r, nil
	}
	r, err := dev.measure()
	if err != nil {
		return Reading{}, err
	}
	dev.cache.put(r, now)
	return r, nil
}

func (dev *Dev) measure() (Reading, error) {
	if dev.periodic {
		if err := dev.transmit(CmdFetch); err != nil {
			return Reading{}, err
		}
		return dev.readFrame()
	}
	if err := dev.transmit(singleShotCommands[dev.opts.Repeatability]); err != nil {
		return Reading{}, err
	}
	time.Sleep(singleShotDurations[dev.opts.Repeatability])
	return dev.readFrame()
}

// ReadStatus returns the status register.
func (dev *Dev) ReadStatus() (StatusWord, error) {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if err := dev.transmit(CmdReadStatus); err != nil {
		return 0, err
	}
	r := make([]byte, 3)
	if err := dev.receive(r); err != nil {
		return 0, err
	}
	if err := checkWord(r, 0); err != nil {
		return 0, err
	}
	return StatusWord(uint16(r[0])<<8 | uint16(r[1])), nil
}

// ClearStatus clears the alert and reset flags of the status register.
func (dev *Dev) ClearStatus() error {
	return dev.command(CmdClearStatus)
}

// SerialNumber returns the device serial number set at the factory.
func (dev *Dev) SerialNumber() (uint32, error) {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if err := dev.transmit(CmdSerialNumber); err != nil {
		return 0, err
	}
	var f Frame
	if err := dev.receive(f[:]); err != nil {
		return 0, err
	}
	if err := f.check(); err != nil {
		return 0, err
	}
	hi, _, lo, _ := DecodeFrame(f)
	return uint32(hi)<<16 | uint32(lo), nil
}

// Sense reads temperature and humidity through ReadSingleShot. Implements
// physic.SenseEnv.
func (dev *Dev) Sense(e *physic.Env) error {
	r, err := dev.ReadSingleShot()
	if err != nil {
		e.Temperature = 0
		e.Humidity = 0
		e.Pressure = 0
		return err
	}
	*e = r.Env()
	return nil
}

// SenseContinuous continuously reads from the device and sends the output
// to the returned channel. To terminate the read, call Dev.Halt().
//
// If interval is less than the current mode's period an error is returned.
// Readings that fail are skipped.
func (dev *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	if interval < dev.Period() {
		return nil, errors.New("sht3x: sample interval is < device sample rate")
	}
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if dev.shutdown != nil {
		return nil, errors.New("sht3x: SenseContinuous already running")
	}
	dev.shutdown = make(chan struct{})
	ch := make(chan physic.Env, 16)
	go func(ch chan<- physic.Env, shutdown <-chan struct{}) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		defer close(ch)
		for {
			select {
			case <-shutdown:
				return
			case <-ticker.C:
				env := physic.Env{}
				ok, err := dev.senseUntil(&env, shutdown)
				if !ok {
					return
				}
				if err != nil {
					continue
				}
				select {
				case ch <- env:
				case <-shutdown:
					return
				}
			}
		}
	}(ch, dev.shutdown)
	return ch, nil
}

// senseUntil is Sense for the SenseContinuous loop. It reports false without
// touching the bus once shutdown is closed, which Halt does under dev.mu.
func (dev *Dev) senseUntil(e *physic.Env, shutdown <-chan struct{}) (bool, error) {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	select {
	case <-shutdown:
		return false, nil
	default:
	}
	r, err := dev.readSingleShot()
	if err != nil {
		return true, err
	}
	*e = r.Env()
	return true, nil
}

// Precision returns the smallest change in readings the device can produce.
// Implements physic.SenseEnv.
func (dev *Dev) Precision(e *physic.Env) {
	// One count of the 16 bit raw value.
	e.Temperature = physic.Celsius * 175 / 65535
	e.Humidity = physic.PercentRH * 100 / 65535
	e.Pressure = 0
}

// Halt terminates a running SenseContinuous, stops periodic acquisition if
// it was started and forgets the cached reading. The bus is left open.
// Implements conn.Resource.
func (dev *Dev) Halt() error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if dev.shutdown != nil {
		close(dev.shutdown)
		dev.shutdown = nil
	}
	dev.cache.reset()
	if dev.periodic {
		return dev.stopPeriodic()
	}
	return nil
}

// String returns a string representation of the device.
func (dev *Dev) String() string {
	return fmt.Sprintf("sht3x{%s}", dev.d)
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
