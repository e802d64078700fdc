// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sht3x

import (
	"fmt"
	"time"
)

// Command is a 16-bit command word. It is sent most significant byte first.
type Command uint16

const (
	CmdSoftReset    Command = 0x30a2
	CmdStopPeriodic Command = 0x3093
	// Accelerated response time. Switches periodic acquisition to 4 mps.
	CmdART          Command = 0x2b32
	CmdFetch        Command = 0xe000
	CmdHeaterOn     Command = 0x306d
	CmdHeaterOff    Command = 0x3066
	CmdReadStatus   Command = 0xf32d
	CmdClearStatus  Command = 0x3041
	CmdSerialNumber Command = 0x3780
)

// Encode returns the wire representation of c.
func (c Command) Encode() [2]byte {
	return [2]byte{byte(c >> 8), byte(c)}
}

// HighByte returns the most significant byte of the command word. For a
// mode select command it identifies the measurement rate.
func (c Command) HighByte() byte {
	return byte(c >> 8)
}

func (c Command) String() string {
	return fmt.Sprintf("0x%04x", uint16(c))
}

// Mode is a periodic acquisition command. The high byte selects the
// measurement rate, the low byte the repeatability.
type Mode Command

const (
	// 0.5 measurements per second.
	ModeHalfHertzHigh   Mode = 0x2032
	ModeHalfHertzMedium Mode = 0x2024
	ModeHalfHertzLow    Mode = 0x202f

	// 1 measurement per second.
	ModeHertzHigh   Mode = 0x2130
	ModeHertzMedium Mode = 0x2126
	ModeHertzLow    Mode = 0x212d

	// 2 measurements per second.
	ModeTwoHertzHigh   Mode = 0x2236
	ModeTwoHertzMedium Mode = 0x2220
	ModeTwoHertzLow    Mode = 0x222b

	// 4 measurements per second.
	ModeFourHertzHigh   Mode = 0x2334
	ModeFourHertzMedium Mode = 0x2322
	ModeFourHertzLow    Mode = 0x2329

	// 10 measurements per second.
	ModeTenHertzHigh   Mode = 0x2737
	ModeTenHertzMedium Mode = 0x2721
	ModeTenHertzLow    Mode = 0x272a
)

// Modes lists every periodic acquisition command the sensor accepts.
var Modes = []Mode{
	ModeHalfHertzHigh, ModeHalfHertzMedium, ModeHalfHertzLow,
	ModeHertzHigh, ModeHertzMedium, ModeHertzLow,
	ModeTwoHertzHigh, ModeTwoHertzMedium, ModeTwoHertzLow,
	ModeFourHertzHigh, ModeFourHertzMedium, ModeFourHertzLow,
	ModeTenHertzHigh, ModeTenHertzMedium, ModeTenHertzLow,
}

func (m Mode) String() string {
	return Command(m).String()
}

// Repeatability selects the accuracy of a single shot measurement. Higher
// repeatability takes longer.
type Repeatability int

const (
	RepeatabilityHigh Repeatability = iota
	RepeatabilityMedium
	RepeatabilityLow
)

// Single shot measurement, clock stretching disabled.
var singleShotCommands = []Command{0x2400, 0x240b, 0x2416}

// Maximum measurement duration, from the datasheet.
var singleShotDurations = []time.Duration{
	15500 * time.Microsecond,
	6500 * time.Microsecond,
	4500 * time.Microsecond,
}

func (r Repeatability) valid() bool {
	return r >= RepeatabilityHigh && r <= RepeatabilityLow
}

func (r Repeatability) String() string {
	switch r {
	case RepeatabilityHigh:
		return "high"
	case RepeatabilityMedium:
		return "medium"
	case RepeatabilityLow:
		return "low"
	default:
		return fmt.Sprintf("Repeatability(%d)", int(r))
	}
}
