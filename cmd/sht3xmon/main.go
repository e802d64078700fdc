// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// sht3xmon reads an SHT3x sensor periodically, logs the readings and serves
// them as Prometheus metrics.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/GermanBionicSystems/humiture/screen1d"
	"github.com/GermanBionicSystems/humiture/sht3x"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/multierr"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

var busName = flag.String("bus", "", "I²C bus name, empty for the first one")
var addrFlag = flag.String("addr", "0x44", "Sensor I²C address")
var modeFlag = flag.String("mode", "0x2322", "Periodic mode command, or \"single\" for single shot reads")
var interval = flag.Duration("interval", time.Second, "Read interval")
var promAddr = flag.String("listen", "", "OpenMetrics exporter listening address, empty to disable")
var logLevel = flag.String("loglevel", "INFO", "Log Level")
var barWidth = flag.Int("bar", 0, "Draw readings as terminal bars of this width, 0 to disable")

func main() {
	flag.Parse()
	initLogger(*logLevel)
	if err := mainImpl(); err != nil {
		logger.Error("sht3xmon", slog.Any("err", err))
		os.Exit(1)
	}
}

func mainImpl() (err error) {
	log := getLogger("main")

	addr, err := parseAddr(*addrFlag)
	if err != nil {
		return err
	}
	mode, single, err := parseMode(*modeFlag)
	if err != nil {
		return err
	}

	if _, err = host.Init(); err != nil {
		return fmt.Errorf("i2c initialize error: %w", err)
	}
	bus, err := i2creg.Open(*busName)
	if err != nil {
		return fmt.Errorf("i2cbus error: %w", err)
	}
	defer func() { multierr.AppendInto(&err, bus.Close()) }()

	dev, err := sht3x.New(bus, addr, &sht3x.DefaultOpts)
	if err != nil {
		return err
	}
	defer func() { multierr.AppendInto(&err, dev.Halt()) }()

	if err = dev.SoftReset(); err != nil {
		return err
	}
	if !single {
		if err = dev.SetMeasurementMode(mode); err != nil {
			return err
		}
		log.Info("periodic mode", slog.String("mode", mode.String()), slog.Duration("period", dev.Period()))
	}
	if *interval < dev.Period() {
		log.Warn("interval shorter than the measurement period, readings will repeat",
			slog.Duration("interval", *interval), slog.Duration("period", dev.Period()))
	}

	reg := prometheus.NewRegistry()
	m := newMetrics(reg, addr)
	if *promAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv := &http.Server{Addr: *promAddr, Handler: mux}
		go func() {
			log.Info("serving metrics", slog.String("listen", *promAddr))
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				log.Error("Server stop", slog.Any("err", err))
			}
		}()
		defer func() { multierr.AppendInto(&err, srv.Close()) }()
	}

	var bar *screen1d.Dev
	if *barWidth > 0 {
		if bar, err = screen1d.New(&screen1d.Opts{X: *barWidth}); err != nil {
			return err
		}
		defer func() { multierr.AppendInto(&err, bar.Halt()) }()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return run(ctx, dev, single, m, bar)
}

// run reads the sensor every interval until ctx is done. Read errors are
// logged and counted, the loop keeps going.
func run(ctx context.Context, dev *sht3x.Dev, single bool, m *metrics, bar *screen1d.Dev) error {
	log := getLogger("sht3x")
	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		var r sht3x.Reading
		var err error
		if single {
			r, err = dev.ReadSingleShot()
		} else {
			r, err = dev.ReadPeriodic()
		}
		if err != nil {
			m.fail(err)
			log.Warn("read failed", slog.String("kind", errorKind(err)), slog.Any("err", err))
			continue
		}
		m.observe(r)
		log.Debug("reading", slog.Float64("temperature", r.Temperature), slog.Float64("humidity", r.Humidity))
		if bar != nil {
			if err = bar.Draw(r); err != nil {
				return err
			}
		}
	}
}

func parseAddr(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 7)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return uint16(v), nil
}

func formatAddr(addr uint16) string {
	return fmt.Sprintf("0x%02x", addr)
}

// parseMode accepts a periodic mode command word, or "single".
func parseMode(s string) (sht3x.Mode, bool, error) {
	if s == "single" {
		return 0, true, nil
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, false, fmt.Errorf("invalid mode %q: %w", s, err)
	}
	for _, m := range sht3x.Modes {
		if m == sht3x.Mode(v) {
			return m, false, nil
		}
	}
	return 0, false, fmt.Errorf("unknown periodic mode 0x%04x", v)
}
