// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen1d draws temperature and humidity readings as two 1D bars on
// the terminal (stdout) using ANSI color codes.
//
// Useful to watch a sensor from a shell without setting up a dashboard.
package screen1d

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/GermanBionicSystems/humiture/sht3x"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// Opts represents the options available for this display.
type Opts struct {
	// X is the width of each bar, in cells.
	X       int
	Palette *ansi256.Palette

	_ struct{}
}

// Dev renders readings to the console.
type Dev struct {
	w       io.Writer
	l       int
	palette ansi256.Palette

	buf bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) (*Dev, error) {
	return NewWriter(colorable.NewColorableStdout(), opts)
}

// NewWriter returns a Dev that writes its escape sequences to w.
func NewWriter(w io.Writer, opts *Opts) (*Dev, error) {
	if opts.X <= 0 {
		return nil, errors.New("screen1d: bar width must be > 0")
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	return &Dev{w: w, l: opts.X, palette: *p}, nil
}

func (d *Dev) String() string {
	return "Screen1D"
}

// Halt implements conn.Resource.
//
// It ends the line and resets the colors so the terminal is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Draw overwrites the current line with r.
func (d *Dev) Draw(r sht3x.Reading) error {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	t := fraction(r.Temperature, sht3x.MinTemperature, sht3x.MaxTemperature)
	d.bar(t, temperatureColor(t))
	_, _ = d.buf.WriteString("\033[0m ")
	h := fraction(r.Humidity, sht3x.MinHumidity, sht3x.MaxHumidity)
	d.bar(h, humidityColor(h))
	_, _ = fmt.Fprintf(&d.buf, "\033[0m %6.2f°C %6.2f%%RH", r.Temperature, r.Humidity)
	_, err := d.buf.WriteTo(d.w)
	return err
}

// bar writes f*X colored cells followed by blanks.
func (d *Dev) bar(f float64, c color.NRGBA) {
	n := int(f*float64(d.l) + 0.5)
	block := d.palette.Block(c)
	for i := 0; i < d.l; i++ {
		if i < n {
			_, _ = io.WriteString(&d.buf, block)
		} else {
			_, _ = d.buf.WriteString("\033[0m ")
		}
	}
}

// fraction maps v from [min, max] to [0, 1].
func fraction(v, min, max float64) float64 {
	f := (v - min) / (max - min)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// temperatureColor goes from blue (cold) to red (hot).
func temperatureColor(f float64) color.NRGBA {
	return color.NRGBA{uint8(255 * f), 0, uint8(255 * (1 - f)), 255}
}

// humidityColor goes from white (dry) to blue (wet).
func humidityColor(f float64) color.NRGBA {
	return color.NRGBA{uint8(255 * (1 - f)), uint8(255 * (1 - f)), 255, 255}
}

var _ fmt.Stringer = &Dev{}
