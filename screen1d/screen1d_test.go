// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package screen1d

import (
	"bytes"
	"strings"
	"testing"

	"github.com/GermanBionicSystems/humiture/sht3x"
	"github.com/maruel/ansi256"
)

func TestDraw(t *testing.T) {
	var buf bytes.Buffer
	d, err := NewWriter(&buf, &Opts{X: 10})
	if err != nil {
		t.Fatal(err)
	}
	if err = d.Draw(sht3x.Reading{Temperature: 23.32, Humidity: 50}); err != nil {
		t.Fatal(err)
	}
	s := buf.String()
	if !strings.HasPrefix(s, "\r\033[0m") {
		t.Errorf("line not rewound: %q", s)
	}
	if !strings.HasSuffix(s, " 23.32°C  50.00%RH") {
		t.Errorf("unexpected text: %q", s)
	}
	// Half the humidity bar is filled.
	block := ansi256.Default.Block(humidityColor(0.5))
	if n := strings.Count(s, block); n < 5 {
		t.Errorf("found %d humidity blocks, expected at least 5", n)
	}

	buf.Reset()
	if err = d.Halt(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "\n\033[0m" {
		t.Errorf("unexpected Halt() output %q", buf.String())
	}
}

func TestFraction(t *testing.T) {
	var tests = []struct {
		v, min, max, want float64
	}{
		{50, 0, 100, 0.5},
		{-50, 0, 100, 0},
		{150, 0, 100, 1},
		{-20, -20, 125, 0},
		{125, -20, 125, 1},
	}
	for _, test := range tests {
		if got := fraction(test.v, test.min, test.max); got != test.want {
			t.Errorf("fraction(%f, %f, %f)=%f expected %f", test.v, test.min, test.max, got, test.want)
		}
	}
}

func TestNewInvalid(t *testing.T) {
	if _, err := NewWriter(&bytes.Buffer{}, &Opts{}); err == nil {
		t.Error("zero width accepted")
	}
}
