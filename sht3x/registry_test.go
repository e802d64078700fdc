// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sht3x

import (
	"testing"
	"time"
)

func TestRegistry(t *testing.T) {
	r := NewModeRegistry()
	if p := r.Period(); p != DefaultPeriod {
		t.Errorf("initial period %s expected %s", p, DefaultPeriod)
	}
	var tests = []struct {
		highByte byte
		period   time.Duration
	}{
		{0x22, 500 * time.Millisecond},
		{0x20, 2 * time.Second},
		{0x21, time.Second},
		{0x24, 250 * time.Millisecond},
		{0x27, 100 * time.Millisecond},
		{0x99, 250 * time.Millisecond},
		{0x23, 250 * time.Millisecond},
	}
	for _, test := range tests {
		r.Set(test.highByte)
		if p := r.Period(); p != test.period {
			t.Errorf("Set(0x%x) Period()=%s expected %s", test.highByte, p, test.period)
		}
	}

	// The zero value behaves like a new registry.
	var zero ModeRegistry
	if p := zero.Period(); p != DefaultPeriod {
		t.Errorf("zero registry period %s expected %s", p, DefaultPeriod)
	}
}

func TestModePeriods(t *testing.T) {
	for _, mode := range Modes {
		p := PeriodFor(Command(mode).HighByte())
		if p < 100*time.Millisecond || p > 2*time.Second {
			t.Errorf("mode %s has period %s", mode, p)
		}
	}
}
