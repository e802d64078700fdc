// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sht3x

import (
	"sync"
	"time"
)

// DefaultPeriod is the minimum measurement interval used until a mode is
// selected, and for any mode the registry doesn't know. It matches the
// medium repeatability, 4 mps mode.
const DefaultPeriod = 250 * time.Millisecond

// Minimum interval between measurements, keyed by the high byte of the mode
// select command.
var modePeriods = map[byte]time.Duration{
	0x20: 2 * time.Second,
	0x21: time.Second,
	0x22: 500 * time.Millisecond,
	0x24: 250 * time.Millisecond,
	0x27: 100 * time.Millisecond,
}

// PeriodFor returns the minimum measurement interval for a mode select
// command high byte. Unknown values return DefaultPeriod.
func PeriodFor(highByte byte) time.Duration {
	if p, ok := modePeriods[highByte]; ok {
		return p
	}
	return DefaultPeriod
}

// ModeRegistry holds the measurement period of the currently selected mode.
// The last Set wins. A registry may be shared by several devices through
// Opts.Registry, in which case they all observe the last mode any of them
// selected.
type ModeRegistry struct {
	mu     sync.Mutex
	period time.Duration
}

// NewModeRegistry returns a registry set to DefaultPeriod.
func NewModeRegistry() *ModeRegistry {
	return &ModeRegistry{period: DefaultPeriod}
}

// Period returns the configured minimum measurement interval.
func (r *ModeRegistry) Period() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.period == 0 {
		return DefaultPeriod
	}
	return r.period
}

// Set records the period for the mode whose command high byte is highByte.
func (r *ModeRegistry) Set(highByte byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.period = PeriodFor(highByte)
}
