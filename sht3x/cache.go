// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sht3x

import "time"

// readingCache remembers the last good single shot reading. It starts empty,
// so the first read always goes to the bus.
type readingCache struct {
	last  Reading
	taken time.Time
	valid bool
}

// get returns the cached reading if one exists and less than period has
// elapsed since it was taken.
func (c *readingCache) get(now time.Time, period time.Duration) (Reading, bool) {
	if !c.valid || now.Sub(c.taken) >= period {
		return Reading{}, false
	}
	return c.last, true
}

func (c *readingCache) put(r Reading, now time.Time) {
	c.last = r
	c.taken = now
	c.valid = true
}

func (c *readingCache) reset() {
	*c = readingCache{}
}
