// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sht3x

import "fmt"

// BusError is returned when the I²C transaction itself failed. The driver
// does not retry.
type BusError struct {
	// Op is "transmit", "receive" or "attach".
	Op  string
	Cmd Command
	Err error
}

func (e *BusError) Error() string {
	if e.Op == "receive" {
		return fmt.Sprintf("sht3x: error reading %v", e.Err)
	}
	if e.Op == "attach" {
		return fmt.Sprintf("sht3x: %v", e.Err)
	}
	return fmt.Sprintf("sht3x: error transmitting %s %v", e.Cmd, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}

// IntegrityError is returned when a received word doesn't match its CRC.
type IntegrityError struct {
	// Word is the index of the failing word in the response, 0 or 1.
	Word int
	Want byte
	Got  byte
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("sht3x: word %d crc error, computed 0x%02x received 0x%02x", e.Word, e.Want, e.Got)
}

// RangeError is returned when a reading passed the CRC check but converts
// to a value the sensor cannot produce. It usually indicates bus noise.
type RangeError struct {
	Temperature float64
	Humidity    float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("sht3x: reading out of range, temperature %.3f°C humidity %.3f%%RH", e.Temperature, e.Humidity)
}
