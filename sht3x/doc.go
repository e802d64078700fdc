// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package sht3x controls a Sensirion SHT30, SHT31 or SHT35 temperature and
// humidity sensor over I²C.
//
// The sensor either measures on demand ("single shot") or keeps sampling on
// its own at one of five rates ("periodic mode"), in which case the host
// fetches the latest result. Every value the sensor returns is followed by a
// CRC-8 byte; frames that fail the check are rejected with an
// *IntegrityError, and conversions that fall outside -20..125°C or 0..100%RH
// are rejected with a *RangeError rather than clamped.
//
// Single shot reads are rate limited: calling ReadSingleShot again before
// the current mode's measurement period has elapsed returns the previous
// reading without touching the bus. The first read always goes to the bus.
//
// Dev is not meant to be shared between goroutines without care: its
// methods serialize on an internal mutex, but a sequence of calls (select a
// mode, then read) is not atomic.
//
// # Datasheet
//
// https://sensirion.com/media/documents/213E6A3B/63A5A569/Datasheet_SHT3x_DIS.pdf
package sht3x
