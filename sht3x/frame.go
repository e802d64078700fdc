// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sht3x

import "github.com/GermanBionicSystems/humiture/common"

// FrameSize is the length of a measurement response. Two 16-bit words, each
// followed by its CRC.
const FrameSize = 6

// Frame is a raw measurement response:
//
//	[value1 msb, value1 lsb, crc1, value2 msb, value2 lsb, crc2]
type Frame [FrameSize]byte

// DecodeFrame splits f into its two words and their transmitted checksums.
// Nothing is validated.
func DecodeFrame(f Frame) (v1 uint16, crc1 byte, v2 uint16, crc2 byte) {
	v1 = uint16(f[0])<<8 | uint16(f[1])
	v2 = uint16(f[3])<<8 | uint16(f[4])
	return v1, f[2], v2, f[5]
}

// Valid returns true if both words match their checksums. Each word's CRC
// is computed on its own, starting from 0xff.
func (f Frame) Valid() bool {
	return f.check() == nil
}

// check returns an *IntegrityError for the first word whose CRC doesn't
// match.
func (f Frame) check() error {
	for word := 0; word < 2; word++ {
		off := 3 * word
		if err := checkWord(f[off:off+3], word); err != nil {
			return err
		}
	}
	return nil
}

// checkWord validates a three byte [msb, lsb, crc] group.
func checkWord(b []byte, word int) error {
	if want := common.CRC8(b[:2]); want != b[2] {
		return &IntegrityError{Word: word, Want: want, Got: b[2]}
	}
	return nil
}
