// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains functions used across multiple packages. For
// example, a CRC8 calculation
package common

// CRC8Init is the initial value Sensirion and TI sensors seed the CRC with.
const CRC8Init byte = 0xff

// CRC8 calculates the 8-bit CRC of the byte slice parameter and returns the
// calculated value. CRC bytes are used in sensors from TI and Sensirion.
func CRC8(bytes []byte) byte {
	return CRC8WithInit(bytes, CRC8Init)
}

// CRC8WithInit calculates the CRC-8 (polynomial 0x31, MSB first) of bytes
// starting from init. Nothing is reflected and there is no final XOR.
func CRC8WithInit(bytes []byte, init byte) byte {
	crc := init
	for _, val := range bytes {
		crc ^= val
		for range 8 {
			if (crc & 0x80) == 0 {
				crc <<= 1
			} else {
				crc = (byte)((crc << 1) ^ 0x31)
			}
		}
	}
	return crc
}

// CheckCRC8 returns true if crc is the CRC8 of bytes.
func CheckCRC8(bytes []byte, crc byte) bool {
	return CRC8(bytes) == crc
}
