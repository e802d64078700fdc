// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package humiture is a container for humidity and temperature sensor
// drivers and the tools built on them.
//
// The Sensirion SHT3x driver lives in package sht3x.
package humiture
