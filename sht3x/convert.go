// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sht3x

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

const (
	// Magic numbers for count to value conversions.
	temperatureOffset float64 = -45.0
	temperatureScalar float64 = 175.0
	humidityScalar    float64 = 100.0
	scaleDivisor      float64 = 65535.0

	// Envelope a valid reading must fall in. Inclusive.
	MinTemperature = -20.0
	MaxTemperature = 125.0
	MinHumidity    = 0.0
	MaxHumidity    = 100.0
)

// Reading is a converted measurement.
type Reading struct {
	// Degrees Celsius.
	Temperature float64
	// Percent relative humidity.
	Humidity float64
}

// ToTemperature converts a raw count to degrees Celsius.
//
//	T = -45 + 175 * count / 65535
func ToTemperature(count uint16) float64 {
	return temperatureOffset + temperatureScalar*float64(count)/scaleDivisor
}

// ToHumidity converts a raw count to percent relative humidity.
//
//	RH = 100 * count / 65535
func ToHumidity(count uint16) float64 {
	return humidityScalar * float64(count) / scaleDivisor
}

// ValidRange returns true if temp is within [-20, 125] and hum within
// [0, 100].
func ValidRange(temp, hum float64) bool {
	return temp >= MinTemperature && temp <= MaxTemperature &&
		hum >= MinHumidity && hum <= MaxHumidity
}

// decodeReading validates f and converts it. The frame must pass both CRC
// checks and the result must be inside the valid envelope.
func decodeReading(f Frame) (Reading, error) {
	if err := f.check(); err != nil {
		return Reading{}, err
	}
	t, _, h, _ := DecodeFrame(f)
	r := Reading{Temperature: ToTemperature(t), Humidity: ToHumidity(h)}
	if !ValidRange(r.Temperature, r.Humidity) {
		return Reading{}, &RangeError{Temperature: r.Temperature, Humidity: r.Humidity}
	}
	return r, nil
}

// Env returns the reading in periph units. Pressure is always 0.
func (r Reading) Env() physic.Env {
	return physic.Env{
		Temperature: physic.ZeroCelsius + physic.Temperature(r.Temperature*float64(physic.Celsius)),
		Humidity:    physic.RelativeHumidity(r.Humidity * float64(physic.PercentRH)),
	}
}

func (r Reading) String() string {
	return fmt.Sprintf("Temperature: %.2f°C Humidity: %.2f%%RH", r.Temperature, r.Humidity)
}
