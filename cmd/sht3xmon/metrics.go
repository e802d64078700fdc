// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"errors"

	"github.com/GermanBionicSystems/humiture/sht3x"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	temperature prometheus.Gauge
	humidity    prometheus.Gauge
	errors      *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer, addr uint16) *metrics {
	labels := prometheus.Labels{"address": formatAddr(addr)}
	m := &metrics{
		temperature: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "sht3x_temperature_celsius",
			Help:        "Temperature in degrees Celsius",
			ConstLabels: labels,
		}),
		humidity: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "sht3x_relative_humidity_percent",
			Help:        "Relative Humidity percent",
			ConstLabels: labels,
		}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "sht3x_read_errors_total",
			Help:        "Failed reads by kind",
			ConstLabels: labels,
		}, []string{"kind"}),
	}
	reg.MustRegister(m.temperature, m.humidity, m.errors)
	return m
}

func (m *metrics) observe(r sht3x.Reading) {
	m.temperature.Set(r.Temperature)
	m.humidity.Set(r.Humidity)
}

func (m *metrics) fail(err error) {
	m.errors.WithLabelValues(errorKind(err)).Inc()
}

// errorKind classifies a read error for the errors counter.
func errorKind(err error) string {
	var be *sht3x.BusError
	var ie *sht3x.IntegrityError
	var re *sht3x.RangeError
	switch {
	case errors.As(err, &be):
		return "bus"
	case errors.As(err, &ie):
		return "integrity"
	case errors.As(err, &re):
		return "range"
	default:
		return "other"
	}
}
