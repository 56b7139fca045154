// Copyright (c) 2026 The Blakecoin Community developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cpuminer

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the prometheus collectors the miner updates while running.
// The collectors are created unregistered so that multiple miner instances
// (as in tests) do not collide; call Register to expose them.
type Metrics struct {
	// HashesCompleted counts every header hash attempted.
	HashesCompleted prometheus.Counter

	// HashesPerSecond reports the smoothed hash rate from the speed
	// monitor.
	HashesPerSecond prometheus.Gauge

	// HeadersSolved counts accepted solutions.
	HeadersSolved prometheus.Counter
}

func newMetrics() *Metrics {
	return &Metrics{
		HashesCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "blakecoind",
			Subsystem: "cpuminer",
			Name:      "hashes_total",
			Help:      "Total number of header hashes attempted.",
		}),
		HashesPerSecond: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "blakecoind",
			Subsystem: "cpuminer",
			Name:      "hashes_per_second",
			Help:      "Smoothed hash rate reported by the speed monitor.",
		}),
		HeadersSolved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "blakecoind",
			Subsystem: "cpuminer",
			Name:      "headers_solved_total",
			Help:      "Number of solved headers accepted by the chain.",
		}),
	}
}

// Register attaches the miner collectors to the given registry.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		m.HashesCompleted, m.HashesPerSecond, m.HeadersSolved,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Metrics returns the collectors updated by this miner instance.
func (miner *CPUMiner) Metrics() *Metrics {
	return miner.metrics
}
