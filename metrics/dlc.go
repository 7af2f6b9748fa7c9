// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import "github.com/prometheus/client_golang/prometheus"

// ConsensusMetrics holds the Prometheus collectors for round outcome
// counts, slashing by reason, per-round emission, and a reorg-depth
// histogram (see the Metrics entry in SPEC_FULL.md's AMBIENT STACK). The
// round engine updates all of them except ReorgDepth, which is registered
// but never observed.
type ConsensusMetrics struct {
	RoundsFinalized  prometheus.Counter
	RoundsEmpty      prometheus.Counter
	SlashesByReason  *prometheus.CounterVec
	EmissionPerRound prometheus.Gauge
	ReorgDepth       prometheus.Histogram
}

// NewConsensusMetrics builds and registers a ConsensusMetrics against reg.
func NewConsensusMetrics(reg prometheus.Registerer) (*ConsensusMetrics, error) {
	m := &ConsensusMetrics{
		RoundsFinalized: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dlc_rounds_finalized_total",
			Help: "Total number of rounds that reached Finalized state.",
		}),
		RoundsEmpty: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dlc_rounds_empty_total",
			Help: "Total number of rounds that closed with no accepted proposal.",
		}),
		SlashesByReason: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dlc_slashes_total",
			Help: "Total number of slashing events, partitioned by evidence kind.",
		}, []string{"reason"}),
		EmissionPerRound: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dlc_emission_per_round",
			Help: "Amount issued in the most recently finalized round, in micro-IPN.",
		}),
		ReorgDepth: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dlc_reorg_depth_rounds",
			Help:    "Depth, in rounds, of each accepted finalization reorg.",
			Buckets: prometheus.LinearBuckets(0, 1, 8),
		}),
	}

	collectors := []prometheus.Collector{
		m.RoundsFinalized, m.RoundsEmpty, m.SlashesByReason, m.EmissionPerRound, m.ReorgDepth,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
