// SPDX-License-Identifier: MIT

package median

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Phase label values of the distance counter.
const (
	PhaseSetMedian   = "set_median"
	PhaseLocalSearch = "local_search"
)

// Metrics holds the Prometheus collectors updated by Compute and SetMedian.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	distances  *prometheus.CounterVec
	candidates prometheus.Counter
	aborts     prometheus.Counter
	moves      prometheus.Counter
	epochs     prometheus.Counter
	bestSum    prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
// It panics if a collector with the same name is already registered on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		distances: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "strmean",
			Name:      "distance_computations_total",
			Help:      "Pairwise edit distances computed",
		}, []string{"phase"}),
		candidates: f.NewCounter(prometheus.CounterOpts{
			Namespace: "strmean",
			Subsystem: "search",
			Name:      "candidates_evaluated_total",
			Help:      "Candidate strings evaluated against the sample set",
		}),
		aborts: f.NewCounter(prometheus.CounterOpts{
			Namespace: "strmean",
			Subsystem: "search",
			Name:      "early_aborts_total",
			Help:      "Candidate evaluations stopped by the incumbent threshold",
		}),
		moves: f.NewCounter(prometheus.CounterOpts{
			Namespace: "strmean",
			Subsystem: "search",
			Name:      "moves_accepted_total",
			Help:      "Improving operations accepted",
		}),
		epochs: f.NewCounter(prometheus.CounterOpts{
			Namespace: "strmean",
			Subsystem: "search",
			Name:      "epochs_total",
			Help:      "Local-search epochs run",
		}),
		bestSum: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "strmean",
			Subsystem: "search",
			Name:      "best_sum_distance",
			Help:      "Sum of distances of the latest incumbent",
		}),
	}
}

func (m *Metrics) addDistances(phase string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.distances.WithLabelValues(phase).Add(float64(n))
}

func (m *Metrics) candidate(aborted bool) {
	if m == nil {
		return
	}
	m.candidates.Inc()
	if aborted {
		m.aborts.Inc()
	}
}

func (m *Metrics) move(sum float64) {
	if m == nil {
		return
	}
	m.moves.Inc()
	m.bestSum.Set(sum)
}

func (m *Metrics) epoch() {
	if m == nil {
		return
	}
	m.epochs.Inc()
}

func (m *Metrics) incumbent(sum float64) {
	if m == nil {
		return
	}
	m.bestSum.Set(sum)
}
