// SPDX-License-Identifier: MIT

package observe

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvbip/bip"
)

// Metrics exports search progress as Prometheus collectors:
//
//	<ns>_search_nodes_opened_total
//	<ns>_search_nodes_closed_total{reason}
//	<ns>_search_incumbent_value
//	<ns>_solves_total{algo,outcome}
//	<ns>_solve_duration_seconds{algo}
//
// The node collectors are fed by the listener callbacks; the solve
// collectors by ObserveReport. As a listener a Metrics serves one solve at
// a time: the incumbent gauge is set from the bound of the last
// NodeBounded call. Concurrent solves sharing the collectors each attach
// their own m.Run().
type Metrics struct {
	opened    prometheus.Counter
	closed    *prometheus.CounterVec
	incumbent prometheus.Gauge
	solves    *prometheus.CounterVec
	duration  *prometheus.HistogramVec

	lastBound atomic.Int64
}

// NewMetrics creates the collectors and registers them with reg.
// It panics if registration fails (e.g., duplicate namespace on reg).
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	m := &Metrics{
		opened: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "nodes_opened_total",
			Help:      "Search nodes opened.",
		}),
		closed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "nodes_closed_total",
			Help:      "Search nodes closed, by reason.",
		}, []string{"reason"}),
		incumbent: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "incumbent_value",
			Help:      "Objective value of the latest incumbent.",
		}),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Finished solver runs, by algorithm and outcome.",
		}, []string{"algo", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock time of solver runs.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"algo"}),
	}
	reg.MustRegister(m.opened, m.closed, m.incumbent, m.solves, m.duration)

	return m
}

// NodeOpened implements bip.NodeListener.
func (m *Metrics) NodeOpened(int, int, []int8) { m.opened.Inc() }

// NodeBounded implements bip.BoundObserver.
func (m *Metrics) NodeBounded(_ int, _ []int8, bound, _ int64, _ bool) {
	m.lastBound.Store(bound)
}

// NodeClosed implements bip.NodeListener.
func (m *Metrics) NodeClosed(_ int, reason bip.CloseReason) {
	m.closed.WithLabelValues(reason.String()).Inc()
	if reason == bip.ReasonNewCandidate {
		m.incumbent.Set(float64(m.lastBound.Load()))
	}
}

// Run is a per-solve listener feeding the collectors of a shared Metrics.
// Its bound tracking is private to one solve, so runs may proceed in
// parallel. A Run must not be attached to two solves at once.
type Run struct {
	m         *Metrics
	lastBound int64
}

// Run returns a fresh listener for one solve.
func (m *Metrics) Run() *Run { return &Run{m: m} }

// NodeOpened implements bip.NodeListener.
func (r *Run) NodeOpened(int, int, []int8) { r.m.opened.Inc() }

// NodeBounded implements bip.BoundObserver.
func (r *Run) NodeBounded(_ int, _ []int8, bound, _ int64, _ bool) { r.lastBound = bound }

// NodeClosed implements bip.NodeListener.
func (r *Run) NodeClosed(_ int, reason bip.CloseReason) {
	r.m.closed.WithLabelValues(reason.String()).Inc()
	if reason == bip.ReasonNewCandidate {
		r.m.incumbent.Set(float64(r.lastBound))
	}
}

// Opened returns the opened-nodes counter.
func (m *Metrics) Opened() prometheus.Counter { return m.opened }

// Closed returns the closed-nodes counter for reason.
func (m *Metrics) Closed(reason bip.CloseReason) prometheus.Counter {
	return m.closed.WithLabelValues(reason.String())
}

// Incumbent returns the incumbent-value gauge.
func (m *Metrics) Incumbent() prometheus.Gauge { return m.incumbent }

// ObserveReport records one finished run. outcome is one of optimal,
// infeasible, interrupted or error.
func (m *Metrics) ObserveReport(rep bip.Report, err error) {
	algo := rep.Algo.String()
	m.solves.WithLabelValues(algo, outcome(rep, err)).Inc()
	m.duration.WithLabelValues(algo).Observe(rep.Elapsed.Seconds())
}

func outcome(rep bip.Report, err error) string {
	switch {
	case errors.Is(err, bip.ErrTimeLimit),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return "interrupted"
	case err != nil:
		return "error"
	case rep.Success:
		return "optimal"
	default:
		return "infeasible"
	}
}

var (
	_ bip.NodeListener  = (*Metrics)(nil)
	_ bip.BoundObserver = (*Metrics)(nil)
	_ bip.NodeListener  = (*Run)(nil)
	_ bip.BoundObserver = (*Run)(nil)
)
