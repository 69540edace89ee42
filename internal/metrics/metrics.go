// SPDX-License-Identifier: MIT

// Package metrics exposes length-engine and verification counters through
// Prometheus collectors registered on a caller-supplied registry.
package metrics

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Collector records engine timings and verification outcomes.
// It satisfies verify.Recorder.
type Collector struct {
	computations *prometheus.CounterVec
	durations    *prometheus.HistogramVec
	checks       prometheus.Counter
	mismatches   prometheus.Counter
	gatherer     prometheus.Gatherer
}

// New creates a Collector and registers it on reg.
func New(reg *prometheus.Registry) (*Collector, error) {
	c := &Collector{
		computations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lsys_length_computations_total",
				Help: "Total number of length computations by method",
			},
			[]string{"method"},
		),
		durations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lsys_length_computation_seconds",
				Help:    "Duration of length computations by method",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
			},
			[]string{"method"},
		),
		checks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lsys_verify_checks_total",
			Help: "Total number of (grammar, n) pairs compared",
		}),
		mismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lsys_verify_mismatches_total",
			Help: "Total number of disagreements between the two methods",
		}),
		gatherer: reg,
	}
	for _, col := range []prometheus.Collector{c.computations, c.durations, c.checks, c.mismatches} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// ObserveComputation records one computation of method taking d.
func (c *Collector) ObserveComputation(method string, d time.Duration) {
	c.computations.WithLabelValues(method).Inc()
	c.durations.WithLabelValues(method).Observe(d.Seconds())
}

// ObserveCheck records one compared pair.
func (c *Collector) ObserveCheck(ok bool) {
	c.checks.Inc()
	if !ok {
		c.mismatches.Inc()
	}
}

// Summary is a flattened view of the collected values.
type Summary struct {
	Method       string
	Computations uint64
	TotalSeconds float64
}

// Summaries returns per-method totals gathered from the registry, sorted by method.
func (c *Collector) Summaries() ([]Summary, error) {
	families, err := c.gatherer.Gather()
	if err != nil {
		return nil, fmt.Errorf("metrics: gather: %w", err)
	}
	byMethod := map[string]*Summary{}
	for _, mf := range families {
		if mf.GetName() != "lsys_length_computation_seconds" {
			continue
		}
		for _, m := range mf.GetMetric() {
			method := labelValue(m, "method")
			byMethod[method] = &Summary{
				Method:       method,
				Computations: m.GetHistogram().GetSampleCount(),
				TotalSeconds: m.GetHistogram().GetSampleSum(),
			}
		}
	}
	out := make([]Summary, 0, len(byMethod))
	for _, s := range byMethod {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Method < out[j].Method })

	return out, nil
}

// WriteText dumps every lsys_* sample as "name{labels} value" lines.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.gatherer.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var v float64
			switch {
			case m.GetCounter() != nil:
				v = m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				v = float64(m.GetHistogram().GetSampleCount())
			default:
				continue
			}
			if _, err := fmt.Fprintf(w, "%s%s %g\n", mf.GetName(), labels(m), v); err != nil {
				return err
			}
		}
	}

	return nil
}

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}

	return ""
}

func labels(m *dto.Metric) string {
	if len(m.GetLabel()) == 0 {
		return ""
	}
	s := "{"
	for i, lp := range m.GetLabel() {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue())
	}

	return s + "}"
}
