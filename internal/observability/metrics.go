// Package observability exposes Prometheus metrics for sweep runs: how
// each algorithm's watermark, blocking, and utilization evolve across
// trials, served on a /metrics handler while a sweep is in flight.
package observability

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SweepCollector bundles the Prometheus metrics of a sweep run.
type SweepCollector struct {
	gatherer prometheus.Gatherer

	Trials  *prometheus.CounterVec
	Demands *prometheus.CounterVec

	Watermark           *prometheus.GaugeVec
	BlockingProbability *prometheus.GaugeVec
	Utilization         *prometheus.GaugeVec
}

// NewSweepCollector registers the sweep metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
// Re-registering identical collectors is tolerated so repeated sweeps
// within one process share the same series.
func NewSweepCollector(reg prometheus.Registerer) (*SweepCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	trials, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "eon_trials_total",
		Help: "Completed trials, labeled by algorithm.",
	}, []string{"algorithm"}), "eon_trials_total")
	if err != nil {
		return nil, err
	}

	demands, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "eon_demands_total",
		Help: "Placed demands, labeled by algorithm and outcome (committed or blocked).",
	}, []string{"algorithm", "outcome"}), "eon_demands_total")
	if err != nil {
		return nil, err
	}

	watermark, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "eon_watermark_slots",
		Help: "Final spectrum watermark of the most recent trial, per algorithm.",
	}, []string{"algorithm"}), "eon_watermark_slots")
	if err != nil {
		return nil, err
	}

	blocking, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "eon_blocking_probability",
		Help: "Blocking probability of the most recent trial, per algorithm.",
	}, []string{"algorithm"}), "eon_blocking_probability")
	if err != nil {
		return nil, err
	}

	utilization, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "eon_utilization",
		Help: "Spectrum cell utilization of the most recent trial, per algorithm.",
	}, []string{"algorithm"}), "eon_utilization")
	if err != nil {
		return nil, err
	}

	return &SweepCollector{
		gatherer:            gatherer,
		Trials:              trials,
		Demands:             demands,
		Watermark:           watermark,
		BlockingProbability: blocking,
		Utilization:         utilization,
	}, nil
}

// ObserveTrial records one finished trial for one algorithm.
func (c *SweepCollector) ObserveTrial(algorithm string, successful, blocked, watermark int, blocking, utilization float64) {
	if c == nil {
		return
	}
	c.Trials.WithLabelValues(algorithm).Inc()
	c.Demands.WithLabelValues(algorithm, "committed").Add(float64(successful))
	c.Demands.WithLabelValues(algorithm, "blocked").Add(float64(blocked))
	c.Watermark.WithLabelValues(algorithm).Set(float64(watermark))
	c.BlockingProbability.WithLabelValues(algorithm).Set(blocking)
	c.Utilization.WithLabelValues(algorithm).Set(utilization)
}

// Handler exposes a ready-to-use /metrics handler.
func (c *SweepCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGaugeVec(reg prometheus.Registerer, vec *prometheus.GaugeVec, name string) (*prometheus.GaugeVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.GaugeVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}
