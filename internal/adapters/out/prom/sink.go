// Package prom records dispatch step outcomes in Prometheus metrics. The
// sink is informational only: nothing in the dispatch flow reads it back.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"pizzeria/internal/core/domain/services"
)

// Sink implements the command layer's metrics sink on a Prometheus registry.
type Sink struct {
	ticks       *prometheus.CounterVec
	deliveries  *prometheus.CounterVec
	preemptions prometheus.Counter
	distance    prometheus.Histogram
}

// NewSink registers dispatch metrics on the provided Prometheus registerer.
// If reg is nil, the default registerer is used. If the collectors are already
// registered, the existing ones are reused.
func NewSink(reg prometheus.Registerer) (*Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	ticks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pizzeria_ticks_total",
		Help: "Total number of dispatch steps by outcome",
	}, []string{"outcome"})
	deliveries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pizzeria_deliveries_total",
		Help: "Total number of completed hand-overs by urgency at the hand-over",
	}, []string{"urgency"})
	preemptions := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pizzeria_preemptions_total",
		Help: "Total number of steps where a spoiling order overrode the closest one",
	})
	distance := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "pizzeria_handoff_distance_units",
		Help:    "Distance to the destination measured at successful hand-overs, in world units",
		Buckets: prometheus.LinearBuckets(50, 50, 6),
	})

	if err := reg.Register(ticks); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			ticks = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(deliveries); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			deliveries = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(preemptions); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			preemptions = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(distance); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			distance = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &Sink{
		ticks:       ticks,
		deliveries:  deliveries,
		preemptions: preemptions,
		distance:    distance,
	}, nil
}

// RecordStep counts one dispatch step. Delivered steps additionally feed the
// per-urgency delivery counter and the hand-over distance histogram.
func (s *Sink) RecordStep(result services.StepResult) {
	s.ticks.WithLabelValues(result.Outcome.String()).Inc()

	if result.Preempted {
		s.preemptions.Inc()
	}

	if result.Outcome == services.OutcomeDelivered {
		s.deliveries.WithLabelValues(result.Urgency.String()).Inc()
		s.distance.Observe(result.Distance)
	}
}
