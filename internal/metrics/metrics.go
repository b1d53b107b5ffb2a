package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "paypal_toolkit"

// Metrics holds the Prometheus collectors of the toolkit
type Metrics struct {
	// Dispatch metrics
	DispatchTotal    *prometheus.CounterVec
	DispatchDuration *prometheus.HistogramVec

	// Tools currently exposed after permission filtering
	ToolsEnabled prometheus.Gauge
}

// New creates the collectors and registers them on reg. Collectors already
// registered by an earlier toolkit on the same registry are shared.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		DispatchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dispatch_total",
				Help:      "Total number of tool dispatches by outcome",
			},
			[]string{"tool", "outcome"},
		),
		DispatchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "dispatch_duration_seconds",
				Help:      "Duration of tool dispatches in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"tool"},
		),
		ToolsEnabled: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "tools_enabled",
				Help:      "Number of tools exposed after permission filtering",
			},
		),
	}

	var err error
	if m.DispatchTotal, err = register(reg, m.DispatchTotal); err != nil {
		return nil, err
	}
	if m.DispatchDuration, err = register(reg, m.DispatchDuration); err != nil {
		return nil, err
	}
	if m.ToolsEnabled, err = register(reg, m.ToolsEnabled); err != nil {
		return nil, err
	}

	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	return c, err
}

// RecordDispatch records one finished dispatch. outcome is the envelope kind.
func (m *Metrics) RecordDispatch(tool, outcome string, d time.Duration) {
	m.DispatchTotal.WithLabelValues(tool, outcome).Inc()
	m.DispatchDuration.WithLabelValues(tool).Observe(d.Seconds())
}
