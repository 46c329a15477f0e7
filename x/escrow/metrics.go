package escrow

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsSink counts escrow events by kind.
type MetricsSink struct {
	events *prometheus.CounterVec
}

// NewMetricsSink creates the escrow counters and registers them.
func NewMetricsSink(reg prometheus.Registerer) (*MetricsSink, error) {
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lockbox",
		Subsystem: "escrow",
		Name:      "events_total",
		Help:      "Number of escrow events, by kind.",
	}, []string{"kind"})
	if err := reg.Register(events); err != nil {
		return nil, err
	}
	return &MetricsSink{events: events}, nil
}

func (s *MetricsSink) Emit(_ context.Context, e Event) {
	s.events.WithLabelValues(e.Kind.String()).Inc()
}
