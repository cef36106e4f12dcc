// Package metrics exposes prometheus collectors for the interval server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nikmy/intervald/pkg/errors"
)

const namespace = "intervald"

const (
	ResultOK       = "ok"
	ResultEmpty    = "empty"
	ResultRejected = "rejected"
)

type sizer interface {
	Len() int
	Boundaries() int
}

type Metrics struct {
	commands    *prometheus.CounterVec
	accepted    prometheus.Counter
	connections prometheus.Gauge
}

// New registers the server collectors on reg. Index size gauges are read
// from index at scrape time.
func New(reg prometheus.Registerer, index sizer) (*Metrics, error) {
	m := &Metrics{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Commands handled, by verb and result.",
		}, []string{"verb", "result"}),
		accepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "connections_accepted_total",
			Help:      "Connections accepted since start.",
		}),
		connections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "connections_active",
			Help:      "Connections currently served.",
		}),
	}

	collectors := []prometheus.Collector{
		m.commands,
		m.accepted,
		m.connections,
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "intervals",
			Help:      "Intervals stored in the index.",
		}, func() float64 { return float64(index.Len()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "boundaries",
			Help:      "Distinct interval boundaries in the index.",
		}, func() float64 { return float64(index.Boundaries()) }),
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, errors.WrapFail(err, "register collector")
		}
	}

	return m, nil
}

func (m *Metrics) Command(verb, result string) {
	if verb == "" {
		verb = "unknown"
	}
	m.commands.WithLabelValues(verb, result).Inc()
}

func (m *Metrics) ConnOpened() {
	m.accepted.Inc()
	m.connections.Inc()
}

func (m *Metrics) ConnClosed() {
	m.connections.Dec()
}
