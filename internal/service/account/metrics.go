package account

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Metrics counts ledger operations by outcome on a private registry.
type Metrics struct {
	reg *prometheus.Registry
	ops *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	ops := promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bank",
			Name:      "operations_total",
			Help:      "Total number of ledger operations",
		},
		[]string{"op", "outcome"},
	)
	return &Metrics{reg: reg, ops: ops}
}

// Registry exposes the underlying registry, e.g. for testutil.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

func (m *Metrics) observe(op string, err error) {
	if m == nil {
		return
	}
	m.ops.WithLabelValues(op, outcome(err)).Inc()
}

// Totals gathers the counters keyed "op/outcome".
func (m *Metrics) Totals() (map[string]float64, error) {
	out := map[string]float64{}
	if m == nil {
		return out, nil
	}
	families, err := m.reg.Gather()
	if err != nil {
		return nil, err
	}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			key := labelValue(metric, "op") + "/" + labelValue(metric, "outcome")
			out[key] += metric.GetCounter().GetValue()
		}
	}
	return out, nil
}

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}
