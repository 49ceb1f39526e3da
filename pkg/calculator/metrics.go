package calculator

import (
	prom "github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "calcinput"

type metrics struct {
	evaluations *prom.CounterVec
	fieldEvents *prom.CounterVec
}

func newMetrics(reg prom.Registerer) (*metrics, error) {
	m := &metrics{
		evaluations: prom.NewCounterVec(prom.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "evaluations_total",
			Help:      "Number of evaluated expressions by RPC and outcome.",
		}, []string{"rpc", "outcome"}),
		fieldEvents: prom.NewCounterVec(prom.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "field_events_total",
			Help:      "Number of field events applied by kind.",
		}, []string{"kind"}),
	}

	for _, c := range []prom.Collector{m.evaluations, m.fieldEvents} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *metrics) observeEvaluation(rpc string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "invalid"
	}
	m.evaluations.WithLabelValues(rpc, outcome).Inc()
}
