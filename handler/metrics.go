package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/next-trace/scg-errhandler/classify"
)

type metrics struct {
	handled *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	return &metrics{
		handled: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "errhandler",
			Name:      "errors_total",
			Help:      "Total number of failures handled, by severity category.",
		}, []string{"category"}),
	}
}

func (m *metrics) observe(c classify.Category) {
	if m == nil {
		return
	}

	m.handled.WithLabelValues(c.String()).Inc()
}
