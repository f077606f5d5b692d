package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "journal"

type Metrics struct {
	resolutions *prometheus.CounterVec
	records     *prometheus.CounterVec
	appends     prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		resolutions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entity_resolutions_total",
			Help:      "Client and vehicle resolutions by outcome.",
		}, []string{"entity", "outcome"}),
		records: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_created_total",
			Help:      "Journal records created by department.",
		}, []string{"department"}),
		appends: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "comment_appends_total",
			Help:      "Comment blocks appended to existing records.",
		}),
	}
}

func (m *Metrics) EntityResolved(kind, outcome string) {
	m.resolutions.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) RecordCreated(department string) {
	m.records.WithLabelValues(department).Inc()
}

func (m *Metrics) CommentAppended() {
	m.appends.Inc()
}

func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
