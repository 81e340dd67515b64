package metrics

import "github.com/prometheus/client_golang/prometheus"

// Filter engine Prometheus metrics, labelled by record kind ("product", "user").
var (
	FilterEvaluationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog",
			Name:      "filter_evaluations_total",
			Help:      "Total number of filter engine evaluations",
		},
		[]string{"kind"},
	)

	FilterMatchedRatio = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "catalog",
			Name:      "filter_matched_ratio",
			Help:      "Fraction of records passing a filter evaluation",
			Buckets:   []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1},
		},
		[]string{"kind"},
	)

	FilterActiveOptions = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "catalog",
			Name:      "filter_active_options",
			Help:      "Number of facet options selected per evaluation",
			Buckets:   []float64{0, 1, 2, 3, 5, 8},
		},
		[]string{"kind"},
	)
)

var filterMetricsRegistered bool

// RegisterFilterMetrics registers Prometheus filter metrics. Must be called once from main.
func RegisterFilterMetrics() {
	if filterMetricsRegistered {
		return
	}
	prometheus.MustRegister(FilterEvaluationsTotal)
	prometheus.MustRegister(FilterMatchedRatio)
	prometheus.MustRegister(FilterActiveOptions)
	filterMetricsRegistered = true
}

// ObserveFilter records one filter evaluation.
func ObserveFilter(kind string, total, matched, activeOptions int) {
	FilterEvaluationsTotal.WithLabelValues(kind).Inc()
	ratio := 1.0
	if total > 0 {
		ratio = float64(matched) / float64(total)
	}
	FilterMatchedRatio.WithLabelValues(kind).Observe(ratio)
	FilterActiveOptions.WithLabelValues(kind).Observe(float64(activeOptions))
}
