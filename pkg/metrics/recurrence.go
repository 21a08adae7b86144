package metrics

import "github.com/prometheus/client_golang/prometheus"

var RecurrenceEvaluationsMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "vista_recurrence_evaluations_total",
		Help: "number of recurrence values computed",
	}, []string{"series"})

var RecurrenceCacheHitsMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "vista_recurrence_cache_hits_total",
		Help: "number of recurrence reads served from the memoization cache",
	}, []string{"series"})

var IndicatorBuildsMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "vista_indicator_builds_total",
		Help: "number of indicator series constructed through the registry",
	}, []string{"indicator"})

func init() {
	prometheus.MustRegister(RecurrenceEvaluationsMetrics, RecurrenceCacheHitsMetrics, IndicatorBuildsMetrics)
}
