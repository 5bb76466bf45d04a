package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "covid_http_requests_total",
		Help: "HTTP requests by route and status code",
	}, []string{"method", "route", "code"})
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "covid_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"method", "route"})
	ChartRendersTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "covid_chart_renders_total",
		Help: "Charts rendered, cache misses only",
	}, []string{"kind"})
	ChartCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "covid_chart_cache_hits_total",
		Help: "Chart cache hits",
	})
	ChartCacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "covid_chart_cache_misses_total",
		Help: "Chart cache misses",
	})
	DatasetRows = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "covid_dataset_rows",
		Help: "Rows in the current dataset snapshot",
	})
	DatasetReloadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "covid_dataset_reloads_total",
		Help: "Dataset loads by outcome",
	}, []string{"status"})
	ExportsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "covid_exports_total",
		Help: "Table exports by mode",
	}, []string{"mode"})
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		ChartRendersTotal,
		ChartCacheHitsTotal,
		ChartCacheMissesTotal,
		DatasetRows,
		DatasetReloadsTotal,
		ExportsTotal,
	)
}

// Handler exposes the default registry for scraping.
func Handler() http.Handler { return promhttp.Handler() }
