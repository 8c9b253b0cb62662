package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CVResolutions conta as reconciliações por fonte e se o resultado saiu degradado
	CVResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cv_resolutions_total",
		Help: "Total de reconciliações de CV por fonte",
	}, []string{"source", "degraded"})

	// CacheLookups conta acertos e faltas do cache de resultados
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cv_result_cache_lookups_total",
		Help: "Consultas ao cache de resultados por resultado",
	}, []string{"result"})

	// FeedThrottleWaits conta as esperas do limitador por provedor
	FeedThrottleWaits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cv_feed_throttle_waits_total",
		Help: "Esperas do limitador de requisições ao feed",
	}, []string{"provider"})

	// FeedRequests conta requisições ao feed por relatório e resultado
	FeedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cv_feed_requests_total",
		Help: "Requisições ao feed automatizado",
	}, []string{"report", "result"})

	// ChainRuns conta as execuções da cadeia de recálculo por resultado
	ChainRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cv_refresh_chain_runs_total",
		Help: "Execuções da cadeia de recálculo por resultado",
	}, []string{"outcome"})

	// HTTPRequests conta as requisições HTTP por rota e status
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cv_http_requests_total",
		Help: "Requisições HTTP por método, rota e status",
	}, []string{"method", "path", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cv_http_request_duration_seconds",
		Help:    "Duração das requisições HTTP",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)
