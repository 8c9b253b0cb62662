package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/cv-report-api/pkg/metrics"
)

// Metrics registra contagem e duração das requisições por rota
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()
			lrw := newLoggingResponseWriter(w)

			next.ServeHTTP(lrw, r)

			path := routeLabel(r.URL.Path)
			metrics.HTTPRequests.WithLabelValues(r.Method, path, strconv.Itoa(lrw.statusCode)).Inc()
			metrics.HTTPDuration.WithLabelValues(r.Method, path).Observe(time.Since(startTime).Seconds())
		})
	}
}

// routeLabel troca o parâmetro de /v1/cron/:type/run para limitar a cardinalidade
func routeLabel(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 4 && parts[0] == "v1" && parts[1] == "cron" && parts[3] == "run" {
		return "/v1/cron/:type/run"
	}

	return path
}
