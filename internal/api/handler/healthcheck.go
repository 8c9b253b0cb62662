package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger verifica uma dependência do serviço, como a conexão com o banco
type Pinger interface {
	PingContext(ctx context.Context) error
}

func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		body := map[string]any{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		}

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.PingContext(ctx); err != nil {
				logrus.WithError(err).Warn("Healthcheck: banco de dados indisponível")
				status = http.StatusServiceUnavailable
				body["status"] = "degraded"
				body["database"] = err.Error()
			}
		}

		writeJSON(w, r, status, body)
	})
}
