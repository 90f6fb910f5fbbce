package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/retail-sales-insights-api/pkg/log"
)

const healthcheckTimeout = 2 * time.Second

// Pinger verifica a disponibilidade do banco de vendas
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde o horário atual e o estado do banco.
// Com pinger nil apenas o processo é verificado.
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		}
		status := http.StatusOK

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
			defer cancel()

			body["database"] = "ok"
			if err := db.Ping(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Banco de dados indisponível no healthcheck")
				body["status"] = "degraded"
				body["database"] = "unavailable"
				status = http.StatusServiceUnavailable
			}
		}

		writeJSONStatus(w, r, status, body)
	})
}
