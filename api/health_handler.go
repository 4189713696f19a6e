package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder   Responder
	database    database.Database
	startupTime time.Time
}

func newHealthHandler(database database.Database, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger),
		database:    database,
		startupTime: startupTime,
	}
}

// health reports process uptime and whether the store answers a ping
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /api/health [get]
func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		response := HealthResponse{
			Status:        "ok",
			UptimeSeconds: int64(time.Since(h.startupTime).Seconds()),
		}

		if err := h.database.Ping(ctx); err != nil {
			logger := requestLogger(h.responder.logger, r)
			logger.Error().Err(err).Msg("Database ping failed")
			response.Status = "unavailable"
			h.responder.WriteJSON(w, http.StatusServiceUnavailable, response)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, response)
	}
}
