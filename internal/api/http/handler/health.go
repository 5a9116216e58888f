package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dtroode/workgen-server/internal/api/http/response"
	"github.com/dtroode/workgen-server/internal/logger"
	"github.com/dtroode/workgen-server/internal/model"
)

const pingTimeout = 2 * time.Second

type statusResponse struct {
	Status string `json:"status"`
}

// Health serves the liveness banner and the dependency health check.
type Health struct {
	pinger model.Pinger
	logger *logger.Logger
}

func NewHealth(pinger model.Pinger, logger *logger.Logger) *Health {
	return &Health{pinger: pinger, logger: logger}
}

// Root handles GET /.
func (h *Health) Root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Hello World"))
}

// Healthz handles GET /healthz.
func (h *Health) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Warn("Health handler: dependency ping failed",
			"error", err.Error())
		response.JSON(w, http.StatusServiceUnavailable, statusResponse{Status: "unavailable"})
		return
	}

	response.JSON(w, http.StatusOK, statusResponse{Status: "ok"})
}
