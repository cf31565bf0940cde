package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	Handler
	storage Pinger
}

func NewHealthHandler(storage Pinger, logger *zap.Logger) (*HealthHandler, error) {
	return &HealthHandler{
		Handler: *NewHandler(logger),
		storage: storage,
	}, nil
}

type HealthResp struct {
	Status string `json:"status"`
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResp
// @Failure 503 {object} HealthResp
// @Router /health [get]
func (hh *HealthHandler) Health(ctx *gin.Context) {
	if err := hh.storage.Ping(ctx); err != nil {
		hh.logger.Warn("storage ping failed", zap.Error(err))
		hh.handleSuccessWithStatus(ctx, HealthResp{Status: "unavailable"}, http.StatusServiceUnavailable)
		return
	}

	hh.handleSuccess(ctx, HealthResp{Status: "ok"})
}
