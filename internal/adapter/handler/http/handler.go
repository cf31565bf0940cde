package http

import (
	"errors"
	"net/http"

	"github.com/MikeRez0/studiodesk/internal/core/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatusTable is matched top to bottom with errors.Is, so more specific
// errors go first.
var errorStatusTable = []errorStatus{
	{domain.ErrCapacityExceeded, http.StatusConflict},
	{domain.ErrDuplicateLine, http.StatusConflict},
	{domain.ErrConflictingData, http.StatusConflict},

	{domain.ErrDataNotFound, http.StatusNotFound},

	{domain.ErrValidation, http.StatusBadRequest},

	{domain.ErrTransactionFailure, http.StatusInternalServerError},
	{domain.ErrInternal, http.StatusInternalServerError},
}

func statusOf(err error) (int, bool) {
	for _, es := range errorStatusTable {
		if errors.Is(err, es.err) {
			return es.status, true
		}
	}
	return http.StatusInternalServerError, false
}

type ErrorResp struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

type MessageResp struct {
	Message string `json:"message"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends a 400 for a request that could not be decoded
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	h.logger.Debug("bad request", zap.Error(err))
	ctx.JSON(http.StatusBadRequest, ErrorResp{Error: err.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, ok := statusOf(err)
	if !ok || statusCode == http.StatusInternalServerError {
		h.logger.Error("error processing request", zap.Error(err))
		ctx.JSON(statusCode, ErrorResp{Error: domain.ErrInternal.Error()})
		return
	}

	resp := ErrorResp{Error: err.Error()}
	var capErr *domain.CapacityError
	if errors.As(err, &capErr) {
		resp.Reason = string(capErr.Reason)
	}
	ctx.JSON(statusCode, resp)
}

// handleSuccessWithStatus sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
