package http

import (
	"net/http"

	"github.com/MikeRez0/studiodesk/internal/core/domain"
	"github.com/MikeRez0/studiodesk/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LineHandler struct {
	Handler
	service port.Service
}

func NewLineHandler(service port.Service, logger *zap.Logger) (*LineHandler, error) {
	return &LineHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

// CreateLine inserts or overwrites the line of a service in an order
// @Summary Upsert an order line
// @Tags order-lines
// @Accept json
// @Produce json
// @Param request body LineReq true "Order line"
// @Success 201 {object} LineResp "Line created"
// @Success 200 {object} LineResp "Existing line overwritten"
// @Failure 400 {object} ErrorResp
// @Failure 404 {object} ErrorResp "Unknown order or service"
// @Failure 500 {object} ErrorResp
// @Router /api/order-lines [post]
func (lh *LineHandler) CreateLine(ctx *gin.Context) {
	req := LineReq{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		lh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	line, err := req.toDomain()
	if err != nil {
		lh.handleError(ctx, err)
		return
	}

	lh.upsert(ctx, line)
}

// UpdateLine is CreateLine with the key taken from the path
// @Summary Upsert an order line by key
// @Tags order-lines
// @Accept json
// @Produce json
// @Param orderId path int true "Order ID"
// @Param serviceId path int true "Service ID"
// @Param request body LineReq true "Quantity and unit price"
// @Success 201 {object} LineResp "Line created"
// @Success 200 {object} LineResp "Existing line overwritten"
// @Failure 400 {object} ErrorResp
// @Failure 404 {object} ErrorResp
// @Failure 500 {object} ErrorResp
// @Router /api/order-lines/{orderId}/{serviceId} [put]
func (lh *LineHandler) UpdateLine(ctx *gin.Context) {
	key, err := lineKeyParams(ctx)
	if err != nil {
		lh.handleError(ctx, err)
		return
	}

	req := LineReq{}
	err = ctx.ShouldBindJSON(&req)
	if err != nil {
		lh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}
	req.OrderID = key.OrderID
	req.ServiceID = key.ServiceID

	line, err := req.toDomain()
	if err != nil {
		lh.handleError(ctx, err)
		return
	}

	lh.upsert(ctx, line)
}

// upsert answers 201 when the line is new and 200 when it overwrote one.
func (lh *LineHandler) upsert(ctx *gin.Context, line *domain.OrderLine) {
	saved, created, err := lh.service.UpsertLine(ctx, line)
	if err != nil {
		lh.handleError(ctx, err)
		return
	}

	resp, err := newLineResp(saved)
	if err != nil {
		lh.handleError(ctx, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	lh.handleSuccessWithStatus(ctx, resp, status)
}

// @Summary Delete an order line
// @Tags order-lines
// @Produce json
// @Param orderId path int true "Order ID"
// @Param serviceId path int true "Service ID"
// @Success 200 {object} MessageResp
// @Failure 404 {object} ErrorResp
// @Router /api/order-lines/{orderId}/{serviceId} [delete]
func (lh *LineHandler) DeleteLine(ctx *gin.Context) {
	key, err := lineKeyParams(ctx)
	if err != nil {
		lh.handleError(ctx, err)
		return
	}

	err = lh.service.DeleteLine(ctx, key.OrderID, key.ServiceID)
	if err != nil {
		lh.handleError(ctx, err)
		return
	}

	lh.handleSuccess(ctx, MessageResp{Message: "order line deleted"})
}

// ListLines returns the lines of one order when orderId is given, otherwise all lines.
// @Summary List order lines
// @Tags order-lines
// @Produce json
// @Param orderId query int false "Order ID"
// @Success 200 {array} LineResp
// @Failure 400 {object} ErrorResp
// @Router /api/order-lines [get]
func (lh *LineHandler) ListLines(ctx *gin.Context) {
	var lines []*domain.OrderLine
	var err error

	if s := ctx.Query("orderId"); s != "" {
		orderID, err := parseID(s)
		if err != nil {
			lh.handleError(ctx, err)
			return
		}
		lines, err = lh.service.ListLines(ctx, orderID)
		if err != nil {
			lh.handleError(ctx, err)
			return
		}
	} else {
		lines, err = lh.service.ListAllLines(ctx)
		if err != nil {
			lh.handleError(ctx, err)
			return
		}
	}

	result, err := newLineList(lines)
	if err != nil {
		lh.handleError(ctx, err)
		return
	}

	lh.handleSuccess(ctx, result)
}

func lineKeyParams(ctx *gin.Context) (domain.LineKey, error) {
	orderID, err := parseID(ctx.Param("orderId"))
	if err != nil {
		return domain.LineKey{}, err
	}
	serviceID, err := parseID(ctx.Param("serviceId"))
	if err != nil {
		return domain.LineKey{}, err
	}
	return domain.LineKey{OrderID: orderID, ServiceID: serviceID}, nil
}
