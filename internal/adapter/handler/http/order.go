package http

import (
	"net/http"

	"github.com/MikeRez0/studiodesk/internal/core/domain"
	"github.com/MikeRez0/studiodesk/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

// CreateOrder admits a new order with its lines
// @Summary Create an order
// @Description Admits the order when both its realisation and delivery dates have capacity left
// @Tags orders
// @Accept json
// @Produce json
// @Param request body OrderReq true "Order with optional lines"
// @Success 201 {object} OrderResp
// @Failure 400 {object} ErrorResp "Validation error"
// @Failure 404 {object} ErrorResp "Unknown client or service"
// @Failure 409 {object} ErrorResp "Date full or duplicate service"
// @Failure 500 {object} ErrorResp
// @Router /api/orders [post]
func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	req := OrderReq{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	order, err := req.toDomain()
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	order, err = oh.service.CreateOrder(ctx, order)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	resp, err := newOrderResp(order)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, resp, http.StatusCreated)
}

// UpdateOrder edits the dates or the client of an order
// @Summary Update an order
// @Description Edits never consult the capacity policy; the order date cannot change
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body OrderPatchReq true "Fields to change"
// @Success 200 {object} OrderResp
// @Failure 400 {object} ErrorResp
// @Failure 404 {object} ErrorResp
// @Failure 500 {object} ErrorResp
// @Router /api/orders/{id} [put]
func (oh *OrderHandler) UpdateOrder(ctx *gin.Context) {
	orderID, err := parseID(ctx.Param("id"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	req := OrderPatchReq{}
	err = ctx.ShouldBindJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	patch, err := req.toDomain()
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	order, err := oh.service.UpdateOrder(ctx, orderID, patch)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	resp, err := newOrderResp(order)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, resp)
}

// DeleteOrder removes an order and its lines
// @Summary Delete an order
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} MessageResp
// @Failure 404 {object} ErrorResp
// @Failure 500 {object} ErrorResp
// @Router /api/orders/{id} [delete]
func (oh *OrderHandler) DeleteOrder(ctx *gin.Context) {
	orderID, err := parseID(ctx.Param("id"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	err = oh.service.DeleteOrder(ctx, orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, MessageResp{Message: "order deleted"})
}

// ListOrders lists orders, newest first
// @Summary List orders
// @Tags orders
// @Produce json
// @Param clientId query int false "Client ID"
// @Param realisationDate query string false "Realisation date (YYYY-MM-DD)"
// @Param deliveryDate query string false "Delivery date (YYYY-MM-DD)"
// @Param order query string false "asc for oldest first"
// @Param q query string false "Search text"
// @Success 200 {array} OrderResp
// @Failure 400 {object} ErrorResp
// @Router /api/orders [get]
func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	filter := domain.OrderFilter{
		Query:     ctx.Query("q"),
		Ascending: ctx.Query("order") == "asc",
	}

	if s := ctx.Query("clientId"); s != "" {
		id, err := parseID(s)
		if err != nil {
			oh.handleError(ctx, err)
			return
		}
		filter.ClientID = &id
	}

	var err error
	filter.RealisationDate, err = parseOptionalDate(ctx.Query("realisationDate"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	filter.DeliveryDate, err = parseOptionalDate(ctx.Query("deliveryDate"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	list, err := oh.service.ListOrders(ctx, filter)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]OrderResp, 0, len(list))
	for _, v := range list {
		r, err := newOrderResp(&v.Order)
		if err != nil {
			oh.handleError(ctx, err)
			return
		}
		r.ClientName = v.ClientName
		result = append(result, r)
	}

	oh.handleSuccess(ctx, result)
}

// Capacity reports what is left on a pair of candidate dates.
// @Summary Remaining capacity
// @Tags orders
// @Produce json
// @Param realisationDate query string true "Realisation date (YYYY-MM-DD)"
// @Param deliveryDate query string true "Delivery date (YYYY-MM-DD)"
// @Success 200 {object} CapacityResp
// @Failure 400 {object} ErrorResp
// @Router /api/capacity [get]
func (oh *OrderHandler) Capacity(ctx *gin.Context) {
	realisation, err := parseDate(ctx.Query("realisationDate"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	delivery, err := parseDate(ctx.Query("deliveryDate"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	status, err := oh.service.CanAdmit(ctx, realisation, delivery)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, CapacityResp{
		Admitted:             status.Admitted,
		Reason:               string(status.Reason),
		RealisationRemaining: status.RealisationRemaining,
		DeliveryRemaining:    status.DeliveryRemaining,
	})
}
