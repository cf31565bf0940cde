package http

import (
	"github.com/MikeRez0/studiodesk/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InvoiceHandler struct {
	Handler
	service port.Service
}

func NewInvoiceHandler(service port.Service, logger *zap.Logger) (*InvoiceHandler, error) {
	return &InvoiceHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

// GetInvoice builds the invoice of one order
// @Summary Get an invoice
// @Tags invoices
// @Produce json
// @Param orderId path int true "Order ID"
// @Success 200 {object} InvoiceResp
// @Failure 404 {object} ErrorResp
// @Failure 500 {object} ErrorResp
// @Router /api/invoices/{orderId} [get]
func (ih *InvoiceHandler) GetInvoice(ctx *gin.Context) {
	orderID, err := parseID(ctx.Param("orderId"))
	if err != nil {
		ih.handleError(ctx, err)
		return
	}

	inv, err := ih.service.BuildInvoice(ctx, orderID)
	if err != nil {
		ih.handleError(ctx, err)
		return
	}

	ih.handleSuccess(ctx, newInvoiceResp(inv))
}

// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {array} InvoiceResp
// @Router /api/invoices [get]
func (ih *InvoiceHandler) ListInvoices(ctx *gin.Context) {
	list, err := ih.service.ListInvoices(ctx, ctx.Query("q"))
	if err != nil {
		ih.handleError(ctx, err)
		return
	}

	result := make([]InvoiceResp, 0, len(list))
	for _, inv := range list {
		result = append(result, newInvoiceResp(inv))
	}

	ih.handleSuccess(ctx, result)
}

// @Summary Revenue per month
// @Tags statistics
// @Produce json
// @Success 200 {array} RevenueResp
// @Router /api/statistics/revenue [get]
func (ih *InvoiceHandler) MonthlyRevenue(ctx *gin.Context) {
	list, err := ih.service.MonthlyRevenue(ctx)
	if err != nil {
		ih.handleError(ctx, err)
		return
	}

	result := make([]RevenueResp, 0, len(list))
	for _, m := range list {
		result = append(result, RevenueResp{Year: m.Year, Month: m.Month, Revenue: m.Revenue})
	}

	ih.handleSuccess(ctx, result)
}
