package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MikeRez0/studiodesk/internal/adapter/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type Router struct {
	*gin.Engine
	conf   *config.HTTP
	logger *zap.Logger
}

func NewRouter(
	conf *config.HTTP,
	orderHandler *OrderHandler,
	lineHandler *LineHandler,
	invoiceHandler *InvoiceHandler,
	healthHandler *HealthHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()
	router.Use(traceID(), requestLogger(logger), gin.Recovery())

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", healthHandler.Health)

	api := router.Group("/api")
	{
		orders := api.Group("/orders")
		{
			orders.GET("", orderHandler.ListOrders)
			orders.POST("", orderHandler.CreateOrder)
			orders.PUT("/:id", orderHandler.UpdateOrder)
			orders.DELETE("/:id", orderHandler.DeleteOrder)
		}

		lines := api.Group("/order-lines")
		{
			lines.GET("", lineHandler.ListLines)
			lines.POST("", lineHandler.CreateLine)
			lines.PUT("/:orderId/:serviceId", lineHandler.UpdateLine)
			lines.DELETE("/:orderId/:serviceId", lineHandler.DeleteLine)
		}

		invoices := api.Group("/invoices")
		{
			invoices.GET("", invoiceHandler.ListInvoices)
			invoices.GET("/:orderId", invoiceHandler.GetInvoice)
		}

		api.GET("/capacity", orderHandler.Capacity)
		api.GET("/statistics/revenue", invoiceHandler.MonthlyRevenue)
	}

	return &Router{Engine: router, conf: conf, logger: logger}, nil
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down.
func (r *Router) Serve(ctx context.Context) error {
	server := &http.Server{
		Addr:              r.conf.HostString,
		Handler:           r.Engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("HTTP server listening", zap.String("address", r.conf.HostString))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	r.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
