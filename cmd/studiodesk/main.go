// Package main Studiodesk API
//
//	@title			Studiodesk API
//	@version		1.0
//	@description	Order admission, order lines and invoices for a recording studio.
//
//	@BasePath	/
package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	_ "github.com/MikeRez0/studiodesk/docs"
	"github.com/MikeRez0/studiodesk/internal/adapter/client/catalog"
	"github.com/MikeRez0/studiodesk/internal/adapter/config"
	"github.com/MikeRez0/studiodesk/internal/adapter/handler/http"
	"github.com/MikeRez0/studiodesk/internal/adapter/logger"
	"github.com/MikeRez0/studiodesk/internal/adapter/metrics"
	"github.com/MikeRez0/studiodesk/internal/adapter/storage"
	"github.com/MikeRez0/studiodesk/internal/adapter/storage/memory"
	"github.com/MikeRez0/studiodesk/internal/adapter/storage/repository"
	"github.com/MikeRez0/studiodesk/internal/core/domain"
	"github.com/MikeRez0/studiodesk/internal/core/port"
	"github.com/MikeRez0/studiodesk/internal/core/service"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

//go:generate swag init --dir ./,../../internal/adapter/handler/http --output ../../docs --outputTypes go

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	if conf.App.Mode == config.AppModeProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var repo port.Repository
	var cat port.Catalog
	var pinger http.Pinger

	if conf.Database.DSN != "" {
		db, err := storage.NewDBStorage(ctx, conf.Database)
		if err != nil {
			log.Error("database error", zap.Error(err))
			return
		}
		defer db.Close()

		err = db.RunMigrations()
		if err != nil {
			log.Error("database migration error", zap.Error(err))
			return
		}

		pgRepo, err := repository.NewRepository(db)
		if err != nil {
			log.Error("order repo creating error", zap.Error(err))
			return
		}
		repo, cat, pinger = pgRepo, pgRepo, pgRepo
	} else {
		log.Warn("no database configured, orders are kept in memory")
		memRepo := memory.NewRepository()
		repo, pinger = memRepo, memRepo
		cat = demoCatalog()
	}

	if conf.Catalog.HostString != "" {
		cat, err = catalog.NewCatalogClient(conf.Catalog, log.Named("Catalog"))
		if err != nil {
			log.Error("catalog client creating error", zap.Error(err))
			return
		}
	}

	observer, err := metrics.NewOrderMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		log.Error("metrics creating error", zap.Error(err))
		return
	}

	svc, err := service.NewService(repo, cat, observer, log.Named("Service"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}

	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	lineHandler, err := http.NewLineHandler(svc, log.Named("Line handler"))
	if err != nil {
		log.Error("line handler creating error", zap.Error(err))
		return
	}
	invoiceHandler, err := http.NewInvoiceHandler(svc, log.Named("Invoice handler"))
	if err != nil {
		log.Error("invoice handler creating error", zap.Error(err))
		return
	}
	healthHandler, err := http.NewHealthHandler(pinger, log.Named("Health handler"))
	if err != nil {
		log.Error("health handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, orderHandler, lineHandler, invoiceHandler, healthHandler, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(ctx)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}

// demoCatalog backs the in-memory mode so the API is usable without a database.
func demoCatalog() *memory.Catalog {
	c := memory.NewCatalog()
	c.PutClient(domain.Client{ID: 1, Name: "Walk-in client", Phone: "-"})
	c.PutService(domain.Service{ID: 1, Title: "Studio hour", Unit: "h"})
	c.PutService(domain.Service{ID: 2, Title: "Mixing", Unit: "track"})
	c.PutService(domain.Service{ID: 3, Title: "Mastering", Unit: "track"})
	return c
}
