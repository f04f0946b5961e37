package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"rowtrack/app"
	"rowtrack/config"
	"rowtrack/pkg/logger"
	"rowtrack/router"

	deliveryCtrlImp "rowtrack/pkg/delivery/controllerImp"
	healthCtrlImp "rowtrack/pkg/health/controllerImp"
	projectCtrlImp "rowtrack/pkg/project/controllerImp"
	stakeholderCtrlImp "rowtrack/pkg/stakeholder/controllerImp"
)

func main() {
	// 1) Config
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// 2) Logger
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// 3) Store + services
	a, err := app.Open(cfg, log)
	if err != nil {
		log.Fatal("open store", "driver", cfg.DBDriver, "error", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Warn("close store", "error", err)
		}
	}()

	// 4) Echo + routes
	e := router.New(
		echo.New(),
		log,
		projectCtrlImp.New(a.Projects),
		stakeholderCtrlImp.New(a.Stakeholders),
		deliveryCtrlImp.New(a.Deliveries),
		healthCtrlImp.NewHealthCtrl(a.DB, log),
	)

	// 5) Start, stop on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("listening", "port", cfg.Port, "driver", cfg.DBDriver)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "error", err)
	}
}
