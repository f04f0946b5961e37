package router

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"rowtrack/pkg/logger"
	"rowtrack/pkg/middleware"
)

type registrar interface{ Register(g *echo.Group) }

func New(
	e *echo.Echo,
	log *logger.Logger,
	projectCtrl registrar,
	stakeholderCtrl registrar,
	deliveryCtrl registrar,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(log))

	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api/v1")
	projectCtrl.Register(api)
	stakeholderCtrl.Register(api)
	deliveryCtrl.Register(api)
	return e
}
