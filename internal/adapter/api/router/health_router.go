package router

import (
	"nebulamarket/internal/adapter/api/handler"
	"nebulamarket/internal/infrastructure/observability"

	"github.com/labstack/echo/v4"
)

func SetupHealthRouter(e *echo.Echo) {
	healthHandler := handler.GetHealthHandler()
	e.GET("/health", healthHandler.CheckHealth)
	e.GET("/metrics", observability.Handler())
}
