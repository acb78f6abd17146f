package router

import (
	"nebulamarket/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupMarketplaceRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
