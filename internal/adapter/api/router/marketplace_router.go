package router

import (
	"nebulamarket/internal/adapter/api/handler"
	"nebulamarket/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupMarketplaceRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	marketplaceHandler := handler.GetMarketplaceHandler()

	marketplace := e.Group("/api/marketplace")
	marketplace.GET("/listings", marketplaceHandler.BrowseListings)
	marketplace.GET("/listings/:id", marketplaceHandler.GetListing)
	marketplace.GET("/stats", marketplaceHandler.GetStats)

	sellers := e.Group("/api/marketplace")
	sellers.Use(authMiddleware.Authenticate)
	sellers.POST("/listings", marketplaceHandler.CreateListing)
	sellers.PATCH("/listings/:id/publish", marketplaceHandler.PublishListing)
}
