package handler

import (
	"nebulamarket/internal/usecase"
	"nebulamarket/pkg/errors"
	"nebulamarket/pkg/response"
	"nebulamarket/pkg/utils"

	"github.com/labstack/echo/v4"
)

type MarketplaceHandler struct {
	marketplaceUseCase *usecase.MarketplaceUseCase
}

func NewMarketplaceHandler(marketplaceUseCase *usecase.MarketplaceUseCase) *MarketplaceHandler {
	return &MarketplaceHandler{
		marketplaceUseCase: marketplaceUseCase,
	}
}

type createListingRequest struct {
	ProjectID   string   `json:"project_id" validate:"required"`
	Title       string   `json:"title" validate:"required,min=10,max=100"`
	Description string   `json:"description" validate:"required,min=50"`
	Price       float64  `json:"price" validate:"required,gte=0.99"`
	LicenseType string   `json:"license_type" validate:"required,oneof=MIT commercial personal custom"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category" validate:"required"`
}

func (h *MarketplaceHandler) BrowseListings(c echo.Context) error {
	category := c.QueryParam("category")
	sortBy := c.QueryParam("sort_by")
	if sortBy == "" {
		sortBy = "popular"
	}

	pagination := utils.GetPaginationParams(c)

	listings, err := h.marketplaceUseCase.BrowseListings(
		c.Request().Context(),
		category,
		sortBy,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"listings": listings,
		"page":     pagination.Page,
	})
}

func (h *MarketplaceHandler) GetListing(c echo.Context) error {
	listing, err := h.marketplaceUseCase.GetListing(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *MarketplaceHandler) CreateListing(c echo.Context) error {
	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerID, ok := c.Get("uid").(string)
	if !ok || sellerID == "" {
		return response.Error(c, errors.Unauthorized("Not authenticated", nil))
	}

	listing, err := h.marketplaceUseCase.CreateListing(
		c.Request().Context(),
		sellerID,
		usecase.CreateListingInput{
			ProjectID:   req.ProjectID,
			Title:       req.Title,
			Description: req.Description,
			Price:       req.Price,
			LicenseType: req.LicenseType,
			Tags:        req.Tags,
			Category:    req.Category,
		},
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"listing_id": listing.ID,
		"status":     "created",
	})
}

func (h *MarketplaceHandler) PublishListing(c echo.Context) error {
	sellerID, ok := c.Get("uid").(string)
	if !ok || sellerID == "" {
		return response.Error(c, errors.Unauthorized("Not authenticated", nil))
	}

	listingID := c.Param("id")

	if _, err := h.marketplaceUseCase.PublishListing(c.Request().Context(), listingID, sellerID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"status":     "published",
		"listing_id": listingID,
	})
}

func (h *MarketplaceHandler) GetStats(c echo.Context) error {
	stats, err := h.marketplaceUseCase.GetStats(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}
