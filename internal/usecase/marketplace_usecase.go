package usecase

import (
	"context"
	"time"

	"nebulamarket/internal/domain/entity"
	"nebulamarket/internal/domain/repository"
	"nebulamarket/pkg/errors"
	"nebulamarket/pkg/logger"
	"nebulamarket/pkg/utils"
)

const (
	titleMinLen       = 10
	titleMaxLen       = 100
	descriptionMinLen = 50
	priceMin          = 0.99
)

type MarketplaceUseCase struct {
	listingRepo     repository.ListingRepository
	transactionRepo repository.TransactionRepository
}

func NewMarketplaceUseCase(
	listingRepo repository.ListingRepository,
	transactionRepo repository.TransactionRepository,
) *MarketplaceUseCase {
	return &MarketplaceUseCase{
		listingRepo:     listingRepo,
		transactionRepo: transactionRepo,
	}
}

type CreateListingInput struct {
	ProjectID   string   `json:"project_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	LicenseType string   `json:"license_type"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
}

func (uc *MarketplaceUseCase) CreateListing(ctx context.Context, sellerID string, input CreateListingInput) (*entity.Listing, error) {
	if len(input.Title) < titleMinLen || len(input.Title) > titleMaxLen {
		return nil, errors.Validation("title must be between 10 and 100 characters", nil)
	}
	if len(input.Description) < descriptionMinLen {
		return nil, errors.Validation("description must be at least 50 characters", nil)
	}
	if input.Price < priceMin {
		return nil, errors.Validation("price must be at least 0.99", nil)
	}

	listing := &entity.Listing{
		ID:          utils.GenerateID("lst"),
		ProjectID:   input.ProjectID,
		SellerID:    sellerID,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		LicenseType: input.LicenseType,
		Tags:        input.Tags,
		Category:    input.Category,
		Rating:      5.0,
		Status:      entity.ListingStatusDraft,
		CreatedAt:   time.Now(),
	}

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	logger.Info("listing %s created by seller %s", listing.ID, sellerID)
	return listing, nil
}

// GetListing looks a listing up and bumps its view counter. The increment is
// deliberately part of the operation, not a fire-and-forget, so every fetch
// is counted exactly once.
func (uc *MarketplaceUseCase) GetListing(ctx context.Context, id string) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.listingRepo.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	listing.Views++

	return listing, nil
}

func (uc *MarketplaceUseCase) PublishListing(ctx context.Context, id string, sellerID string) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if listing.SellerID != sellerID {
		return nil, errors.Forbidden("You don't have permission to publish this listing", nil)
	}

	now := time.Now()
	listing.Status = entity.ListingStatusActive
	listing.PublishedAt = &now

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	logger.Info("listing %s published by seller %s", id, sellerID)
	return listing, nil
}

func (uc *MarketplaceUseCase) BrowseListings(ctx context.Context, category, sortBy string, page, limit int) ([]*entity.Listing, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	return uc.listingRepo.List(ctx, repository.ListingFilter{
		Status:   entity.ListingStatusActive,
		Category: category,
		SortBy:   sortBy,
		Limit:    limit,
		Offset:   (page - 1) * limit,
	})
}

type MarketplaceStats struct {
	TotalListings int64   `json:"total_listings"`
	TotalSales    int64   `json:"total_sales"`
	TotalVolume   float64 `json:"total_volume"`
}

func (uc *MarketplaceUseCase) GetStats(ctx context.Context) (*MarketplaceStats, error) {
	totalListings, err := uc.listingRepo.CountByStatus(ctx, entity.ListingStatusActive)
	if err != nil {
		return nil, err
	}

	totalSales, err := uc.transactionRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalVolume, err := uc.transactionRepo.SumAmounts(ctx)
	if err != nil {
		return nil, err
	}

	return &MarketplaceStats{
		TotalListings: totalListings,
		TotalSales:    totalSales,
		TotalVolume:   totalVolume,
	}, nil
}
