package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"nebulamarket/internal/domain/entity"
	"nebulamarket/internal/domain/repository"
	apperrors "nebulamarket/pkg/errors"
)

type gormListingRepository struct {
	db *gorm.DB
}

func NewGormListingRepository(db *gorm.DB) repository.ListingRepository {
	return &gormListingRepository{
		db: db,
	}
}

func (r *gormListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	if err := r.db.WithContext(ctx).Create(listing).Error; err != nil {
		return apperrors.Internal("Failed to create listing", err)
	}
	return nil
}

func (r *gormListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	var listing entity.Listing
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Listing", err)
		}
		return nil, apperrors.Internal("Failed to get listing", err)
	}
	return &listing, nil
}

func (r *gormListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	if err := r.db.WithContext(ctx).Save(listing).Error; err != nil {
		return apperrors.Internal("Failed to update listing", err)
	}
	return nil
}

// IncrementViews bumps the view counter in a single UPDATE so concurrent
// fetches never lose an increment.
func (r *gormListingRepository) IncrementViews(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).
		Model(&entity.Listing{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).
		Error
	if err != nil {
		return apperrors.Internal("Failed to increment listing views", err)
	}
	return nil
}

func (r *gormListingRepository) List(ctx context.Context, filter repository.ListingFilter) ([]*entity.Listing, error) {
	tx := r.db.WithContext(ctx).Model(&entity.Listing{})

	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}
	if filter.Category != "" {
		tx = tx.Where("category = ?", filter.Category)
	}

	switch filter.SortBy {
	case "popular":
		tx = tx.Order("current_sales DESC")
	case "recent":
		tx = tx.Order("published_at DESC")
	case "rating":
		tx = tx.Order("rating DESC")
	}

	if filter.Offset > 0 {
		tx = tx.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}

	var listings []*entity.Listing
	if err := tx.Find(&listings).Error; err != nil {
		return nil, apperrors.Internal("Failed to list listings", err)
	}
	return listings, nil
}

func (r *gormListingRepository) CountByStatus(ctx context.Context, status entity.ListingStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Listing{}).
		Where("status = ?", string(status)).
		Count(&count).
		Error
	if err != nil {
		return 0, apperrors.Internal("Failed to count listings", err)
	}
	return count, nil
}
