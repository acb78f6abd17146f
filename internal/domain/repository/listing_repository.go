package repository

import (
	"context"

	"nebulamarket/internal/domain/entity"
)

// ListingFilter narrows and orders a listing query. Zero values mean "no
// constraint" for the filters and "storage order" for SortBy.
type ListingFilter struct {
	Status   entity.ListingStatus
	Category string
	SortBy   string // popular, recent, rating
	Limit    int
	Offset   int
}

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	Update(ctx context.Context, listing *entity.Listing) error
	IncrementViews(ctx context.Context, id string) error
	List(ctx context.Context, filter ListingFilter) ([]*entity.Listing, error)
	CountByStatus(ctx context.Context, status entity.ListingStatus) (int64, error)
}
