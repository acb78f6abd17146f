package repository

import (
	"context"
	"sort"
	"sync"

	"nebulamarket/internal/domain/entity"
	"nebulamarket/internal/domain/repository"
	apperrors "nebulamarket/pkg/errors"
)

// MemoryListingRepository is a mutex-guarded in-memory implementation used by
// tests and local development. It mirrors the query semantics of the gorm
// adapter, including sort order and pagination.
type MemoryListingRepository struct {
	mu       sync.RWMutex
	listings map[string]entity.Listing
	order    []string
}

func NewMemoryListingRepository() *MemoryListingRepository {
	return &MemoryListingRepository{
		listings: make(map[string]entity.Listing),
	}
}

func (r *MemoryListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.listings[listing.ID]; !exists {
		r.order = append(r.order, listing.ID)
	}
	r.listings[listing.ID] = *listing
	return nil
}

func (r *MemoryListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listing, ok := r.listings[id]
	if !ok {
		return nil, apperrors.NotFound("Listing", nil)
	}
	copied := listing
	return &copied, nil
}

func (r *MemoryListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[listing.ID]; !ok {
		return apperrors.NotFound("Listing", nil)
	}
	r.listings[listing.ID] = *listing
	return nil
}

func (r *MemoryListingRepository) IncrementViews(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[id]
	if !ok {
		return apperrors.NotFound("Listing", nil)
	}
	listing.Views++
	r.listings[id] = listing
	return nil
}

func (r *MemoryListingRepository) List(ctx context.Context, filter repository.ListingFilter) ([]*entity.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []entity.Listing
	for _, id := range r.order {
		listing := r.listings[id]
		if filter.Status != "" && listing.Status != filter.Status {
			continue
		}
		if filter.Category != "" && listing.Category != filter.Category {
			continue
		}
		matched = append(matched, listing)
	}

	switch filter.SortBy {
	case "popular":
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].CurrentSales > matched[j].CurrentSales
		})
	case "recent":
		sort.SliceStable(matched, func(i, j int) bool {
			ti, tj := matched[i].PublishedAt, matched[j].PublishedAt
			if ti == nil {
				return false
			}
			if tj == nil {
				return true
			}
			return ti.After(*tj)
		})
	case "rating":
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Rating > matched[j].Rating
		})
	}

	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[filter.Offset:]
		}
	}
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}

	result := make([]*entity.Listing, len(matched))
	for i := range matched {
		copied := matched[i]
		result[i] = &copied
	}
	return result, nil
}

func (r *MemoryListingRepository) CountByStatus(ctx context.Context, status entity.ListingStatus) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, listing := range r.listings {
		if listing.Status == status {
			count++
		}
	}
	return count, nil
}
