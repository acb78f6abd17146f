package repository

import (
	"context"
	"sync"

	"nebulamarket/internal/domain/entity"
)

type MemoryTransactionRepository struct {
	mu           sync.RWMutex
	transactions []entity.Transaction
}

func NewMemoryTransactionRepository() *MemoryTransactionRepository {
	return &MemoryTransactionRepository{}
}

func (r *MemoryTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transactions = append(r.transactions, *transaction)
	return nil
}

func (r *MemoryTransactionRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.transactions)), nil
}

func (r *MemoryTransactionRepository) SumAmounts(ctx context.Context) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total float64
	for _, transaction := range r.transactions {
		total += transaction.Amount
	}
	return total, nil
}
