package repository

import (
	"context"

	"nebulamarket/internal/domain/entity"
)

type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error
	Count(ctx context.Context) (int64, error)
	SumAmounts(ctx context.Context) (float64, error)
}
