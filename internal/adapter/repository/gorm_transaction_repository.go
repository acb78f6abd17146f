package repository

import (
	"context"

	"gorm.io/gorm"

	"nebulamarket/internal/domain/entity"
	"nebulamarket/internal/domain/repository"
	apperrors "nebulamarket/pkg/errors"
)

type gormTransactionRepository struct {
	db *gorm.DB
}

func NewGormTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &gormTransactionRepository{
		db: db,
	}
}

func (r *gormTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	if err := r.db.WithContext(ctx).Create(transaction).Error; err != nil {
		return apperrors.Internal("Failed to create transaction", err)
	}
	return nil
}

func (r *gormTransactionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Transaction{}).Count(&count).Error; err != nil {
		return 0, apperrors.Internal("Failed to count transactions", err)
	}
	return count, nil
}

func (r *gormTransactionRepository) SumAmounts(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&entity.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).
		Error
	if err != nil {
		return 0, apperrors.Internal("Failed to sum transaction amounts", err)
	}
	return total, nil
}
