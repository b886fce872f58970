package repository

import (
	"context"

	"gorm.io/gorm"

	"stocktrack/internal/model"
)

// StockMovementRepository persists the optional stock-change audit rows.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *model.StockMovement) error
	ListByProduct(ctx context.Context, productID uint) ([]model.StockMovement, error)
}

type stockMovementRepository struct {
	db *gorm.DB
}

// NewStockMovementRepository creates a new stock movement repository.
func NewStockMovementRepository(db *gorm.DB) StockMovementRepository {
	return &stockMovementRepository{db: db}
}

func (r *stockMovementRepository) Create(ctx context.Context, movement *model.StockMovement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

func (r *stockMovementRepository) ListByProduct(ctx context.Context, productID uint) ([]model.StockMovement, error) {
	var movements []model.StockMovement
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("id").Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}
