package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"stocktrack/internal/model"
)

// ProductRepository defines product persistence operations. Every method runs
// a single statement; mutations are last-write-wins with no row locking.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	SearchByName(ctx context.Context, substring string) ([]model.Product, error)
	UpdateQuantity(ctx context.Context, id uint, quantity int) error
	SetPremium(ctx context.Context, id uint, premium bool) error
	Delete(ctx context.Context, id uint) error
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create inserts a new product and fills in its generated ID.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// FindByID finds a product by ID.
func (r *productRepository) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// List returns all products in insertion order.
func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// SearchByName returns products whose name contains substring, case-insensitively.
func (r *productRepository) SearchByName(ctx context.Context, substring string) ([]model.Product, error) {
	var products []model.Product
	pattern := "%" + strings.ToLower(substring) + "%"
	if err := r.db.WithContext(ctx).Where("LOWER(name) LIKE ?", pattern).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// UpdateQuantity overwrites the stock count of a product. Returns
// gorm.ErrRecordNotFound when no row matches.
func (r *productRepository) UpdateQuantity(ctx context.Context, id uint, quantity int) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetPremium toggles the cosmetic premium flag.
func (r *productRepository) SetPremium(ctx context.Context, id uint, premium bool) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", id).
		Update("premium", premium)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a product. Deleting an absent row reports
// gorm.ErrRecordNotFound instead of succeeding silently.
func (r *productRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
