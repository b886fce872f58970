package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "stocktrack/internal/errors"

	"stocktrack/internal/model"
	"stocktrack/internal/repository"
)

// InventoryService exposes product CRUD and search over the shared inventory.
type InventoryService interface {
	AddProduct(ctx context.Context, name string, quantity int, price decimal.Decimal, description string) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
	SearchProducts(ctx context.Context, substring string) ([]model.Product, error)
	UpdateStock(ctx context.Context, id uint, newQuantity int) error
	DeleteProduct(ctx context.Context, id uint) error
	MarkPremium(ctx context.Context, id uint, amountCents int64) (*model.Product, error)
	ListMovements(ctx context.Context, productID uint) ([]model.StockMovement, error)
}

type inventoryService struct {
	products  repository.ProductRepository
	movements repository.StockMovementRepository
	payments  PaymentService
}

// NewInventoryService builds an InventoryService. movements may be nil to
// disable audit recording.
func NewInventoryService(products repository.ProductRepository, movements repository.StockMovementRepository, payments PaymentService) InventoryService {
	return &inventoryService{
		products:  products,
		movements: movements,
		payments:  payments,
	}
}

// AddProduct validates inputs and inserts a new product. Quantity and price
// must be non-negative; violations are rejected before any store access.
func (s *inventoryService) AddProduct(ctx context.Context, name string, quantity int, price decimal.Decimal, description string) (*model.Product, error) {
	if name == "" || quantity < 0 || price.IsNegative() {
		return nil, apperrors.ErrInvalidInput
	}

	product := &model.Product{
		Name:        name,
		Quantity:    quantity,
		Price:       price,
		Description: description,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, apperrors.WrapStorage("create product", err)
	}

	s.recordMovement(ctx, product.ID, quantity, model.MovementAdd)
	return product, nil
}

// ListProducts returns a full snapshot in insertion order.
func (s *inventoryService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, apperrors.WrapStorage("list products", err)
	}
	return products, nil
}

// GetProduct fetches one product by ID.
func (s *inventoryService) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.WrapStorage("get product", err)
	}
	return product, nil
}

// SearchProducts returns products whose name contains substring,
// case-insensitively.
func (s *inventoryService) SearchProducts(ctx context.Context, substring string) ([]model.Product, error) {
	products, err := s.products.SearchByName(ctx, substring)
	if err != nil {
		return nil, apperrors.WrapStorage("search products", err)
	}
	return products, nil
}

// UpdateStock overwrites a product's quantity. The new value replaces the old
// one; it is not a delta.
func (s *inventoryService) UpdateStock(ctx context.Context, id uint, newQuantity int) error {
	if newQuantity < 0 {
		return apperrors.ErrInvalidInput
	}

	// Audit only: grab the old quantity so the movement row can carry a delta.
	oldQuantity := 0
	if before, err := s.products.FindByID(ctx, id); err == nil {
		oldQuantity = before.Quantity
	}

	if err := s.products.UpdateQuantity(ctx, id, newQuantity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return apperrors.WrapStorage("update stock", err)
	}

	s.recordMovement(ctx, id, newQuantity-oldQuantity, model.MovementUpdate)
	return nil
}

// DeleteProduct removes a product. Deleting an already-absent product is a
// NotFound failure, never a crash.
func (s *inventoryService) DeleteProduct(ctx context.Context, id uint) error {
	remaining := 0
	if before, err := s.products.FindByID(ctx, id); err == nil {
		remaining = before.Quantity
	}

	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return apperrors.WrapStorage("delete product", err)
	}

	s.recordMovement(ctx, id, -remaining, model.MovementDelete)
	return nil
}

// MarkPremium runs the simulated payment gate and, on success, sets the
// cosmetic premium flag.
func (s *inventoryService) MarkPremium(ctx context.Context, id uint, amountCents int64) (*model.Product, error) {
	if amountCents < 0 {
		return nil, apperrors.ErrInvalidInput
	}

	if !s.payments.PaySucceeds(amountCents) {
		return nil, ErrPaymentDeclined
	}

	if err := s.products.SetPremium(ctx, id, true); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.WrapStorage("mark premium", err)
	}

	return s.GetProduct(ctx, id)
}

// ListMovements returns the audit history for one product, oldest first.
func (s *inventoryService) ListMovements(ctx context.Context, productID uint) ([]model.StockMovement, error) {
	if s.movements == nil {
		return nil, nil
	}
	movements, err := s.movements.ListByProduct(ctx, productID)
	if err != nil {
		return nil, apperrors.WrapStorage("list movements", err)
	}
	return movements, nil
}

// recordMovement writes an audit row. Best-effort: failures are dropped so
// they never affect the primary operation.
func (s *inventoryService) recordMovement(ctx context.Context, productID uint, delta int, movementType string) {
	if s.movements == nil {
		return
	}
	_ = s.movements.Create(ctx, &model.StockMovement{
		ProductID: productID,
		Delta:     delta,
		Type:      movementType,
	})
}
