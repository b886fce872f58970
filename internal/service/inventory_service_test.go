package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "stocktrack/internal/errors"
	"stocktrack/internal/model"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) SearchByName(ctx context.Context, substring string) ([]model.Product, error) {
	args := m.Called(ctx, substring)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateQuantity(ctx context.Context, id uint, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockProductRepository) SetPremium(ctx context.Context, id uint, premium bool) error {
	args := m.Called(ctx, id, premium)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// stubPayment is a PaymentService with a fixed outcome.
type stubPayment struct {
	succeeds bool
}

func (s stubPayment) PaySucceeds(amountCents int64) bool {
	return s.succeeds
}

func TestInventoryService_AddProductValidation(t *testing.T) {
	tests := []struct {
		name        string
		productName string
		quantity    int
		price       string
	}{
		{"empty name", "", 1, "1.00"},
		{"negative quantity", "Widget", -1, "1.00"},
		{"negative price", "Widget", 1, "-0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			svc := NewInventoryService(mockRepo, nil, stubPayment{succeeds: true})

			_, err := svc.AddProduct(context.Background(), tt.productName, tt.quantity, decimal.RequireFromString(tt.price), "")
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			// Rejected before any store access.
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestInventoryService_AddProductSuccess(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Product).ID = 5
	}).Return(nil)

	svc := NewInventoryService(mockRepo, nil, stubPayment{succeeds: true})

	product, err := svc.AddProduct(context.Background(), "Widget", 3, decimal.RequireFromString("2.50"), "Basic widget")
	assert.NoError(t, err)
	assert.Equal(t, uint(5), product.ID)
	assert.Equal(t, "Widget", product.Name)
	assert.Equal(t, 3, product.Quantity)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("2.50")))
	mockRepo.AssertExpectations(t)
}

func TestInventoryService_UpdateStock(t *testing.T) {
	t.Run("negative quantity rejected before store access", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		svc := NewInventoryService(mockRepo, nil, stubPayment{succeeds: true})

		err := svc.UpdateStock(context.Background(), 1, -5)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		mockRepo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing product maps to not found", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("UpdateQuantity", mock.Anything, uint(99), 5).Return(gorm.ErrRecordNotFound)

		svc := NewInventoryService(mockRepo, nil, stubPayment{succeeds: true})
		err := svc.UpdateStock(context.Background(), 99, 5)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestInventoryService_GetProductNotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockRepo.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewInventoryService(mockRepo, nil, stubPayment{succeeds: true})
	_, err := svc.GetProduct(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestInventoryService_DeleteProductNotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockRepo.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Delete", mock.Anything, uint(404)).Return(gorm.ErrRecordNotFound)

	svc := NewInventoryService(mockRepo, nil, stubPayment{succeeds: true})
	err := svc.DeleteProduct(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestInventoryService_MarkPremium(t *testing.T) {
	t.Run("declined payment leaves the product untouched", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		svc := NewInventoryService(mockRepo, nil, stubPayment{succeeds: false})

		_, err := svc.MarkPremium(context.Background(), 1, 500)
		assert.ErrorIs(t, err, ErrPaymentDeclined)
		mockRepo.AssertNotCalled(t, "SetPremium", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("successful payment sets the flag", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("SetPremium", mock.Anything, uint(1), true).Return(nil)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Product{ID: 1, Name: "Widget", Premium: true}, nil)

		svc := NewInventoryService(mockRepo, nil, stubPayment{succeeds: true})
		product, err := svc.MarkPremium(context.Background(), 1, 500)
		assert.NoError(t, err)
		assert.True(t, product.Premium)
		mockRepo.AssertExpectations(t)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		svc := NewInventoryService(mockRepo, nil, stubPayment{succeeds: true})

		_, err := svc.MarkPremium(context.Background(), 1, -1)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}
