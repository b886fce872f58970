package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "stocktrack/internal/errors"
	"stocktrack/internal/model"
)

// MockInventoryService is a mock implementation of service.InventoryService.
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) AddProduct(ctx context.Context, name string, quantity int, price decimal.Decimal, description string) (*model.Product, error) {
	args := m.Called(ctx, name, quantity, price, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockInventoryService) ListProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockInventoryService) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockInventoryService) SearchProducts(ctx context.Context, substring string) ([]model.Product, error) {
	args := m.Called(ctx, substring)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockInventoryService) UpdateStock(ctx context.Context, id uint, newQuantity int) error {
	args := m.Called(ctx, id, newQuantity)
	return args.Error(0)
}

func (m *MockInventoryService) DeleteProduct(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInventoryService) MarkPremium(ctx context.Context, id uint, amountCents int64) (*model.Product, error) {
	args := m.Called(ctx, id, amountCents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockInventoryService) ListMovements(ctx context.Context, productID uint) ([]model.StockMovement, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StockMovement), args.Error(1)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestProductHandler_CreateProduct(t *testing.T) {
	mockSvc := new(MockInventoryService)
	mockSvc.On("AddProduct", mock.Anything, "Widget", 3, mock.Anything, "Basic widget").
		Return(&model.Product{ID: 1, Name: "Widget", Quantity: 3, Price: decimal.RequireFromString("2.50")}, nil)

	h := NewProductHandler(mockSvc)
	c, rec := newContext(t, http.MethodPost, "/api/products",
		`{"name":"Widget","quantity":3,"price":"2.50","description":"Basic widget"}`)

	require.NoError(t, h.CreateProduct(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Widget"`)
	mockSvc.AssertExpectations(t)
}

func TestProductHandler_CreateProductBadPrice(t *testing.T) {
	mockSvc := new(MockInventoryService)
	h := NewProductHandler(mockSvc)

	c, _ := newContext(t, http.MethodPost, "/api/products",
		`{"name":"Widget","quantity":3,"price":"not-a-number"}`)

	err := h.CreateProduct(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	mockSvc.AssertNotCalled(t, "AddProduct", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProductHandler_GetProductNotFound(t *testing.T) {
	mockSvc := new(MockInventoryService)
	mockSvc.On("GetProduct", mock.Anything, uint(99)).Return(nil, apperrors.ErrNotFound)

	h := NewProductHandler(mockSvc)
	c, _ := newContext(t, http.MethodGet, "/api/products/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := h.GetProduct(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestProductHandler_GetProductBadID(t *testing.T) {
	h := NewProductHandler(new(MockInventoryService))
	c, _ := newContext(t, http.MethodGet, "/api/products/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.GetProduct(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestProductHandler_UpdateStockRejectsNegative(t *testing.T) {
	mockSvc := new(MockInventoryService)
	h := NewProductHandler(mockSvc)

	c, _ := newContext(t, http.MethodPut, "/api/products/1/stock", `{"quantity":-4}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := h.UpdateStock(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	mockSvc.AssertNotCalled(t, "UpdateStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductHandler_SearchPassesQuery(t *testing.T) {
	mockSvc := new(MockInventoryService)
	mockSvc.On("SearchProducts", mock.Anything, "wid").
		Return([]model.Product{{ID: 1, Name: "Widget"}}, nil)

	h := NewProductHandler(mockSvc)
	c, rec := newContext(t, http.MethodGet, "/api/products/search?q=wid", "")

	require.NoError(t, h.SearchProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Widget")
	mockSvc.AssertExpectations(t)
}
