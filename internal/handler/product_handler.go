package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"stocktrack/internal/errors"
	"stocktrack/internal/service"
)

// ProductHandler handles product endpoints.
type ProductHandler struct {
	inventoryService service.InventoryService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(inventoryService service.InventoryService) *ProductHandler {
	return &ProductHandler{inventoryService: inventoryService}
}

// CreateProductRequest represents a product creation request. Price travels
// as a string so no float rounding happens before decimal parsing.
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Quantity    int    `json:"quantity" validate:"min=0"`
	Price       string `json:"price" validate:"required"`
	Description string `json:"description"`
}

// UpdateStockRequest represents a stock overwrite request.
type UpdateStockRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// PremiumRequest represents a simulated payment for the premium flag.
type PremiumRequest struct {
	AmountCents int64 `json:"amount_cents" validate:"required,min=1"`
}

// CreateProduct godoc
// @Summary Add a new product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateProductRequest true "Product data"
// @Success 201 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid price",
			Code:  "INVALID_INPUT",
		})
	}

	product, err := h.inventoryService.AddProduct(c.Request().Context(), req.Name, req.Quantity, price, req.Description)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, product)
}

// ListProducts godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Product
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /products [get]
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.inventoryService.ListProducts(c.Request().Context())
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, products)
}

// GetProduct godoc
// @Summary Get a product by ID
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	product, err := h.inventoryService.GetProduct(c.Request().Context(), id)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, product)
}

// SearchProducts godoc
// @Summary Search products by name substring
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param q query string true "Name substring, case-insensitive"
// @Success 200 {array} model.Product
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /products/search [get]
func (h *ProductHandler) SearchProducts(c echo.Context) error {
	products, err := h.inventoryService.SearchProducts(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, products)
}

// UpdateStock godoc
// @Summary Overwrite a product's stock count
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body UpdateStockRequest true "New quantity"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id}/stock [put]
func (h *ProductHandler) UpdateStock(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.inventoryService.UpdateStock(c.Request().Context(), id, req.Quantity); err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "stock updated"})
}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.inventoryService.DeleteProduct(c.Request().Context(), id); err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "product deleted"})
}

// MarkPremium godoc
// @Summary Mark a product premium after a simulated payment
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body PremiumRequest true "Payment amount"
// @Success 200 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 402 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id}/premium [post]
func (h *ProductHandler) MarkPremium(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req PremiumRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.inventoryService.MarkPremium(c.Request().Context(), id, req.AmountCents)
	if err != nil {
		if err == service.ErrPaymentDeclined {
			return echo.NewHTTPError(http.StatusPaymentRequired, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "PAYMENT_DECLINED",
			})
		}
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, product)
}

// GetMovements godoc
// @Summary Stock-change history of a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {array} model.StockMovement
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /products/{id}/movements [get]
func (h *ProductHandler) GetMovements(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	movements, err := h.inventoryService.ListMovements(c.Request().Context(), id)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, movements)
}

// parseID reads the :id path param as an unsigned integer.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid product id",
			Code:  "INVALID_INPUT",
		})
	}
	return uint(id), nil
}
