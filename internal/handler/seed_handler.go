package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"stocktrack/internal/service"
)

// SeedHandler handles demo-data endpoints.
type SeedHandler struct {
	inventoryService service.InventoryService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(inventoryService service.InventoryService) *SeedHandler {
	return &SeedHandler{inventoryService: inventoryService}
}

// SeedProductsResponse represents the seed response.
type SeedProductsResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type demoProduct struct {
	name        string
	quantity    int
	price       string
	description string
}

var demoProducts = []demoProduct{
	{"Widget", 3, "2.50", "Basic widget"},
	{"Gadget", 20, "9.99", "Multi-purpose gadget"},
	{"Sprocket", 45, "1.25", ""},
	{"Gizmo", 8, "14.00", "Limited run"},
	{"Doohickey", 120, "0.75", "Bulk item"},
}

// SeedProducts godoc
// @Summary Insert a static demo product set
// @Tags seed
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SeedProductsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} map[string]string
// @Router /seed/products [get]
func (h *SeedHandler) SeedProducts(c echo.Context) error {
	count := 0
	for _, item := range demoProducts {
		price, err := decimal.NewFromString(item.price)
		if err != nil {
			continue
		}
		if _, err := h.inventoryService.AddProduct(c.Request().Context(), item.name, item.quantity, price, item.description); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
				"error": fmt.Sprintf("failed to seed products: %v", err),
			})
		}
		count++
	}

	return c.JSON(http.StatusOK, SeedProductsResponse{
		Message: "Products seeded successfully",
		Count:   count,
	})
}
