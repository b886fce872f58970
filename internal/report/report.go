// Package report computes aggregates over a product snapshot. All functions
// are pure: they take the snapshot as input and do no I/O, so results always
// reflect a freshly fetched product list.
package report

import (
	"github.com/shopspring/decimal"

	"stocktrack/internal/model"
)

// DefaultLowStockThreshold is the stock count below which a product is
// flagged as low.
const DefaultLowStockThreshold = 10

// ProductValue pairs a product name with its total stock value.
type ProductValue struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// TotalItems sums the stock count across all products.
func TotalItems(products []model.Product) int {
	total := 0
	for _, p := range products {
		total += p.Quantity
	}
	return total
}

// TotalValue sums quantity times unit price across all products.
func TotalValue(products []model.Product) decimal.Decimal {
	total := decimal.Zero
	for i := range products {
		total = total.Add(products[i].Value())
	}
	return total
}

// LowStock returns the products whose quantity is strictly below threshold.
func LowStock(products []model.Product, threshold int) []model.Product {
	var low []model.Product
	for _, p := range products {
		if p.Quantity < threshold {
			low = append(low, p)
		}
	}
	return low
}

// ValueDistribution returns the per-product stock value, in snapshot order.
func ValueDistribution(products []model.Product) []ProductValue {
	dist := make([]ProductValue, 0, len(products))
	for i := range products {
		dist = append(dist, ProductValue{
			Name:  products[i].Name,
			Value: products[i].Value(),
		})
	}
	return dist
}
