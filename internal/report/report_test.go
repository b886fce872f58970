package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocktrack/internal/model"
)

func snapshot() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Widget", Quantity: 3, Price: decimal.RequireFromString("2.50")},
		{ID: 2, Name: "Gadget", Quantity: 20, Price: decimal.RequireFromString("9.99")},
	}
}

func TestTotalItems(t *testing.T) {
	assert.Equal(t, 23, TotalItems(snapshot()))
	assert.Equal(t, 0, TotalItems(nil))
}

func TestTotalValue(t *testing.T) {
	// 3 x 2.50 + 20 x 9.99 = 207.30
	total := TotalValue(snapshot())
	assert.True(t, total.Equal(decimal.RequireFromString("207.30")), "got %s", total)

	assert.True(t, TotalValue(nil).IsZero())
}

func TestLowStock(t *testing.T) {
	low := LowStock(snapshot(), DefaultLowStockThreshold)
	require.Len(t, low, 1)
	assert.Equal(t, "Widget", low[0].Name)

	// Threshold is exclusive: a product holding exactly the threshold is not low.
	exact := []model.Product{{Name: "Edge", Quantity: 10}}
	assert.Empty(t, LowStock(exact, 10))
	assert.Len(t, LowStock(exact, 11), 1)
}

func TestValueDistribution(t *testing.T) {
	dist := ValueDistribution(snapshot())
	require.Len(t, dist, 2)
	assert.Equal(t, "Widget", dist[0].Name)
	assert.True(t, dist[0].Value.Equal(decimal.RequireFromString("7.50")))
	assert.Equal(t, "Gadget", dist[1].Name)
	assert.True(t, dist[1].Value.Equal(decimal.RequireFromString("199.80")))
}
