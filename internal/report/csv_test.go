package report

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocktrack/internal/model"
)

func TestWriteCSV(t *testing.T) {
	products := []model.Product{
		{ID: 1, Name: "Widget", Quantity: 3, Price: decimal.RequireFromString("2.50")},
		{ID: 2, Name: "Gadget", Quantity: 20, Price: decimal.RequireFromString("9.99")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, products))

	want := "ID,Name,Quantity,Price\n1,Widget,3,2.50\n2,Gadget,20,9.99\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVEmptySnapshot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	assert.Equal(t, "ID,Name,Quantity,Price\n", buf.String())
}

func TestWriteCSVQuotesCommas(t *testing.T) {
	products := []model.Product{
		{ID: 1, Name: "Widget, large", Quantity: 1, Price: decimal.RequireFromString("2.00")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, products))

	assert.Equal(t, "ID,Name,Quantity,Price\n1,\"Widget, large\",1,2.00\n", buf.String())
}
