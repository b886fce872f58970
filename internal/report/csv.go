package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"stocktrack/internal/model"
)

// WriteCSV serializes a product snapshot as CSV with an ID,Name,Quantity,Price
// header row. Prices are written with two decimal places.
func WriteCSV(w io.Writer, products []model.Product) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ID", "Name", "Quantity", "Price"}); err != nil {
		return err
	}
	for i := range products {
		p := &products[i]
		record := []string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.Name,
			strconv.Itoa(p.Quantity),
			p.Price.StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
