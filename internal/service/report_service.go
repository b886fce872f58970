package service

import (
	"context"
	"io"

	"github.com/shopspring/decimal"

	apperrors "stocktrack/internal/errors"

	"stocktrack/internal/model"
	"stocktrack/internal/report"
	"stocktrack/internal/repository"
)

// Summary is the aggregate view of the whole inventory.
type Summary struct {
	ProductCount  int             `json:"product_count"`
	TotalItems    int             `json:"total_items"`
	TotalValue    decimal.Decimal `json:"total_value"`
	LowStockCount int             `json:"low_stock_count"`
}

// ReportService derives aggregates from a fresh product snapshot on every
// call. Nothing is cached or maintained incrementally.
type ReportService interface {
	Summary(ctx context.Context) (*Summary, error)
	LowStock(ctx context.Context, threshold int) ([]model.Product, error)
	ValueDistribution(ctx context.Context) ([]report.ProductValue, error)
	ExportCSV(ctx context.Context, w io.Writer) error
}

type reportService struct {
	products         repository.ProductRepository
	defaultThreshold int
}

// NewReportService builds a ReportService. defaultThreshold applies when a
// caller passes no explicit low-stock threshold.
func NewReportService(products repository.ProductRepository, defaultThreshold int) ReportService {
	if defaultThreshold <= 0 {
		defaultThreshold = report.DefaultLowStockThreshold
	}
	return &reportService{products: products, defaultThreshold: defaultThreshold}
}

func (s *reportService) snapshot(ctx context.Context) ([]model.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, apperrors.WrapStorage("snapshot products", err)
	}
	return products, nil
}

// Summary computes the full aggregate view.
func (s *reportService) Summary(ctx context.Context) (*Summary, error) {
	products, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &Summary{
		ProductCount:  len(products),
		TotalItems:    report.TotalItems(products),
		TotalValue:    report.TotalValue(products),
		LowStockCount: len(report.LowStock(products, s.defaultThreshold)),
	}, nil
}

// LowStock returns products below threshold. A negative threshold means "not
// supplied" and falls back to the configured default; zero is honored and
// flags nothing.
func (s *reportService) LowStock(ctx context.Context, threshold int) ([]model.Product, error) {
	if threshold < 0 {
		threshold = s.defaultThreshold
	}
	products, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return report.LowStock(products, threshold), nil
}

// ValueDistribution returns per-product stock values.
func (s *reportService) ValueDistribution(ctx context.Context) ([]report.ProductValue, error) {
	products, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return report.ValueDistribution(products), nil
}

// ExportCSV writes the current snapshot as CSV.
func (s *reportService) ExportCSV(ctx context.Context, w io.Writer) error {
	products, err := s.snapshot(ctx)
	if err != nil {
		return err
	}
	return report.WriteCSV(w, products)
}
