package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"stocktrack/internal/errors"
	"stocktrack/internal/service"
)

// ReportHandler handles reporting endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Summary godoc
// @Summary Aggregate inventory summary
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Summary
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /reports/summary [get]
func (h *ReportHandler) Summary(c echo.Context) error {
	summary, err := h.reportService.Summary(c.Request().Context())
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, summary)
}

// LowStock godoc
// @Summary Products below the low-stock threshold
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param threshold query int false "Stock threshold (default from config)"
// @Success 200 {array} model.Product
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /reports/low-stock [get]
func (h *ReportHandler) LowStock(c echo.Context) error {
	// -1 means "not supplied"; an explicit 0 is a real threshold under which
	// nothing is ever low.
	threshold := -1
	if raw := c.QueryParam("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid threshold",
				Code:  "INVALID_INPUT",
			})
		}
		threshold = parsed
	}

	products, err := h.reportService.LowStock(c.Request().Context(), threshold)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, products)
}

// ValueDistribution godoc
// @Summary Per-product stock value
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} report.ProductValue
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /reports/value-distribution [get]
func (h *ReportHandler) ValueDistribution(c echo.Context) error {
	dist, err := h.reportService.ValueDistribution(c.Request().Context())
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, dist)
}

// ExportCSV godoc
// @Summary Export the product snapshot as CSV
// @Tags reports
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV payload"
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /products/export [get]
func (h *ReportHandler) ExportCSV(c echo.Context) error {
	// Buffer the payload so a snapshot failure can still become an error
	// status instead of a committed 200 with an empty body.
	var buf bytes.Buffer
	if err := h.reportService.ExportCSV(c.Request().Context(), &buf); err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="products.csv"`)
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}
