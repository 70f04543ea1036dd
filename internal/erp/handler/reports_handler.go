package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// DailySalesReport covers the calendar day given by the "date" query param
// (YYYY-MM-DD), defaulting to today.
func (h *Handler) DailySalesReport(c *fiber.Ctx) error {
	day := time.Now().UTC().Truncate(24 * time.Hour)
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return respondBadRequest(c, "date must be YYYY-MM-DD")
		}
		day = parsed
	}

	report, err := h.reports.SalesSummary(c.Context(), day, day.AddDate(0, 0, 1))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(report)
}

// MonthlySalesReport covers the month given by the "month" query param
// (YYYY-MM), defaulting to the current month.
func (h *Handler) MonthlySalesReport(c *fiber.Ctx) error {
	now := time.Now().UTC()
	month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if raw := c.Query("month"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			return respondBadRequest(c, "month must be YYYY-MM")
		}
		month = parsed
	}

	report, err := h.reports.SalesSummary(c.Context(), month, month.AddDate(0, 1, 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(report)
}

func (h *Handler) LowStockReport(c *fiber.Ctx) error {
	threshold := c.QueryInt("threshold", h.lowStockThreshold)
	if threshold < 0 {
		return respondBadRequest(c, "threshold cannot be negative")
	}

	products, err := h.reports.LowStock(c.Context(), threshold)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(products)
}
