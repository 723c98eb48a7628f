// Package handler exposes the analytics HTTP endpoints.
package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	analyticssvc "github.com/GreenD94/ladingburger-sub002/internal/api/analytics/service"
	basehdl "github.com/GreenD94/ladingburger-sub002/internal/api/base/handler"
	"github.com/GreenD94/ladingburger-sub002/internal/common"
)

// AnalyticsHandler serves the back-office sales reports.
type AnalyticsHandler struct {
	service *analyticssvc.AnalyticsService
}

// NewAnalyticsHandler wires the handler.
func NewAnalyticsHandler(service *analyticssvc.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// parsePeriod reads the optional ?from= and ?to= bounds (RFC 3339).
func parsePeriod(c fiber.Ctx) (analyticssvc.Period, error) {
	period := analyticssvc.Period{}

	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return period, common.NewError(common.ErrCodeValidationFormat, "el parámetro from debe ser RFC 3339", common.StatusBadRequest, from)
		}
		period.From = t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return period, common.NewError(common.ErrCodeValidationFormat, "el parámetro to debe ser RFC 3339", common.StatusBadRequest, to)
		}
		period.To = t
	}

	return period, nil
}

// HandleSummary returns the headline sales numbers.
func (h *AnalyticsHandler) HandleSummary(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		period, err := parsePeriod(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		summary, err := h.service.GetSummary(c.Context(), period)
		basehdl.HandleResponse(c, summary, err)
		return nil
	})
}

// HandlePeakHours returns the busiest hours of the day.
func (h *AnalyticsHandler) HandlePeakHours(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		period, err := parsePeriod(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		buckets, err := h.service.GetPeakHours(c.Context(), period)
		basehdl.HandleResponse(c, buckets, err)
		return nil
	})
}

// HandleTopItems returns the best selling burgers.
func (h *AnalyticsHandler) HandleTopItems(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		period, err := parsePeriod(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		limit := fiber.Query[int64](c, "limit", 10)
		items, err := h.service.GetTopItems(c.Context(), period, limit)
		basehdl.HandleResponse(c, items, err)
		return nil
	})
}

// HandleCustomers returns the new-versus-returning customer split.
func (h *AnalyticsHandler) HandleCustomers(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		period, err := parsePeriod(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		breakdown, err := h.service.GetCustomerBreakdown(c.Context(), period)
		basehdl.HandleResponse(c, breakdown, err)
		return nil
	})
}
