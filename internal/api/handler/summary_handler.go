package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/timekeep/attendance-system/internal/api/metrics"
	"github.com/timekeep/attendance-system/internal/core/ports"
)

// SummaryHandler serves the daily worked-time and salary report.
type SummaryHandler struct {
	service ports.SummaryService
}

func NewSummaryHandler(service ports.SummaryService) *SummaryHandler {
	return &SummaryHandler{service: service}
}

// Today handles GET /api/summary/:user_id — the owner's summary for the
// current day.
//
// @Summary      Daily worked-time and salary summary
// @Tags         summary
// @Produce      json
// @Param        user_id  path      string  true  "Owner identifier"
// @Success      200      {object}  domain.DaySummary
// @Failure      500      {object}  map[string]string
// @Router       /api/summary/{user_id} [get]
func (h *SummaryHandler) Today(c echo.Context) error {
	summary, err := h.service.ForToday(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return err
	}

	metrics.SummariesComputedTotal.Inc()
	return c.JSON(http.StatusOK, summary)
}
