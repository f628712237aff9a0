package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/timekeep/attendance-system/internal/api/metrics"
	"github.com/timekeep/attendance-system/internal/core/domain"
	"github.com/timekeep/attendance-system/internal/core/ports"
)

// AttendanceHandler handles entry recording and history listing.
type AttendanceHandler struct {
	service ports.AttendanceService
}

func NewAttendanceHandler(service ports.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

// Record handles POST /api/log — stores one check-in or check-out entry.
//
// @Summary      Record a check-in or check-out entry
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        body  body      entryRequest  true  "Attendance entry"
// @Success      201   {object}  domain.Entry
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/log [post]
func (h *AttendanceHandler) Record(c echo.Context) error {
	var req entryRequest
	if err := c.Bind(&req); err != nil {
		metrics.EntriesRejectedTotal.WithLabelValues("bad_payload").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.EntriesRejectedTotal.WithLabelValues("bad_payload").Inc()
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	entry, err := h.service.Record(c.Request().Context(), ports.EntryInput{
		OwnerID:      req.UserID,
		Kind:         req.Kind,
		Time:         req.Time,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		LocationCode: req.LocationCode,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidLocation) {
			metrics.EntriesRejectedTotal.WithLabelValues("invalid_location").Inc()
		}
		return err
	}

	metrics.EntriesRecordedTotal.WithLabelValues(string(entry.Kind), entry.LocationCode).Inc()
	return c.JSON(http.StatusCreated, entry)
}

// History handles GET /api/logs/:user_id — all entries for one owner,
// newest first.
//
// @Summary      List an owner's attendance entries
// @Tags         attendance
// @Produce      json
// @Param        user_id  path      string  true  "Owner identifier"
// @Success      200      {array}   domain.Entry
// @Failure      500      {object}  map[string]string
// @Router       /api/logs/{user_id} [get]
func (h *AttendanceHandler) History(c echo.Context) error {
	entries, err := h.service.History(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
