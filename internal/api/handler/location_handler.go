package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/timekeep/attendance-system/internal/api/metrics"
	"github.com/timekeep/attendance-system/internal/core/ports"
)

// LocationHandler exposes the admin-only location registry operations.
type LocationHandler struct {
	service ports.LocationService
}

func NewLocationHandler(service ports.LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

// Add handles POST /api/locations — registers a new location code.
//
// @Summary      Register a location code
// @Tags         locations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addLocationRequest  true  "Location code"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/locations [post]
func (h *LocationHandler) Add(c echo.Context) error {
	var req addLocationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Add(c.Request().Context(), req.Code); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "location code added"})
}

// QRCode handles GET /api/qrcode/:location_code — renders a registered code
// as an embeddable QR image.
//
// @Summary      Render a location code as a QR image
// @Tags         locations
// @Produce      html
// @Security     BearerAuth
// @Param        location_code  path      string  true  "Location code"
// @Success      200            {string}  string  "HTML img tag with a PNG data URI"
// @Failure      401            {object}  map[string]string
// @Failure      403            {object}  map[string]string
// @Failure      404            {object}  map[string]string
// @Router       /api/qrcode/{location_code} [get]
func (h *LocationHandler) QRCode(c echo.Context) error {
	code := c.Param("location_code")

	dataURI, err := h.service.EncodeQR(c.Request().Context(), code)
	if err != nil {
		return err
	}

	metrics.QRRenderedTotal.WithLabelValues(code).Inc()
	return c.HTML(http.StatusOK, fmt.Sprintf(`<img src="%s" />`, dataURI))
}
