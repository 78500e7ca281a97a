package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thaigeo/address-api/internal/core/ports"
)

// LocationHandler serves the read-only administrative hierarchy lookups.
// Unknown keys return empty results, mirroring the dataset semantics.
type LocationHandler struct {
	locations ports.LocationService
}

func NewLocationHandler(locations ports.LocationService) *LocationHandler {
	return &LocationHandler{locations: locations}
}

// All returns the full nested dataset.
func (h *LocationHandler) All(c echo.Context) error {
	return c.JSON(http.StatusOK, h.locations.All())
}

// Provinces returns the list of province names.
func (h *LocationHandler) Provinces(c echo.Context) error {
	return c.JSON(http.StatusOK, h.locations.Provinces())
}

// Districts returns the district names of a province.
func (h *LocationHandler) Districts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.locations.Districts(c.Param("province")))
}

// SubDistricts returns the sub-district names of a district.
func (h *LocationHandler) SubDistricts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.locations.SubDistricts(c.Param("province"), c.Param("district")))
}
