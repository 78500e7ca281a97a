package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thaigeo/address-api/internal/core/domain"
	"github.com/thaigeo/address-api/internal/core/ports"
)

// ProfileHandler serves the token-protected profile routes. The Auth
// middleware has already verified the bearer token by the time these run.
type ProfileHandler struct {
	authService ports.AuthService
}

func NewProfileHandler(authService ports.AuthService) *ProfileHandler {
	return &ProfileHandler{authService: authService}
}

// Get returns the caller's public profile.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Profile(c.Request().Context(), username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update overwrites the four mutable profile fields. Username, password
// hash and created_at are not reachable through this path.
//
// @Summary      Update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      profileUpdateRequest  true  "Profile fields"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Security     BearerAuth
// @Router       /profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	var req profileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.authService.UpdateProfile(c.Request().Context(), username, domain.ProfileUpdate{
		Email:       req.Email,
		Province:    req.Province,
		District:    req.District,
		SubDistrict: req.SubDistrict,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "profile updated"})
}
