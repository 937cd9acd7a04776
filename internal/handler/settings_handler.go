package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"decora/internal/errors"
	"decora/internal/model"
	"decora/internal/service"
)

// SettingsHandler serves the singleton site settings row.
type SettingsHandler struct {
	svc service.SettingsService
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(svc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// SiteSettingsRequest is the admin update payload.
type SiteSettingsRequest struct {
	HeroTitle    string `json:"hero_title"`
	HeroSubtitle string `json:"hero_subtitle"`
	HeroImage    string `json:"hero_image"`
	AboutTitle   string `json:"about_title"`
	AboutBody    string `json:"about_body"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`
	FooterText   string `json:"footer_text"`
	Instagram    string `json:"instagram"`
	Facebook     string `json:"facebook"`
}

// Get godoc
// @Summary Get public site settings
// @Tags settings
// @Produce json
// @Success 200 {object} model.SiteSettings
// @Router /settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.svc.Get(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, settings)
}

// Update godoc
// @Summary Update site settings
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SiteSettingsRequest true "Settings data"
// @Success 200 {object} model.SiteSettings
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	var req SiteSettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	settings := model.SiteSettings{
		ID:           model.SettingsRowID,
		HeroTitle:    req.HeroTitle,
		HeroSubtitle: req.HeroSubtitle,
		HeroImage:    req.HeroImage,
		AboutTitle:   req.AboutTitle,
		AboutBody:    req.AboutBody,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
		FooterText:   req.FooterText,
		Instagram:    req.Instagram,
		Facebook:     req.Facebook,
	}
	updated, err := h.svc.Update(c.Request().Context(), &settings)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, updated)
}
