package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"decora/internal/errors"
	"decora/internal/model"
	"decora/internal/service"
)

// InquiryHandler handles contact-form submissions and their admin review.
type InquiryHandler struct {
	svc service.InquiryService
}

// NewInquiryHandler creates a new inquiry handler.
func NewInquiryHandler(svc service.InquiryService) *InquiryHandler {
	return &InquiryHandler{svc: svc}
}

// InquiryRequest is the public contact-form payload.
type InquiryRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone"`
	Message string  `json:"message" validate:"required"`
}

// Submit godoc
// @Summary Submit a contact inquiry
// @Tags inquiries
// @Accept json
// @Produce json
// @Param request body InquiryRequest true "Inquiry data"
// @Success 201 {object} model.Inquiry
// @Failure 400 {object} errors.ErrorResponse
// @Router /inquiries [post]
func (h *InquiryHandler) Submit(c echo.Context) error {
	var req InquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	inquiry := model.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	created, err := h.svc.Submit(c.Request().Context(), &inquiry)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// List godoc
// @Summary List all inquiries
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Inquiry
// @Router /admin/inquiries [get]
func (h *InquiryHandler) List(c echo.Context) error {
	inquiries, err := h.svc.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, inquiries)
}

// MarkHandled godoc
// @Summary Mark an inquiry as handled
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inquiry ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/inquiries/{id}/handled [put]
func (h *InquiryHandler) MarkHandled(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.MarkHandled(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "inquiry marked as handled"})
}

// Delete godoc
// @Summary Delete an inquiry
// @Tags inquiries
// @Security BearerAuth
// @Param id path string true "Inquiry ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/inquiries/{id} [delete]
func (h *InquiryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
