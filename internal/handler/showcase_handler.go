package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"decora/internal/errors"
	"decora/internal/model"
	"decora/internal/service"
)

// The showcase handlers cover the smaller content types: gallery images,
// testimonials, offerings, and before/after transformations.

// GalleryHandler handles inspiration-gallery endpoints.
type GalleryHandler struct {
	svc service.GalleryService
}

// NewGalleryHandler creates a new gallery handler.
func NewGalleryHandler(svc service.GalleryService) *GalleryHandler {
	return &GalleryHandler{svc: svc}
}

// GalleryImageRequest is the admin create/update payload.
type GalleryImageRequest struct {
	Title     string `json:"title"`
	ImageURL  string `json:"image_url" validate:"required"`
	Category  string `json:"category"`
	SortOrder int    `json:"sort_order"`
}

// List godoc
// @Summary List gallery images
// @Tags gallery
// @Produce json
// @Success 200 {array} model.GalleryImage
// @Router /gallery [get]
func (h *GalleryHandler) List(c echo.Context) error {
	images, err := h.svc.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, images)
}

// Create godoc
// @Summary Add a gallery image
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GalleryImageRequest true "Image data"
// @Success 201 {object} model.GalleryImage
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/gallery [post]
func (h *GalleryHandler) Create(c echo.Context) error {
	var req GalleryImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	image := model.GalleryImage{
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		Category:  req.Category,
		SortOrder: req.SortOrder,
	}
	created, err := h.svc.Create(c.Request().Context(), &image)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a gallery image
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Image ID"
// @Param request body GalleryImageRequest true "Image data"
// @Success 200 {object} model.GalleryImage
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/gallery/{id} [put]
func (h *GalleryHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req GalleryImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	image := model.GalleryImage{
		ID:        id,
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		Category:  req.Category,
		SortOrder: req.SortOrder,
	}
	updated, err := h.svc.Update(c.Request().Context(), &image)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a gallery image
// @Tags gallery
// @Security BearerAuth
// @Param id path string true "Image ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/gallery/{id} [delete]
func (h *GalleryHandler) Delete(c echo.Context) error {
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

// TestimonialHandler handles testimonial endpoints.
type TestimonialHandler struct {
	svc service.TestimonialService
}

// NewTestimonialHandler creates a new testimonial handler.
func NewTestimonialHandler(svc service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{svc: svc}
}

// TestimonialRequest is the admin create/update payload.
type TestimonialRequest struct {
	Name   string `json:"name" validate:"required"`
	Quote  string `json:"quote" validate:"required"`
	Rating int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Photo  string `json:"photo"`
}

// List godoc
// @Summary List testimonials
// @Tags testimonials
// @Produce json
// @Success 200 {array} model.Testimonial
// @Router /testimonials [get]
func (h *TestimonialHandler) List(c echo.Context) error {
	testimonials, err := h.svc.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, testimonials)
}

// Create godoc
// @Summary Add a testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TestimonialRequest true "Testimonial data"
// @Success 201 {object} model.Testimonial
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/testimonials [post]
func (h *TestimonialHandler) Create(c echo.Context) error {
	var req TestimonialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	testimonial := model.Testimonial{
		Name:   req.Name,
		Quote:  req.Quote,
		Rating: req.Rating,
		Photo:  req.Photo,
	}
	created, err := h.svc.Create(c.Request().Context(), &testimonial)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Param request body TestimonialRequest true "Testimonial data"
// @Success 200 {object} model.Testimonial
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/testimonials/{id} [put]
func (h *TestimonialHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req TestimonialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	testimonial := model.Testimonial{
		ID:     id,
		Name:   req.Name,
		Quote:  req.Quote,
		Rating: req.Rating,
		Photo:  req.Photo,
	}
	updated, err := h.svc.Update(c.Request().Context(), &testimonial)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a testimonial
// @Tags testimonials
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/testimonials/{id} [delete]
func (h *TestimonialHandler) Delete(c echo.Context) error {
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

// OfferingHandler handles service-offering endpoints.
type OfferingHandler struct {
	svc service.OfferingService
}

// NewOfferingHandler creates a new offering handler.
func NewOfferingHandler(svc service.OfferingService) *OfferingHandler {
	return &OfferingHandler{svc: svc}
}

// OfferingRequest is the admin create/update payload.
type OfferingRequest struct {
	Name      string `json:"name" validate:"required"`
	Summary   string `json:"summary"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
}

// List godoc
// @Summary List service offerings
// @Tags offerings
// @Produce json
// @Success 200 {array} model.Offering
// @Router /offerings [get]
func (h *OfferingHandler) List(c echo.Context) error {
	offerings, err := h.svc.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, offerings)
}

// Create godoc
// @Summary Add a service offering
// @Tags offerings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body OfferingRequest true "Offering data"
// @Success 201 {object} model.Offering
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/offerings [post]
func (h *OfferingHandler) Create(c echo.Context) error {
	var req OfferingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	offering := model.Offering{
		Name:      req.Name,
		Summary:   req.Summary,
		Icon:      req.Icon,
		SortOrder: req.SortOrder,
	}
	created, err := h.svc.Create(c.Request().Context(), &offering)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a service offering
// @Tags offerings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Param request body OfferingRequest true "Offering data"
// @Success 200 {object} model.Offering
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/offerings/{id} [put]
func (h *OfferingHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req OfferingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	offering := model.Offering{
		ID:        id,
		Name:      req.Name,
		Summary:   req.Summary,
		Icon:      req.Icon,
		SortOrder: req.SortOrder,
	}
	updated, err := h.svc.Update(c.Request().Context(), &offering)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a service offering
// @Tags offerings
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/offerings/{id} [delete]
func (h *OfferingHandler) Delete(c echo.Context) error {
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

// TransformationHandler handles before/after showcase endpoints.
type TransformationHandler struct {
	svc service.TransformationService
}

// NewTransformationHandler creates a new transformation handler.
func NewTransformationHandler(svc service.TransformationService) *TransformationHandler {
	return &TransformationHandler{svc: svc}
}

// TransformationRequest is the admin create/update payload.
type TransformationRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	BeforeImage string `json:"before_image" validate:"required"`
	AfterImage  string `json:"after_image" validate:"required"`
}

// List godoc
// @Summary List before/after transformations
// @Tags transformations
// @Produce json
// @Success 200 {array} model.Transformation
// @Router /transformations [get]
func (h *TransformationHandler) List(c echo.Context) error {
	transformations, err := h.svc.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, transformations)
}

// Create godoc
// @Summary Add a transformation
// @Tags transformations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TransformationRequest true "Transformation data"
// @Success 201 {object} model.Transformation
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/transformations [post]
func (h *TransformationHandler) Create(c echo.Context) error {
	var req TransformationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	transformation := model.Transformation{
		Title:       req.Title,
		Description: req.Description,
		BeforeImage: req.BeforeImage,
		AfterImage:  req.AfterImage,
	}
	created, err := h.svc.Create(c.Request().Context(), &transformation)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a transformation
// @Tags transformations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transformation ID"
// @Param request body TransformationRequest true "Transformation data"
// @Success 200 {object} model.Transformation
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/transformations/{id} [put]
func (h *TransformationHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req TransformationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	transformation := model.Transformation{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		BeforeImage: req.BeforeImage,
		AfterImage:  req.AfterImage,
	}
	updated, err := h.svc.Update(c.Request().Context(), &transformation)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a transformation
// @Tags transformations
// @Security BearerAuth
// @Param id path string true "Transformation ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/transformations/{id} [delete]
func (h *TransformationHandler) Delete(c echo.Context) error {
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
