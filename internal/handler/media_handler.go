package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"decora/internal/errors"
	"decora/internal/service"
)

// MediaHandler issues presigned URLs for direct-to-storage uploads.
type MediaHandler struct {
	svc service.MediaService
}

// NewMediaHandler creates a new media handler.
func NewMediaHandler(svc service.MediaService) *MediaHandler {
	return &MediaHandler{svc: svc}
}

// UploadURLRequest asks for a presigned upload slot for the given filename.
type UploadURLRequest struct {
	Filename string `json:"filename" validate:"required"`
}

// UploadURLResponse carries the storage key and the presigned PUT URL.
type UploadURLResponse struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
}

// UploadURL godoc
// @Summary Request a presigned upload URL
// @Description Returns a short-lived URL the client PUTs the file to directly.
// @Tags media
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UploadURLRequest true "Upload request"
// @Success 200 {object} UploadURLResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/media/upload-url [post]
func (h *MediaHandler) UploadURL(c echo.Context) error {
	var req UploadURLRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	key, url, err := h.svc.UploadURL(c.Request().Context(), req.Filename)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, UploadURLResponse{Key: key, UploadURL: url})
}

// DownloadURL godoc
// @Summary Request a presigned download URL
// @Tags media
// @Produce json
// @Security BearerAuth
// @Param key query string true "Storage key"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/media/download-url [get]
func (h *MediaHandler) DownloadURL(c echo.Context) error {
	key := c.QueryParam("key")
	if key == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "key query parameter is required")
	}

	url, err := h.svc.DownloadURL(c.Request().Context(), key)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"key": key, "download_url": url})
}
