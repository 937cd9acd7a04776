package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"decora/internal/errors"
	"decora/internal/model"
	"decora/internal/service"
)

// BlogHandler handles blog endpoints.
type BlogHandler struct {
	svc service.BlogService
}

// NewBlogHandler creates a new blog handler.
func NewBlogHandler(svc service.BlogService) *BlogHandler {
	return &BlogHandler{svc: svc}
}

// BlogPostRequest is the admin create/update payload.
type BlogPostRequest struct {
	Title      string `json:"title" validate:"required"`
	Excerpt    string `json:"excerpt"`
	Content    string `json:"content"`
	CoverImage string `json:"cover_image"`
	AuthorName string `json:"author_name"`
	Published  bool   `json:"published"`
}

func (r *BlogPostRequest) apply(p *model.BlogPost) {
	p.Title = r.Title
	p.Excerpt = r.Excerpt
	p.Content = r.Content
	p.CoverImage = r.CoverImage
	p.AuthorName = r.AuthorName
	p.Published = r.Published
}

// ListPublished godoc
// @Summary List published blog posts
// @Tags blog
// @Produce json
// @Success 200 {array} model.BlogPost
// @Router /blog [get]
func (h *BlogHandler) ListPublished(c echo.Context) error {
	posts, err := h.svc.ListPublished(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, posts)
}

// Get godoc
// @Summary Get a published blog post by id
// @Tags blog
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} model.BlogPost
// @Failure 404 {object} errors.ErrorResponse
// @Router /blog/{id} [get]
func (h *BlogHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	post, err := h.svc.GetPublished(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, post)
}

// ListAll godoc
// @Summary List all blog posts including drafts
// @Tags blog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.BlogPost
// @Router /admin/blog [get]
func (h *BlogHandler) ListAll(c echo.Context) error {
	posts, err := h.svc.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, posts)
}

// Create godoc
// @Summary Create a blog post
// @Tags blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BlogPostRequest true "Post data"
// @Success 201 {object} model.BlogPost
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/blog [post]
func (h *BlogHandler) Create(c echo.Context) error {
	var req BlogPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var post model.BlogPost
	req.apply(&post)

	created, err := h.svc.Create(c.Request().Context(), &post)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a blog post
// @Tags blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param request body BlogPostRequest true "Post data"
// @Success 200 {object} model.BlogPost
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/blog/{id} [put]
func (h *BlogHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req BlogPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	req.apply(post)

	updated, err := h.svc.Update(c.Request().Context(), post)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a blog post
// @Tags blog
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/blog/{id} [delete]
func (h *BlogHandler) Delete(c echo.Context) error {
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
