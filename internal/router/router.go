package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"decora/internal/auth"
	apperrors "decora/internal/errors"
	"decora/internal/handler"
)

// Handlers bundles everything Register needs to wire routes.
type Handlers struct {
	Auth           *handler.AuthHandler
	Project        *handler.ProjectHandler
	Blog           *handler.BlogHandler
	Gallery        *handler.GalleryHandler
	Testimonial    *handler.TestimonialHandler
	Offering       *handler.OfferingHandler
	Transformation *handler.TransformationHandler
	Inquiry        *handler.InquiryHandler
	Settings       *handler.SettingsHandler
	Media          *handler.MediaHandler
}

// forgotPasswordRate bounds how fast reset emails can be triggered. The
// endpoint always answers the same way, so the limiter is the only cost
// control on outbound mail.
var forgotPasswordRate = rate.NewLimiter(rate.Limit(1), 5)

// Register wires routes and middleware.
func Register(e *echo.Echo, jwtService *auth.JWTService, h Handlers) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/forgot-password", h.Auth.ForgotPassword, rateLimit(forgotPasswordRate))
	api.POST("/auth/reset-password/:token", h.Auth.ResetPassword)

	api.GET("/projects", h.Project.ListPublished)
	api.GET("/projects/:id", h.Project.Get)
	api.GET("/blog", h.Blog.ListPublished)
	api.GET("/blog/:id", h.Blog.Get)
	api.GET("/gallery", h.Gallery.List)
	api.GET("/testimonials", h.Testimonial.List)
	api.GET("/offerings", h.Offering.List)
	api.GET("/transformations", h.Transformation.List)
	api.GET("/settings", h.Settings.Get)
	api.POST("/inquiries", h.Inquiry.Submit)

	// Secured routes: any valid session token.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		ContextKey: handler.ClaimsContextKey,
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.Verify(tokenString)
		},
		ErrorHandler: authErrorHandler,
	}))

	secured.GET("/me", h.Auth.Me)
	secured.PUT("/me", h.Auth.UpdateMe)

	// Admin routes: valid token plus the admin role.
	admin := secured.Group("/admin", requireAdmin)

	admin.GET("/projects", h.Project.ListAll)
	admin.POST("/projects", h.Project.Create)
	admin.PUT("/projects/:id", h.Project.Update)
	admin.DELETE("/projects/:id", h.Project.Delete)

	admin.GET("/blog", h.Blog.ListAll)
	admin.POST("/blog", h.Blog.Create)
	admin.PUT("/blog/:id", h.Blog.Update)
	admin.DELETE("/blog/:id", h.Blog.Delete)

	admin.POST("/gallery", h.Gallery.Create)
	admin.PUT("/gallery/:id", h.Gallery.Update)
	admin.DELETE("/gallery/:id", h.Gallery.Delete)

	admin.POST("/testimonials", h.Testimonial.Create)
	admin.PUT("/testimonials/:id", h.Testimonial.Update)
	admin.DELETE("/testimonials/:id", h.Testimonial.Delete)

	admin.POST("/offerings", h.Offering.Create)
	admin.PUT("/offerings/:id", h.Offering.Update)
	admin.DELETE("/offerings/:id", h.Offering.Delete)

	admin.POST("/transformations", h.Transformation.Create)
	admin.PUT("/transformations/:id", h.Transformation.Update)
	admin.DELETE("/transformations/:id", h.Transformation.Delete)

	admin.GET("/inquiries", h.Inquiry.List)
	admin.PUT("/inquiries/:id/handled", h.Inquiry.MarkHandled)
	admin.DELETE("/inquiries/:id", h.Inquiry.Delete)

	admin.PUT("/settings", h.Settings.Update)

	admin.POST("/media/upload-url", h.Media.UploadURL)
	admin.GET("/media/download-url", h.Media.DownloadURL)
}

// authErrorHandler translates token failures into distinct 401 payloads. The
// status is always 401 here; 403 is reserved for role denials so clients can
// tell "log in again" apart from "you are not allowed".
func authErrorHandler(c echo.Context, err error) error {
	code := "MISSING_TOKEN"
	message := "authentication required"
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		code = "TOKEN_EXPIRED"
		message = "session expired, please log in again"
	case errors.Is(err, auth.ErrTokenMalformed):
		code = "INVALID_TOKEN"
		message = "invalid session token"
	}
	return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// requireAdmin gates a route group on the admin role. It runs after token
// verification, so a missing claim here is a server bug, not a client one.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := handler.CurrentClaims(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "authentication required",
				Code:  "MISSING_TOKEN",
			})
		}
		if claims.Role != auth.RoleAdmin {
			httpErr := apperrors.MapErrorToHTTP(apperrors.ErrForbidden)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		return next(c)
	}
}

// rateLimit rejects requests over the given budget with 429.
func rateLimit(limiter *rate.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				return echo.NewHTTPError(http.StatusTooManyRequests, apperrors.ErrorResponse{
					Error: "too many requests, slow down",
					Code:  "RATE_LIMITED",
				})
			}
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
