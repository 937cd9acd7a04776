package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"decora/internal/auth"
	"decora/internal/handler"
	"decora/internal/model"
	"decora/internal/service"
)

// stubAuthService returns a fixed user for profile reads; the other methods
// are unreachable from these tests.
type stubAuthService struct {
	user model.User
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string) (string, *model.User, error) {
	return "", nil, nil
}
func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	return "", nil, nil
}
func (s *stubAuthService) ForgotPassword(ctx context.Context, email string) error { return nil }
func (s *stubAuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) (string, *model.User, error) {
	return "", nil, nil
}
func (s *stubAuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return &s.user, nil
}
func (s *stubAuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, update service.ProfileUpdate) (*model.User, error) {
	return &s.user, nil
}

type stubInquiryService struct{}

func (stubInquiryService) Submit(ctx context.Context, inquiry *model.Inquiry) (*model.Inquiry, error) {
	return inquiry, nil
}
func (stubInquiryService) List(ctx context.Context) ([]model.Inquiry, error) {
	return []model.Inquiry{}, nil
}
func (stubInquiryService) MarkHandled(ctx context.Context, id uuid.UUID) error { return nil }
func (stubInquiryService) Delete(ctx context.Context, id uuid.UUID) error      { return nil }

func newTestServer(t *testing.T) (*echo.Echo, *auth.JWTService) {
	t.Helper()
	jwtService, err := auth.NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)

	userID := uuid.New()
	e := echo.New()
	Register(e, jwtService, Handlers{
		Auth:    handler.NewAuthHandler(&stubAuthService{user: model.User{ID: userID, Email: "test@example.com", Role: auth.RoleUser}}),
		Inquiry: handler.NewInquiryHandler(stubInquiryService{}),
	})
	return e, jwtService
}

func doRequest(e *echo.Echo, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSecuredRoutes_TokenFailures(t *testing.T) {
	e, _ := newTestServer(t)

	expiredService, err := auth.NewJWTService("test-secret", time.Nanosecond)
	require.NoError(t, err)
	expired, err := expiredService.Issue(uuid.New(), auth.RoleUser)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	foreignService, err := auth.NewJWTService("other-secret", time.Hour)
	require.NoError(t, err)
	forged, err := foreignService.Issue(uuid.New(), auth.RoleAdmin)
	require.NoError(t, err)

	tests := []struct {
		name     string
		token    string
		wantCode string
	}{
		{"missing token", "", "MISSING_TOKEN"},
		{"garbage token", "not-a-token", "INVALID_TOKEN"},
		{"forged token", forged, "INVALID_TOKEN"},
		{"expired token", expired, "TOKEN_EXPIRED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, http.MethodGet, "/api/me", tt.token)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
		})
	}
}

func TestSecuredRoutes_ValidToken(t *testing.T) {
	e, jwtService := newTestServer(t)

	token, err := jwtService.Issue(uuid.New(), auth.RoleUser)
	require.NoError(t, err)

	rec := doRequest(e, http.MethodGet, "/api/me", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// A valid session with the wrong role is a 403, never a 401: clients must not
// drop the session over a privilege problem.
func TestAdminRoutes_RoleGate(t *testing.T) {
	e, jwtService := newTestServer(t)

	userToken, err := jwtService.Issue(uuid.New(), auth.RoleUser)
	require.NoError(t, err)
	adminToken, err := jwtService.Issue(uuid.New(), auth.RoleAdmin)
	require.NoError(t, err)

	rec := doRequest(e, http.MethodGet, "/api/admin/inquiries", userToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")

	rec = doRequest(e, http.MethodGet, "/api/admin/inquiries", adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodGet, "/api/admin/inquiries", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthz(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
