package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService("", time.Hour)
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestJWTService_IssueVerifyRoundtrip(t *testing.T) {
	svc, err := NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.Issue(userID, RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "decora", claims.Issuer)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	svc, err := NewJWTService("test-secret", time.Nanosecond)
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New(), RoleUser)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTService_Verify_Malformed(t *testing.T) {
	svc, err := NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)

	other, err := NewJWTService("a-different-secret", time.Hour)
	require.NoError(t, err)
	foreign, err := other.Issue(uuid.New(), RoleUser)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: uuid.NewString(), Role: RoleAdmin}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	// Forged AND expired: a bad signature must win over the expiry bit,
	// because an untrusted token's claims say nothing.
	otherExpired, err := NewJWTService("a-different-secret", time.Nanosecond)
	require.NoError(t, err)
	forgedExpired, err := otherExpired.Issue(uuid.New(), RoleAdmin)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"wrong secret", foreign},
		{"unsigned", unsigned},
		{"wrong secret and expired", forgedExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Verify(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, ErrTokenMalformed)
		})
	}
}

// An expired token still decodes unverified; the client snapshot relies on
// that to show who was logged in while the server re-checks.
func TestDecodeUnverified(t *testing.T) {
	svc, err := NewJWTService("test-secret", time.Nanosecond)
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.Issue(userID, RoleUser)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	claims, err := DecodeUnverified(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)

	_, err = DecodeUnverified("garbage")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}
