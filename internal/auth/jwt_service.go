package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// DefaultTokenTTL is the session token lifetime when none is configured.
const DefaultTokenTTL = 72 * time.Hour

// Role values carried in session tokens and on user records.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var (
	// ErrMissingSecret is returned when constructing a JWTService without a
	// signing secret. The server must fail closed rather than sign with "".
	ErrMissingSecret = errors.New("jwt signing secret is not configured")
	// ErrTokenExpired is returned for a well-formed, correctly signed token
	// whose expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed is returned for anything else: garbage input, a bad
	// signature, or an unexpected signing method.
	ErrTokenMalformed = errors.New("token malformed or unsigned")
)

// Claims represents the session credential payload.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService mints and validates signed session tokens. It is stateless: a
// token is a pure function of its inputs, the secret, and the clock.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService creates a JWT service. An empty secret is refused.
func NewJWTService(secret string, ttl time.Duration) (*JWTService, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTService{secret: []byte(secret), ttl: ttl}, nil
}

// Issue produces a signed token embedding the user's identity and role.
func (s *JWTService) Issue(userID uuid.UUID, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID.String(),
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "decora",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature integrity and expiry. An expired-but-valid signature
// yields ErrTokenExpired; every other failure yields ErrTokenMalformed, so a
// tampered token never produces a partial decode.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenMalformed
		}
		return s.secret, nil
	})

	if err != nil {
		// jwt/v4 sets validation bits independently, so a token can be both
		// forged and expired. Signature integrity wins: without it the expiry
		// claim cannot be trusted.
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, ErrTokenMalformed
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}

// DecodeUnverified extracts claims without checking the signature or expiry.
// This exists only for the client-side session snapshot: the authoritative
// check stays server-side on every request.
func DecodeUnverified(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
