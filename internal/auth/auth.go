// Package auth implements issuance and verification of signed session tokens.
package auth

import (
	"fmt"
	"strconv"
	"time"

	"secretely/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// DefaultTTL is the token lifetime used when the caller does not specify one.
	DefaultTTL = 15 * time.Minute
)

// Service issues and verifies signed session tokens. Tokens are stateless:
// nothing is persisted and no revocation is performed, so a token stays
// valid for its entire lifetime regardless of later account changes.
type Service struct {
	secret     []byte
	issuer     string
	audience   string
	defaultTTL time.Duration
}

// NewService returns a token service signing with the given shared secret.
// defaultTTL is the lifetime used when Issue is called without one; a
// non-positive value falls back to DefaultTTL.
func NewService(secret, issuer, audience string, defaultTTL time.Duration) *Service {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	return &Service{
		secret:     []byte(secret),
		issuer:     issuer,
		audience:   audience,
		defaultTTL: defaultTTL,
	}
}

// Issue creates a signed token for the given user id expiring after ttl.
// A non-positive ttl falls back to the service default.
func (s *Service) Issue(userID uint, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("token signing secret not configured")
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": s.issuer,
		"aud": s.audience,
		"exp": now.Add(ttl).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": s.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token and returns the encoded user id.
// Failures (bad signature, malformed token, elapsed expiry, missing or
// non-numeric subject) are reported as Unauthenticated.
func (s *Service) Verify(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, models.NewUnauthenticatedError("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, models.NewUnauthenticatedError("Invalid token claims")
	}

	if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != s.issuer {
		return 0, models.NewUnauthenticatedError("Invalid token issuer")
	}
	if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != s.audience {
		return 0, models.NewUnauthenticatedError("Invalid token audience")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, models.NewUnauthenticatedError("Invalid subject claim")
	}

	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, models.NewUnauthenticatedError("Invalid user ID in token")
	}

	return uint(userID), nil
}

// generateJTI creates a unique token identifier.
func (s *Service) generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
