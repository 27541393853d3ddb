package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// AccessTTL applies to sessions that did not ask to be remembered.
	AccessTTL = 60 * time.Minute
	// RememberedAccessTTL applies when the login carried remember=true.
	RememberedAccessTTL = 7 * 24 * time.Hour
	// RefreshTTL bounds the refresh token cookie regardless of issuance.
	RefreshTTL = 7 * 24 * time.Hour
)

type Claims struct {
	UserID uuid.UUID `json:"userId"`
	jwt.RegisteredClaims
}

// TokenManager signs and validates access tokens with a server-held HS256
// key. Access tokens are stateless: validity is signature plus expiry only,
// so they cannot be revoked before they expire.
type TokenManager struct {
	secret []byte
	issuer string
}

func NewTokenManager(secret []byte, issuer string) (*TokenManager, error) {
	if len(secret) == 0 {
		return nil, errors.New("auth: empty signing secret")
	}
	return &TokenManager{secret: secret, issuer: issuer}, nil
}

// AccessTTLFor selects the access-token lifetime for the remember policy.
func (m *TokenManager) AccessTTLFor(remember bool) time.Duration {
	if remember {
		return RememberedAccessTTL
	}
	return AccessTTL
}

// Generate mints a signed access token for userID expiring after ttl.
func (m *TokenManager) Generate(userID uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse validates signature and expiry and returns the claims.
func (m *TokenManager) Parse(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}
	if claims.ExpiresAt == nil || time.Now().After(claims.ExpiresAt.Time) {
		return nil, errors.New("token expired")
	}
	return claims, nil
}
