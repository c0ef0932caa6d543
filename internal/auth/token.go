package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dangerclosesec/scholar/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the httpOnly cookie that carries the access token.
const CookieName = "accessToken"

var ErrInvalidToken = errors.New("invalid token")

// TokenManager signs and verifies HS256 access tokens.
type TokenManager struct {
	secret       []byte
	expiryPeriod time.Duration
	now          func() time.Time
}

func NewTokenManager(secret string, expiryPeriod time.Duration) *TokenManager {
	return &TokenManager{
		secret:       []byte(secret),
		expiryPeriod: expiryPeriod,
		now:          time.Now,
	}
}

// Claims is the token payload. The fields mirror domain.Principal.
type Claims struct {
	ID       string `json:"id"`
	EmpID    string `json:"empId"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	AccessTo string `json:"accessTo"`
	jwt.RegisteredClaims
}

// Principal converts verified claims into the request principal. Unknown
// roles and scopes fall back to the least privileged values.
func (c *Claims) Principal() domain.Principal {
	role := domain.Role(c.Role)
	if !role.Valid() {
		role = domain.RoleUser
	}
	access := domain.AccessTo(c.AccessTo)
	if !access.Valid() {
		access = domain.AccessNone
	}
	return domain.Principal{
		ID:       c.ID,
		EmpID:    c.EmpID,
		Name:     c.Name,
		Role:     role,
		AccessTo: access,
	}
}

// Generate signs a token for p. The API never issues tokens itself; this is
// used by scholarctl and tests.
func (tm *TokenManager) Generate(p domain.Principal) (string, error) {
	now := tm.now()
	claims := Claims{
		ID:       p.ID,
		EmpID:    p.EmpID,
		Name:     p.Name,
		Role:     string(p.Role),
		AccessTo: string(p.AccessTo),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.expiryPeriod)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// Validate verifies the signature and expiry and returns the claims.
func (tm *TokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tm.secret, nil
	}, jwt.WithTimeFunc(tm.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
