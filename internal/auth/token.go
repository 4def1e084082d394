package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"hemis/m/domain"
)

const tokenIssuer = "hemis"

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	AccountID int64       `json:"uid"`
	Role      domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Username is carried in the standard subject claim.
func (c *Claims) Username() string { return c.Subject }

// TokenIssuer mints and verifies HS256 tokens with a shared secret.
type TokenIssuer struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

func NewTokenIssuer(secret string, expiration time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), expiration: expiration, now: time.Now}
}

func (t *TokenIssuer) Issue(accountID int64, username string, role domain.Role) (string, error) {
	now := t.now()
	claims := Claims{
		AccountID: accountID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expiration)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (t *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(t.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (t *TokenIssuer) Expiration() time.Duration { return t.expiration }
