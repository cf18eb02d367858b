// Package token mints and verifies the signed bearer tokens returned on
// login. No route consumes them yet; Parse exists for clients and tests.
package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token fails signature or expiry checks.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the account identity asserted by a bearer token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// Issuer mints HS256 tokens with a fixed validity window.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer builds an Issuer. The secret comes from process configuration;
// config.Load rejects an empty one before this is ever constructed.
func NewIssuer(secret []byte, ttl time.Duration) *Issuer {
	return &Issuer{secret: secret, ttl: ttl}
}

// Issue signs a token asserting the given account identity.
func (i *Issuer) Issue(accountID int64, email string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		UserID: strconv.FormatInt(accountID, 10),
		Email:  email,
	})
	return t.SignedString(i.secret)
}

// Parse verifies a token's signature and expiry and returns its claims.
func (i *Issuer) Parse(signed string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(signed, claims, func(_ *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !t.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
