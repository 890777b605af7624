package jwtmw

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Generator creates signed HS256 tokens for authenticated users.
type Generator struct {
	secret     []byte
	expiration time.Duration
	issuer     string
	now        func() time.Time
}

// NewGenerator creates a new JWT generator with the provided secret, expiration duration and issuer.
func NewGenerator(secret string, expiration time.Duration, issuer string) *Generator {
	return &Generator{
		secret:     []byte(secret),
		expiration: expiration,
		issuer:     issuer,
		now:        time.Now,
	}
}

// GenerateToken creates a signed JWT token with standard claims.
// Every token carries an expiry.
func (g *Generator) GenerateToken(userID uint, email string) (string, error) {
	now := g.now()
	claims := tokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			Issuer:    g.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
