package jwtmw

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"account_backend/internal/feature/auth/domain"
	"account_backend/internal/feature/auth/domain/entity"
)

// Parser はGeneratorが発行したトークンを検証します。
type Parser struct {
	secret []byte
	issuer string
}

// NewParser は指定されたシークレットと発行者でParserを生成します。
func NewParser(secret, issuer string) *Parser {
	return &Parser{secret: []byte(secret), issuer: issuer}
}

// ParseToken は署名・アルゴリズム・有効期限・発行者を検証し、クレームを返します。
// 失敗はすべてdomain.ErrInvalidTokenとして返します。
func (p *Parser) ParseToken(tokenStr string) (*entity.AuthClaims, error) {
	opts := []jwt.ParserOption{
		// HMAC以外（noneを含む）のアルゴリズムを拒否
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if p.issuer != "" {
		opts = append(opts, jwt.WithIssuer(p.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenStr, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		return p.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: unexpected claims", domain.ErrInvalidToken)
	}

	sub, err := strconv.ParseUint(claims.Subject, 10, 0)
	if err != nil || sub == 0 {
		return nil, fmt.Errorf("%w: invalid subject %q", domain.ErrInvalidToken, claims.Subject)
	}
	if claims.Email == "" {
		return nil, fmt.Errorf("%w: missing email claim", domain.ErrInvalidToken)
	}

	return &entity.AuthClaims{Subject: uint(sub), Email: claims.Email}, nil
}
