// Package jwtmw はJWTの発行・検証とGin用の認証ミドルウェアを提供します。
package jwtmw

import "github.com/golang-jwt/jwt/v5"

// tokenClaims はトークンに埋め込むクレームです。subにはユーザーIDを10進文字列で格納します。
type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
