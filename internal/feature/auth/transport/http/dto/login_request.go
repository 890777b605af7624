// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import "strings"

// LoginReq は /auth/login エンドポイントのリクエストボディを表します。
// 必須フィールドとメール形式のバリデーションを含みます。
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Normalize はメールアドレス前後の空白を取り除きます。
func (r *LoginReq) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}
