package dto

import (
	"time"

	"account_backend/internal/feature/auth/domain/entity"
)

// ErrorRes はエラーレスポンスです。Details はバリデーションエラー時のみ設定されます。
type ErrorRes struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// MessageRes はメッセージのみのレスポンスです。
type MessageRes struct {
	Message string `json:"message"`
}

// RegisterRes はユーザー登録成功時のレスポンスです。
type RegisterRes struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

// TokenRes はログイン成功時のレスポンスです。
type TokenRes struct {
	AccessToken string `json:"access_token"`
}

// ProfileRes はパスワードハッシュを含まないユーザープロフィールです。
type ProfileRes struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProfileRes はエンティティからプロフィールレスポンスを生成します。
func NewProfileRes(u *entity.User) ProfileRes {
	return ProfileRes{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
