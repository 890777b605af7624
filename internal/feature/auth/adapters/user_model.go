package adapters

import (
	"fmt"
	"time"

	"account_backend/internal/feature/auth/domain/entity"
)

// timestampLayout is the string encoding of created_at/updated_at columns.
const timestampLayout = time.RFC3339Nano

// UserModel is the GORM model for the users table.
// The table itself is created by the goose migrations, including the unique index on email.
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:100;not null"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string `gorm:"column:password_hash;size:255;not null"`
	CreatedAt    string `gorm:"column:created_at;not null"`
	UpdatedAt    string `gorm:"column:updated_at;not null"`
}

// TableName returns the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts the GORM model to a domain entity.
func (m *UserModel) ToEntity() (*entity.User, error) {
	createdAt, err := parseTimestamp(m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at for user %d: %w", m.ID, err)
	}
	updatedAt, err := parseTimestamp(m.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid updated_at for user %d: %w", m.ID, err)
	}
	return &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}

// UserModelFromEntity converts a domain entity to a GORM model.
func UserModelFromEntity(u *entity.User) *UserModel {
	return &UserModel{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt.UTC().Format(timestampLayout),
		UpdatedAt:    u.UpdatedAt.UTC().Format(timestampLayout),
	}
}

func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(timestampLayout, s)
}
