package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/auth/domain/entity"
	jwtmw "account_backend/internal/platform/jwt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	LoginFunc func(ctx context.Context, email, password string) (string, error)
}

// Login is the mock implementation of the Login method.
func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", errors.New("login failed") // Default: failure
}

// mockUserUsecase is a mock implementation of the UserUsecase interface.
type mockUserUsecase struct {
	CreateFunc             func(ctx context.Context, name, email, password string) (*entity.User, error)
	FindProfileByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	DeleteByIDFunc         func(ctx context.Context, id uint) error

	createCalls int
}

func (m *mockUserUsecase) Create(ctx context.Context, name, email, password string) (*entity.User, error) {
	m.createCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, name, email, password)
	}
	return &entity.User{ID: 1, Name: name, Email: email}, nil
}

func (m *mockUserUsecase) FindProfileByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindProfileByEmailFunc != nil {
		return m.FindProfileByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserUsecase) DeleteByID(ctx context.Context, id uint) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// withIdentity stands in for jwtmw.AuthRequired in handler tests.
func withIdentity(userID uint, email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, userID)
		c.Set(jwtmw.ContextEmail, email)
		c.Next()
	}
}
