package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"account_backend/internal/feature/auth/domain"
	"account_backend/internal/feature/auth/domain/entity"
)

func TestUserHandler_Register(t *testing.T) {
	tests := []struct {
		name            string
		requestBody     string
		mockCreateFunc  func(ctx context.Context, name, email, password string) (*entity.User, error)
		expectedStatus  int
		expectedBody    gin.H
		expectUsecaseOK bool
	}{
		{
			name:        "success: user registration",
			requestBody: `{"name":"  Jane Doe ","email":"jane.doe@example.com","password":"password123"}`,
			mockCreateFunc: func(ctx context.Context, name, email, password string) (*entity.User, error) {
				if name != "Jane Doe" {
					return nil, errors.New("name was not trimmed")
				}
				return &entity.User{ID: 42, Name: name, Email: email}, nil
			},
			expectedStatus:  http.StatusCreated,
			expectedBody:    gin.H{"message": "User successfully registered", "id": float64(42)},
			expectUsecaseOK: true,
		},
		{
			name:           "failure: short name",
			requestBody:    `{"name":"Jo","email":"jo@example.com","password":"password123"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "validation error", "details": []any{"name must be at least 4 characters"}},
		},
		{
			name:           "failure: invalid email address",
			requestBody:    `{"name":"Jane Doe","email":"invalid-email","password":"password123"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "validation error", "details": []any{"email must be an email"}},
		},
		{
			name:        "failure: duplicate email",
			requestBody: `{"name":"Jane Doe","email":"existing@example.com","password":"password123"}`,
			mockCreateFunc: func(ctx context.Context, name, email, password string) (*entity.User, error) {
				return nil, domain.ErrDuplicateEmail
			},
			expectedStatus:  http.StatusBadRequest,
			expectedBody:    gin.H{"error": "email already in use"},
			expectUsecaseOK: true,
		},
		{
			name:        "failure: persistence error",
			requestBody: `{"name":"Jane Doe","email":"jane@example.com","password":"password123"}`,
			mockCreateFunc: func(ctx context.Context, name, email, password string) (*entity.User, error) {
				return nil, domain.NewError(domain.ErrPersistence, "failed to save new user")
			},
			expectedStatus:  http.StatusBadRequest,
			expectedBody:    gin.H{"error": "failed to save new user"},
			expectUsecaseOK: true,
		},
		{
			name:        "failure: unclassified error",
			requestBody: `{"name":"Jane Doe","email":"jane@example.com","password":"password123"}`,
			mockCreateFunc: func(ctx context.Context, name, email, password string) (*entity.User, error) {
				return nil, errors.New("boom")
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedBody:    gin.H{"error": "internal server error"},
			expectUsecaseOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockUserUsecase{CreateFunc: tt.mockCreateFunc}
			handler := NewUserHandler(mockUC, discardLogger())

			router := gin.New()
			router.POST("/users/register", handler.Register)

			req := httptest.NewRequest(http.MethodPost, "/users/register", bytes.NewBufferString(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
			assert.Equal(t, tt.expectedBody, responseBody)

			if tt.expectUsecaseOK {
				assert.Equal(t, 1, mockUC.createCalls)
			} else {
				assert.Zero(t, mockUC.createCalls, "usecase must not be called for invalid input")
			}
		})
	}
}

func TestUserHandler_Profile(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		findFunc       func(ctx context.Context, email string) (*entity.User, error)
		expectedStatus int
	}{
		{
			name: "success",
			findFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &entity.User{ID: 7, Name: "Jane Doe", Email: email, PasswordHash: "secret-hash", CreatedAt: created, UpdatedAt: created}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "user removed after token was issued",
			findFunc:       func(ctx context.Context, email string) (*entity.User, error) { return nil, nil },
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "retrieval failure",
			findFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return nil, domain.NewError(domain.ErrInformationRetrieval, "error retrieving user information")
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotEmail string
			mockUC := &mockUserUsecase{FindProfileByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				gotEmail = email
				return tt.findFunc(ctx, email)
			}}
			handler := NewUserHandler(mockUC, discardLogger())

			router := gin.New()
			router.GET("/users/profile", withIdentity(7, "jane.doe@example.com"), handler.Profile)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/profile", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "jane.doe@example.com", gotEmail)
			assert.NotContains(t, w.Body.String(), "secret-hash")
			assert.NotContains(t, strings.ToLower(w.Body.String()), "password")

			if tt.expectedStatus == http.StatusOK {
				var body map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, float64(7), body["id"])
				assert.Equal(t, "Jane Doe", body["name"])
				assert.Equal(t, "jane.doe@example.com", body["email"])
				assert.Equal(t, "2026-03-01T09:00:00Z", body["created_at"])
			}
		})
	}
}

func TestUserHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		deleteErr      error
		expectedStatus int
		expectedBody   gin.H
	}{
		{"success", nil, http.StatusOK, gin.H{"message": "User account deleted successfully."}},
		{"already deleted", domain.ErrNotFound, http.StatusNotFound, gin.H{"error": "no user found with that id"}},
		{"invalid id", domain.ErrInvalidIdentifier, http.StatusBadRequest, gin.H{"error": "no valid id provided"}},
		{"persistence failure", domain.NewError(domain.ErrPersistence, "failed to delete user"), http.StatusBadRequest, gin.H{"error": "failed to delete user"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID uint
			mockUC := &mockUserUsecase{DeleteByIDFunc: func(ctx context.Context, id uint) error {
				gotID = id
				return tt.deleteErr
			}}
			handler := NewUserHandler(mockUC, discardLogger())

			router := gin.New()
			router.DELETE("/users/delete", withIdentity(9, "jane@example.com"), handler.Delete)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/delete", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, uint(9), gotID)

			var responseBody gin.H
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
			assert.Equal(t, tt.expectedBody, responseBody)
		})
	}
}

func TestUserHandler_RequiresIdentity(t *testing.T) {
	handler := NewUserHandler(&mockUserUsecase{}, discardLogger())

	router := gin.New()
	router.GET("/users/profile", handler.Profile)
	router.DELETE("/users/delete", handler.Delete)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		path := "/users/profile"
		if method == http.MethodDelete {
			path = "/users/delete"
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(method, path, nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code, method)
	}
}
