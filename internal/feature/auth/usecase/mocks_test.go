package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"account_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
// It simulates database operations during testing.
type mockUserRepository struct {
	CreateFunc             func(ctx context.Context, user *entity.User) error
	FindByEmailFunc        func(ctx context.Context, email string) (*entity.User, error)
	FindProfileByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	DeleteByIDFunc         func(ctx context.Context, id uint) (int64, error)

	createCalls int
	deleteCalls int
}

// Create is the mock implementation of the Create method.
func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	m.createCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	user.ID = 1
	return nil // Default: success
}

// FindByEmail is the mock implementation of the FindByEmail method.
func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default: return user not found error
	return nil, ErrUserNotFound
}

// FindProfileByEmail is the mock implementation of the FindProfileByEmail method.
func (m *mockUserRepository) FindProfileByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindProfileByEmailFunc != nil {
		return m.FindProfileByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound
}

// DeleteByID is the mock implementation of the DeleteByID method.
func (m *mockUserRepository) DeleteByID(ctx context.Context, id uint) (int64, error) {
	m.deleteCalls++
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return 1, nil
}

// mockHasher is a mock implementation of the PasswordHasher interface.
// Without overrides it hashes with bcrypt.MinCost to keep tests fast.
type mockHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) (bool, error)

	verifyCalls int
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(h), err
}

func (m *mockHasher) Verify(password, hash string) (bool, error) {
	m.verifyCalls++
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return err == nil, err
}

// mockJWTGenerator is a mock implementation of JWTGenerator interface.
type mockJWTGenerator struct {
	GenerateTokenFunc func(userID uint, email string) (string, error)
}

// GenerateToken is the mock implementation of the GenerateToken method.
func (m *mockJWTGenerator) GenerateToken(userID uint, email string) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID, email)
	}
	// Default: return a dummy token
	return "mock-jwt-token", nil
}

// mockTokenParser is a mock implementation of TokenParser interface.
type mockTokenParser struct {
	ParseTokenFunc func(token string) (*entity.AuthClaims, error)
}

func (m *mockTokenParser) ParseToken(token string) (*entity.AuthClaims, error) {
	if m.ParseTokenFunc != nil {
		return m.ParseTokenFunc(token)
	}
	return &entity.AuthClaims{Subject: 1, Email: "test@example.com"}, nil
}

// memoryUserRepository is an in-memory UserRepository with a unique email index.
// It is used for property and scenario tests that need real state.
type memoryUserRepository struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*entity.User
	writes int
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[uint]*entity.User)}
}

func (r *memoryUserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return ErrEmailAlreadyExists
		}
	}
	r.nextID++
	r.writes++
	user.ID = r.nextID
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *memoryUserRepository) FindProfileByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := r.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

func (r *memoryUserRepository) DeleteByID(_ context.Context, id uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return 0, nil
	}
	delete(r.users, id)
	r.writes++
	return 1, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
