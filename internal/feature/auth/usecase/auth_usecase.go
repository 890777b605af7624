// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"log/slog"

	"account_backend/internal/feature/auth/domain"
	"account_backend/internal/feature/auth/domain/entity"
)

// dummyPasswordHash はユーザーが存在しない場合の比較に使うbcryptハッシュです。
// bcrypt比較が常に実行されることを保証します。
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, email string) (string, error)
}

// TokenParser はJWTトークンの検証とクレーム抽出のインターフェースを定義します。
type TokenParser interface {
	// ParseToken は署名・構造・有効期限を検証し、クレームを返します。
	// 検証に失敗した場合、domain.ErrInvalidTokenをラップしたエラーを返します。
	ParseToken(token string) (*entity.AuthClaims, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users        UserRepository
	hasher       PasswordHasher
	jwtGenerator JWTGenerator
	tokenParser  TokenParser
	logger       *slog.Logger
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(
	users UserRepository,
	hasher PasswordHasher,
	jwtGenerator JWTGenerator,
	tokenParser TokenParser,
	logger *slog.Logger,
) *authUsecase {
	return &authUsecase{
		users:        users,
		hasher:       hasher,
		jwtGenerator: jwtGenerator,
		tokenParser:  tokenParser,
		logger:       logger,
	}
}

// Login はユーザーを認証し、成功時にJWTトークンを返します。
// 未登録のメールアドレスと誤ったパスワードは同じdomain.ErrUnauthorizedになり、呼び出し元は区別できません。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		u.logger.ErrorContext(ctx, "failed to look up user for login", "email", email, "error", err)
	}

	passwordHash := dummyPasswordHash
	if err == nil {
		passwordHash = user.PasswordHash
	}

	ok, verifyErr := u.hasher.Verify(password, passwordHash)
	if verifyErr != nil {
		u.logger.ErrorContext(ctx, "stored password hash is malformed", "email", email, "error", verifyErr)
	}

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || verifyErr != nil || !ok {
		return "", domain.ErrUnauthorized
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if err != nil {
		u.logger.ErrorContext(ctx, "failed to generate token", "user_id", user.ID, "error", err)
		return "", err
	}

	return token, nil
}

// Authenticate はBearerトークンを検証し、リクエストの呼び出し元を解決します。
// 署名検証後、メールアドレスのクレームでユーザーを再検索し、
// 削除済みまたは存在しないアカウントを指すトークンはdomain.ErrUnauthorizedで拒否します。
func (u *authUsecase) Authenticate(ctx context.Context, token string) (*entity.Identity, error) {
	claims, err := u.tokenParser.ParseToken(token)
	if err != nil {
		return nil, err
	}

	user, err := u.users.FindByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		u.logger.ErrorContext(ctx, "failed to resolve token subject", "email", claims.Email, "error", err)
		return nil, domain.NewError(domain.ErrInformationRetrieval, "error retrieving user information")
	}

	// 削除後に同じメールアドレスで再登録されたアカウントへ古いトークンが通らないようにする
	if user.ID != claims.Subject {
		return nil, domain.ErrUnauthorized
	}

	return &entity.Identity{UserID: user.ID, Email: user.Email}, nil
}
