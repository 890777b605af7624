package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"account_backend/internal/feature/auth/domain"
	"account_backend/internal/feature/auth/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化し、生成されたIDを設定します。
	// ストレージの一意制約に違反した場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindProfileByEmail はパスワードハッシュ列を除いてユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindProfileByEmail(ctx context.Context, email string) (*entity.User, error)

	// DeleteByID は指定されたIDのユーザーを削除し、削除された行数を返します。
	DeleteByID(ctx context.Context, id uint) (int64, error)
}

// PasswordHasher はパスワードのハッシュ化と検証を抽象化します。
type PasswordHasher interface {
	// Hash はソルト付きの一方向ハッシュを生成します。
	Hash(password string) (string, error)
	// Verify は平文パスワードがハッシュと一致するかを返します。
	// 不一致はエラーではなくfalseで表し、エラーは不正なハッシュの場合のみ返します。
	Verify(password, hash string) (bool, error)
}

// userUsecase はアカウントのライフサイクル（登録・参照・削除）を実装します。
type userUsecase struct {
	users  UserRepository
	hasher PasswordHasher
	logger *slog.Logger
	now    func() time.Time
}

// NewUserUsecase はuserUsecaseの新しいインスタンスを生成します。
func NewUserUsecase(users UserRepository, hasher PasswordHasher, logger *slog.Logger) *userUsecase {
	return &userUsecase{
		users:  users,
		hasher: hasher,
		logger: logger,
		now:    time.Now,
	}
}

// Create は新規ユーザーを登録します。
// 事前のメールアドレス重複チェックはベストエフォートであり、
// 同時登録の競合はストレージの一意制約で最終的に判定されます。
func (u *userUsecase) Create(ctx context.Context, name, email, password string) (*entity.User, error) {
	existing, err := u.users.FindByEmail(ctx, email)
	switch {
	case err == nil && existing != nil:
		u.logger.WarnContext(ctx, "attempt to register with used email", "email", email)
		return nil, domain.ErrDuplicateEmail
	case err != nil && !errors.Is(err, ErrUserNotFound):
		u.logger.ErrorContext(ctx, "failed to check existing user", "email", email, "error", err)
		return nil, domain.NewError(domain.ErrPersistence, "failed to save new user")
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		u.logger.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, domain.NewError(domain.ErrPersistence, "failed to save new user")
	}

	now := u.now().UTC()
	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.users.Create(ctx, user); err != nil {
		// 事前チェックをすり抜けた同時登録は一意制約違反として返ってくる
		if errors.Is(err, ErrEmailAlreadyExists) {
			u.logger.WarnContext(ctx, "concurrent registration rejected by unique constraint", "email", email)
			return nil, domain.ErrDuplicateEmail
		}
		u.logger.ErrorContext(ctx, "error saving new user", "email", email, "error", err)
		return nil, domain.NewError(domain.ErrPersistence, "failed to save new user")
	}

	u.logger.InfoContext(ctx, "new user registered", "user_id", user.ID)
	return user, nil
}

// FindProfileByEmail はパスワードを含まないプロフィールを取得します。
// 該当ユーザーがいない場合は (nil, nil) を返します。
func (u *userUsecase) FindProfileByEmail(ctx context.Context, email string) (*entity.User, error) {
	return u.find(ctx, email, u.users.FindProfileByEmail)
}

// FindByEmail はパスワードハッシュを含む完全なレコードを取得します。
// 該当ユーザーがいない場合は (nil, nil) を返します。
func (u *userUsecase) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return u.find(ctx, email, u.users.FindByEmail)
}

func (u *userUsecase) find(
	ctx context.Context,
	email string,
	lookup func(context.Context, string) (*entity.User, error),
) (*entity.User, error) {
	user, err := lookup(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			u.logger.InfoContext(ctx, "no user found for email", "email", email)
			return nil, nil
		}
		u.logger.ErrorContext(ctx, "error retrieving user by email", "email", email, "error", err)
		return nil, domain.NewError(domain.ErrInformationRetrieval, "error retrieving user information")
	}
	return user, nil
}

// DeleteByID は指定されたIDのユーザーを削除します。削除は即時かつ最終的です。
// IDが0の場合はストレージに問い合わせずにErrInvalidIdentifierを返します。
func (u *userUsecase) DeleteByID(ctx context.Context, id uint) error {
	if id == 0 {
		u.logger.ErrorContext(ctx, "attempted to delete a user without a valid id")
		return domain.ErrInvalidIdentifier
	}

	affected, err := u.users.DeleteByID(ctx, id)
	if err != nil {
		u.logger.ErrorContext(ctx, "error deleting user", "user_id", id, "error", err)
		return domain.NewError(domain.ErrPersistence, "failed to delete user")
	}
	if affected == 0 {
		u.logger.WarnContext(ctx, "no user found with id", "user_id", id)
		return domain.ErrNotFound
	}

	u.logger.InfoContext(ctx, "user deleted", "user_id", id)
	return nil
}
