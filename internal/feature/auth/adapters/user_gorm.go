// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/feature/auth/usecase"
)

const (
	// mysqlDuplicateEntry はMySQLのユニークキー重複エラー番号です。
	mysqlDuplicateEntry = 1062
	// pgUniqueViolation はPostgreSQLの一意制約違反のSQLSTATEです。
	pgUniqueViolation = "23505"
)

// profileColumns はプロフィール取得時に選択する列です。password_hashは含みません。
var profileColumns = []string{"id", "name", "email", "created_at", "updated_at"}

// userGorm はUserRepositoryインターフェースのGORM実装です。
// SQLite・MySQL・PostgreSQLのいずれの接続でも動作します。
type userGorm struct {
	db *gorm.DB
}

// userGormがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm は指定されたgorm.DB接続でuserGormの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create はユーザーをデータベースに追加し、生成されたIDを設定します。
// 同じメールアドレスのユーザーが既に存在する場合、usecase.ErrEmailAlreadyExistsを返します。
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("user is nil")
	}
	m := UserModelFromEntity(u)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	u.ID = m.ID
	return nil
}

// FindByEmail はメールアドレスでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var m UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return m.ToEntity()
}

// FindProfileByEmail はpassword_hash列を読み込まずにユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userGorm) FindProfileByEmail(ctx context.Context, email string) (*entity.User, error) {
	var m UserModel
	err := r.db.WithContext(ctx).
		Select(profileColumns).
		Where("email = ?", email).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return m.ToEntity()
}

// DeleteByID はIDでユーザーを1文のDELETEで削除し、影響を受けた行数を返します。
func (r *userGorm) DeleteByID(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&UserModel{}, id)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// isUniqueViolation はドライバー固有の一意制約違反エラーを判定します。
// gorm.Config.TranslateErrorが有効な場合はgorm.ErrDuplicatedKeyに変換済みです。
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
