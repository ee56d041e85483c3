// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"finance_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// hashCost はbcryptのワークファクターです（固定値）。
const hashCost = 10

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスまたはuser_idのユーザーが既に存在する場合、ErrIdentifierExistsを返します。
	// 一意性チェックと挿入はストレージのユニーク制約により原子的です。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByEmailOrUserID はメールアドレスまたはuser_idのどちらかに一致するユーザーを取得します。
	// どちらにも一致しない場合、ErrUserNotFoundを返します。
	FindByEmailOrUserID(ctx context.Context, email, userID string) (*entity.User, error)
}

// TokenIssuer はセッショントークン発行のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/token）ではなくコンシューマー（usecase）が定義します。
type TokenIssuer interface {
	// GenerateToken は指定されたユーザーの署名済みセッショントークンを生成します。
	GenerateToken(userID, email, name string) (string, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users  UserRepository
	issuer TokenIssuer
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, issuer TokenIssuer) *authUsecase {
	return &authUsecase{
		users:  users,
		issuer: issuer,
	}
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録します。
// メールアドレスまたはuser_idが既に使われている場合はErrIdentifierExistsを返します。
// 平文パスワードはログにも永続化層にも決して渡されません。
func (u *authUsecase) Register(ctx context.Context, name, userID, email, password string) error {
	if name == "" || userID == "" || email == "" || password == "" {
		return ErrMissingFields
	}

	// 事前チェック。同一識別子での同時登録はストレージのユニーク制約が最終的に防ぐ
	_, err := u.users.FindByEmailOrUserID(ctx, email, userID)
	switch {
	case err == nil:
		return ErrIdentifierExists
	case !errors.Is(err, ErrUserNotFound):
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Name: name, UserID: userID, Email: email, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrIdentifierExists) {
			// 事前チェック後に割り込まれた同時登録。敗者は同じ競合を観測する
			return ErrIdentifierExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("user registered", "user_id", userID)
	return nil
}

// Login はユーザーを認証し、成功時にセッショントークンと公開プロフィールを返します。
// 「メール未登録」と「パスワード不一致」は同一のErrInvalidCredentialsになります。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、同一のエラーを返す
	if err != nil || compareErr != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, tokenErr := u.issuer.GenerateToken(user.UserID, user.Email, user.Name)
	if tokenErr != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, user, nil
}
