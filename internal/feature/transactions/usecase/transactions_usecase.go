// Package usecase は取引データ操作のビジネスロジックを実装します。
package usecase

import (
	"context"

	"finance_backend/internal/feature/transactions/domain/entity"
)

// TransactionRepository は取引データの読み取りレイヤーを抽象化します。
// 取引はこのシステムの外で作成され、ここでは読み取り専用です。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type TransactionRepository interface {
	// ListAll はストア内の全取引を所有者を問わず取得します。
	ListAll(ctx context.Context) ([]entity.Transaction, error)
	// ListByUserID は指定されたuser_idが所有する取引のみを取得します。
	ListByUserID(ctx context.Context, userID string) ([]entity.Transaction, error)
}

// transactionsUsecase は取引データ操作のユースケースを定義します。
type transactionsUsecase struct {
	txs TransactionRepository
}

// NewTransactionsUsecase はtransactionsUsecaseの新しいインスタンスを生成します。
func NewTransactionsUsecase(txs TransactionRepository) *transactionsUsecase {
	return &transactionsUsecase{txs: txs}
}

// ListAll は全ユーザーの取引を返します。所有者によるフィルタリングは呼び出し側の責務です。
// これは元システムのコントラクトをそのまま保持したものであり、認可の穴でもあります。
// 認可済みアクセスにはListForUserを使用してください。
func (u *transactionsUsecase) ListAll(ctx context.Context) ([]entity.Transaction, error) {
	return u.txs.ListAll(ctx)
}

// ListForUser は検証済みトークンのuser_idに対応する取引のみをサーバー側で絞り込んで返します。
func (u *transactionsUsecase) ListForUser(ctx context.Context, userID string) ([]entity.Transaction, error) {
	return u.txs.ListByUserID(ctx, userID)
}
