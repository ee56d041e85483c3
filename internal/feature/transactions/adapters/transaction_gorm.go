// Package adapters は取引フィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"finance_backend/internal/feature/transactions/domain/entity"
	"finance_backend/internal/feature/transactions/usecase"
)

// transactionGorm はTransactionRepositoryインターフェースのリレーショナルDB実装です。
type transactionGorm struct {
	db *gorm.DB
}

var _ usecase.TransactionRepository = (*transactionGorm)(nil)

// NewTransactionGorm は指定されたgorm.DB接続でtransactionGormの新しいインスタンスを生成します。
func NewTransactionGorm(db *gorm.DB) *transactionGorm {
	return &transactionGorm{db: db}
}

// TransactionModel はtransactionsテーブルの行形状です。
type TransactionModel struct {
	ID          uint      `gorm:"primaryKey"`
	TxID        int64     `gorm:"column:tx_id;uniqueIndex;not null"`
	Date        time.Time `gorm:"not null"`
	Amount      float64   `gorm:"not null"`
	Category    string    `gorm:"size:32;not null"`
	Status      string    `gorm:"size:32;not null"`
	UserID      string    `gorm:"column:user_id;index;size:64;not null"`
	UserProfile string    `gorm:"size:512"`
}

// TableName はGORMが使用するテーブル名を指定します。
func (TransactionModel) TableName() string {
	return "transactions"
}

func toEntity(m TransactionModel) entity.Transaction {
	return entity.Transaction{
		TxID:        m.TxID,
		Date:        m.Date,
		Amount:      m.Amount,
		Category:    m.Category,
		Status:      m.Status,
		UserID:      m.UserID,
		UserProfile: m.UserProfile,
	}
}

// ListAll はストア内の全取引を取得します。
func (r *transactionGorm) ListAll(ctx context.Context) ([]entity.Transaction, error) {
	var rows []TransactionModel
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Transaction, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

// ListByUserID は指定されたuser_idが所有する取引のみを取得します。
func (r *transactionGorm) ListByUserID(ctx context.Context, userID string) ([]entity.Transaction, error) {
	var rows []TransactionModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Transaction, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}
