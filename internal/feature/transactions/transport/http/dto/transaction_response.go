// Package dto は取引フィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import (
	"time"

	"finance_backend/internal/feature/transactions/domain/entity"
)

// TransactionItem は取引1件のレスポンスDTOです。
// dateはISO8601（RFC3339）でシリアライズされます。
type TransactionItem struct {
	ID          int64     `json:"id"`           // 取引の一意な数値ID
	Date        time.Time `json:"date"`         // 取引日時
	Amount      float64   `json:"amount"`       // 金額（非負の大きさ。方向はcategoryが決める）
	Category    string    `json:"category"`     // "revenue" | "expense"（大文字小文字は区別しない）
	Status      string    `json:"status"`       // "paid" | "pending"（大文字小文字は区別しない）
	UserID      string    `json:"user_id"`      // 所有ユーザーの外部ハンドル
	UserProfile string    `json:"user_profile"` // アバターURI（任意）
}

// FromEntity はドメインエンティティをレスポンスDTOに変換します。
func FromEntity(t entity.Transaction) TransactionItem {
	return TransactionItem{
		ID:          t.TxID,
		Date:        t.Date,
		Amount:      t.Amount,
		Category:    t.Category,
		Status:      t.Status,
		UserID:      t.UserID,
		UserProfile: t.UserProfile,
	}
}
