// Package handler は取引フィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"finance_backend/internal/feature/transactions/domain/entity"
	"finance_backend/internal/feature/transactions/transport/http/dto"
	"finance_backend/internal/platform/token"
)

// TransactionsUsecase は取引取得のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type TransactionsUsecase interface {
	ListAll(ctx context.Context) ([]entity.Transaction, error)
	ListForUser(ctx context.Context, userID string) ([]entity.Transaction, error)
}

// TransactionHandler は取引取得のHTTPリクエストを処理します。
type TransactionHandler struct {
	uc TransactionsUsecase
}

// NewTransactionHandler はTransactionHandlerの新しいインスタンスを生成します。
func NewTransactionHandler(uc TransactionsUsecase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

func toItems(txs []entity.Transaction) []dto.TransactionItem {
	out := make([]dto.TransactionItem, 0, len(txs))
	for _, t := range txs {
		out = append(out, dto.FromEntity(t))
	}
	return out
}

// ListAll はGET /api/transactionsを処理します。
// 元システムのコントラクト通り、全ユーザーの取引を認証なしで返します。
// 所有者によるフィルタリングはクライアントの責務です（認可済みアクセスにはListMineを使用）。
func (h *TransactionHandler) ListAll(c *gin.Context) {
	txs, err := h.uc.ListAll(c.Request.Context())
	if err != nil {
		slog.Error("list transactions failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, toItems(txs))
}

// ListMine はGET /api/transactions/meを処理します。
// token.AuthRequired()の背後に置かれ、検証済みクレームのuser_idでサーバー側絞り込みを行います。
func (h *TransactionHandler) ListMine(c *gin.Context) {
	userID := c.GetString(token.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
		return
	}
	txs, err := h.uc.ListForUser(c.Request.Context(), userID)
	if err != nil {
		slog.Error("list user transactions failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, toItems(txs))
}
