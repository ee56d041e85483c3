// Package handler はダッシュボード集計のHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"finance_backend/internal/feature/dashboard/usecase"
	"finance_backend/internal/feature/transactions/domain/entity"
	txdto "finance_backend/internal/feature/transactions/transport/http/dto"
	"finance_backend/internal/platform/token"
)

// TransactionSource は集計対象となる1ユーザー分の取引を供給します。
// Goの慣例に従い、インターフェースはコンシューマー（handler）が定義します。
type TransactionSource interface {
	ListForUser(ctx context.Context, userID string) ([]entity.Transaction, error)
}

// SummaryRes はGET /api/dashboard/summaryのレスポンスボディです。
// 全フィールドは取引集合からリクエストごとに再計算されます。
type SummaryRes struct {
	Summary    usecase.Summary          `json:"summary"`
	Monthly    []usecase.MonthBucket    `json:"monthly"`
	TopSavings []usecase.SavingsMonth   `json:"top_savings"`
	Recent     []txdto.TransactionItem  `json:"recent"`
}

// DashboardHandler はダッシュボード集計のHTTPリクエストを処理します。
type DashboardHandler struct {
	txs TransactionSource
}

// NewDashboardHandler はDashboardHandlerの新しいインスタンスを生成します。
func NewDashboardHandler(txs TransactionSource) *DashboardHandler {
	return &DashboardHandler{txs: txs}
}

// Summary はGET /api/dashboard/summaryを処理します。
// token.AuthRequired()の背後に置かれ、検証済みクレームのuser_idの取引のみを集計します。
func (h *DashboardHandler) Summary(c *gin.Context) {
	userID := c.GetString(token.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
		return
	}

	txs, err := h.txs.ListForUser(c.Request.Context(), userID)
	if err != nil {
		slog.Error("dashboard summary failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	series := usecase.MonthlySeries(txs)
	recent := usecase.Recent(txs, usecase.RecentN)
	items := make([]txdto.TransactionItem, 0, len(recent))
	for _, t := range recent {
		items = append(items, txdto.FromEntity(t))
	}

	c.JSON(http.StatusOK, SummaryRes{
		Summary:    usecase.Summarize(txs),
		Monthly:    series,
		TopSavings: usecase.TopSavingsMonths(series, usecase.DefaultTopN),
		Recent:     items,
	})
}
