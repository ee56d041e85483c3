package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance_backend/internal/feature/transactions/domain/entity"
	"finance_backend/internal/platform/token"
)

// mockTransactionsUsecase はTransactionsUsecaseのテスト用実装です。
type mockTransactionsUsecase struct {
	ListAllFunc     func(ctx context.Context) ([]entity.Transaction, error)
	ListForUserFunc func(ctx context.Context, userID string) ([]entity.Transaction, error)
}

func (m *mockTransactionsUsecase) ListAll(ctx context.Context) ([]entity.Transaction, error) {
	return m.ListAllFunc(ctx)
}

func (m *mockTransactionsUsecase) ListForUser(ctx context.Context, userID string) ([]entity.Transaction, error) {
	return m.ListForUserFunc(ctx, userID)
}

func sampleTransactions() []entity.Transaction {
	return []entity.Transaction{
		{
			TxID:        1,
			Date:        time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			Amount:      1200,
			Category:    "Revenue",
			Status:      "Paid",
			UserID:      "alice01",
			UserProfile: "https://example.com/alice.png",
		},
		{
			TxID:     2,
			Date:     time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
			Amount:   300,
			Category: "Expense",
			Status:   "Pending",
			UserID:   "bob02",
		},
	}
}

// setupRouter は検証済みuser_idをコンテキストへ注入するテスト用ミドルウェア越しに
// ハンドラーを配線します。userIDが空のケースも再現できます。
func setupRouter(uc TransactionsUsecase, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewTransactionHandler(uc)
	r.GET("/api/transactions", h.ListAll)
	r.GET("/api/transactions/me", func(c *gin.Context) {
		if userID != "" {
			c.Set(token.ContextUserID, userID)
		}
		c.Next()
	}, h.ListMine)
	return r
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTransactionHandler_ListAll(t *testing.T) {
	t.Run("全ユーザーの取引を200で返す", func(t *testing.T) {
		uc := &mockTransactionsUsecase{
			ListAllFunc: func(ctx context.Context) ([]entity.Transaction, error) {
				return sampleTransactions(), nil
			},
		}
		w := doGet(setupRouter(uc, ""), "/api/transactions")

		assert.Equal(t, http.StatusOK, w.Code)

		var items []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
		require.Len(t, items, 2)
		assert.Equal(t, float64(1), items[0]["id"])
		assert.Equal(t, "Revenue", items[0]["category"])
		assert.Equal(t, "alice01", items[0]["user_id"])
		assert.Equal(t, "bob02", items[1]["user_id"])
	})

	t.Run("空のストアでは空配列を返す", func(t *testing.T) {
		uc := &mockTransactionsUsecase{
			ListAllFunc: func(ctx context.Context) ([]entity.Transaction, error) {
				return nil, nil
			},
		}
		w := doGet(setupRouter(uc, ""), "/api/transactions")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("取得失敗時は500を返す", func(t *testing.T) {
		uc := &mockTransactionsUsecase{
			ListAllFunc: func(ctx context.Context) ([]entity.Transaction, error) {
				return nil, errors.New("connection refused")
			},
		}
		w := doGet(setupRouter(uc, ""), "/api/transactions")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"message":"Server error"}`, w.Body.String())
	})
}

func TestTransactionHandler_ListMine(t *testing.T) {
	t.Run("コンテキストのuser_idで絞り込んだ結果を返す", func(t *testing.T) {
		uc := &mockTransactionsUsecase{
			ListForUserFunc: func(ctx context.Context, userID string) ([]entity.Transaction, error) {
				assert.Equal(t, "alice01", userID)
				return sampleTransactions()[:1], nil
			},
		}
		w := doGet(setupRouter(uc, "alice01"), "/api/transactions/me")

		assert.Equal(t, http.StatusOK, w.Code)

		var items []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
		require.Len(t, items, 1)
		assert.Equal(t, "alice01", items[0]["user_id"])
	})

	t.Run("user_id未設定時は401を返す", func(t *testing.T) {
		uc := &mockTransactionsUsecase{
			ListForUserFunc: func(ctx context.Context, userID string) ([]entity.Transaction, error) {
				t.Fatal("usecase must not be called without a verified user id")
				return nil, nil
			},
		}
		w := doGet(setupRouter(uc, ""), "/api/transactions/me")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"invalid token"}`, w.Body.String())
	})

	t.Run("取得失敗時は500を返す", func(t *testing.T) {
		uc := &mockTransactionsUsecase{
			ListForUserFunc: func(ctx context.Context, userID string) ([]entity.Transaction, error) {
				return nil, errors.New("context deadline exceeded")
			},
		}
		w := doGet(setupRouter(uc, "alice01"), "/api/transactions/me")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"message":"Server error"}`, w.Body.String())
	})
}
