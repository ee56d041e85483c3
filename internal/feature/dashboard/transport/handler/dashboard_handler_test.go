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

// mockTransactionSource はTransactionSourceのテスト用実装です。
type mockTransactionSource struct {
	ListForUserFunc func(ctx context.Context, userID string) ([]entity.Transaction, error)
}

func (m *mockTransactionSource) ListForUser(ctx context.Context, userID string) ([]entity.Transaction, error) {
	return m.ListForUserFunc(ctx, userID)
}

func setupRouter(src TransactionSource, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewDashboardHandler(src)
	r.GET("/api/dashboard/summary", func(c *gin.Context) {
		if userID != "" {
			c.Set(token.ContextUserID, userID)
		}
		c.Next()
	}, h.Summary)
	return r
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDashboardHandler_Summary(t *testing.T) {
	t.Run("集計結果一式を200で返す", func(t *testing.T) {
		src := &mockTransactionSource{
			ListForUserFunc: func(ctx context.Context, userID string) ([]entity.Transaction, error) {
				assert.Equal(t, "alice01", userID)
				return []entity.Transaction{
					{
						TxID:     1,
						Date:     time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
						Amount:   100,
						Category: "revenue",
						Status:   "Paid",
						UserID:   "alice01",
					},
					{
						TxID:     2,
						Date:     time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
						Amount:   40,
						Category: "expense",
						Status:   "Paid",
						UserID:   "alice01",
					},
				}, nil
			},
		}
		w := doGet(setupRouter(src, "alice01"), "/api/dashboard/summary")

		assert.Equal(t, http.StatusOK, w.Code)

		var res struct {
			Summary struct {
				Revenue  float64 `json:"revenue"`
				Expenses float64 `json:"expenses"`
				Balance  float64 `json:"balance"`
				Savings  float64 `json:"savings"`
			} `json:"summary"`
			Monthly []struct {
				Month    string  `json:"month"`
				Income   float64 `json:"Income"`
				Expenses float64 `json:"Expenses"`
			} `json:"monthly"`
			TopSavings []struct {
				Month   string  `json:"month"`
				Savings float64 `json:"Savings"`
			} `json:"top_savings"`
			Recent []struct {
				ID int64 `json:"id"`
			} `json:"recent"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

		assert.Equal(t, float64(100), res.Summary.Revenue)
		assert.Equal(t, float64(40), res.Summary.Expenses)
		assert.Equal(t, float64(60), res.Summary.Balance)
		assert.Equal(t, float64(60), res.Summary.Savings)

		require.Len(t, res.Monthly, 12)
		assert.Equal(t, "Mar", res.Monthly[2].Month)
		assert.Equal(t, float64(100), res.Monthly[2].Income)
		assert.Equal(t, float64(40), res.Monthly[2].Expenses)

		require.Len(t, res.TopSavings, 3)
		assert.Equal(t, "Mar", res.TopSavings[0].Month)
		assert.Equal(t, float64(60), res.TopSavings[0].Savings)

		// 直近取引は日付降順
		require.Len(t, res.Recent, 2)
		assert.Equal(t, int64(2), res.Recent[0].ID)
		assert.Equal(t, int64(1), res.Recent[1].ID)
	})

	t.Run("user_id未設定時は401を返す", func(t *testing.T) {
		src := &mockTransactionSource{
			ListForUserFunc: func(ctx context.Context, userID string) ([]entity.Transaction, error) {
				t.Fatal("source must not be called without a verified user id")
				return nil, nil
			},
		}
		w := doGet(setupRouter(src, ""), "/api/dashboard/summary")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"invalid token"}`, w.Body.String())
	})

	t.Run("取得失敗時は500を返す", func(t *testing.T) {
		src := &mockTransactionSource{
			ListForUserFunc: func(ctx context.Context, userID string) ([]entity.Transaction, error) {
				return nil, errors.New("connection refused")
			},
		}
		w := doGet(setupRouter(src, "alice01"), "/api/dashboard/summary")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"message":"Server error"}`, w.Body.String())
	})

	t.Run("取引ゼロ件でも完全な形のレスポンスを返す", func(t *testing.T) {
		src := &mockTransactionSource{
			ListForUserFunc: func(ctx context.Context, userID string) ([]entity.Transaction, error) {
				return nil, nil
			},
		}
		w := doGet(setupRouter(src, "alice01"), "/api/dashboard/summary")

		assert.Equal(t, http.StatusOK, w.Code)

		var res struct {
			Monthly    []json.RawMessage `json:"monthly"`
			TopSavings []json.RawMessage `json:"top_savings"`
			Recent     []json.RawMessage `json:"recent"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Len(t, res.Monthly, 12)
		assert.Len(t, res.TopSavings, 3)
		assert.Empty(t, res.Recent)
	})
}
