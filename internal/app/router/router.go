package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "finance_backend/internal/feature/auth/transport/handler"
	dashboardhandler "finance_backend/internal/feature/dashboard/transport/handler"
	txhandler "finance_backend/internal/feature/transactions/transport/handler"
	"finance_backend/internal/platform/http/handler"
	"finance_backend/internal/platform/token"
)

func NewRouter(auth *authhandler.AuthHandler, txs *txhandler.TransactionHandler,
	dashboard *dashboardhandler.DashboardHandler) *gin.Engine {
	r := gin.Default()

	// ブラウザSPAからのアクセスを許可
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)

	api := r.Group("/api")
	{
		// 新規ユーザー登録
		api.POST("/users/register", auth.Register)
		// ログイン（セッショントークン発行）
		api.POST("/users/login", auth.Login)

		// 全取引の一覧。元システム同様に認証を課さない
		// （所有者フィルタはクライアント側の責務。下のmeルートが認可付きの代替）
		api.GET("/transactions", txs.ListAll)

		// 認証必須のルート
		// token.AuthRequired() ミドルウェアを適用
		// → リクエストヘッダーに署名検証済みのトークンが必要になる
		authed := api.Group("/")
		authed.Use(token.AuthRequired())
		{
			authed.GET("/transactions/me", txs.ListMine)
			authed.GET("/dashboard/summary", dashboard.Summary)
		}
	}

	return r
}
