package main

import (
	"context"
	"log"
	"os"
	"time"

	"finance_backend/internal/app/di"
	"finance_backend/internal/app/router"
	authhandler "finance_backend/internal/feature/auth/transport/handler"
	authusecase "finance_backend/internal/feature/auth/usecase"
	dashboardhandler "finance_backend/internal/feature/dashboard/transport/handler"
	txhandler "finance_backend/internal/feature/transactions/transport/handler"
	txusecase "finance_backend/internal/feature/transactions/usecase"
	"finance_backend/internal/platform/token"
)

func main() {
	ctx := context.Background()

	// ストレージバックエンド選択（MONGO_URIがあればMongo、なければGORM）
	stores := di.NewStores(ctx)

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv(token.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	ttl := token.DefaultTTL
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			ttl = parsed
		} else {
			log.Printf("[WARN] invalid TOKEN_TTL %q, using default %v", v, token.DefaultTTL)
		}
	}

	// Usecase
	issuer := token.NewGenerator(secret, ttl)
	authUC := authusecase.NewAuthUsecase(stores.Users, issuer)
	txUC := txusecase.NewTransactionsUsecase(stores.Transactions)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	txH := txhandler.NewTransactionHandler(txUC)
	dashboardH := dashboardhandler.NewDashboardHandler(txUC)

	// ルータ生成
	r := router.NewRouter(authH, txH, dashboardH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
