// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"log"
	"os"

	authadapters "finance_backend/internal/feature/auth/adapters"
	authusecase "finance_backend/internal/feature/auth/usecase"
	txadapters "finance_backend/internal/feature/transactions/adapters"
	txusecase "finance_backend/internal/feature/transactions/usecase"
	"finance_backend/internal/platform/db"
	platformmongo "finance_backend/internal/platform/mongo"
)

// Stores bundles the repository implementations of the selected backend.
type Stores struct {
	Users        authusecase.UserRepository
	Transactions txusecase.TransactionRepository
}

// NewStores selects the storage backend. When MONGO_URI is set it returns
// document-store repositories (the original deployment's storage); otherwise
// it falls back to the relational store via GORM.
func NewStores(ctx context.Context) Stores {
	if os.Getenv(platformmongo.EnvKeyMongoURI) != "" {
		client, err := platformmongo.Connect(ctx)
		if err != nil {
			log.Fatalf("mongo connect failed: %v", err)
		}
		database := platformmongo.Database(client)

		users := authadapters.NewUserMongo(database)
		if err := users.EnsureIndexes(ctx); err != nil {
			log.Fatalf("failed to create unique indexes: %v", err)
		}
		return Stores{
			Users:        users,
			Transactions: txadapters.NewTransactionMongo(database),
		}
	}

	conn := db.OpenDB()
	return Stores{
		Users:        authadapters.NewUserGorm(conn),
		Transactions: txadapters.NewTransactionGorm(conn),
	}
}
