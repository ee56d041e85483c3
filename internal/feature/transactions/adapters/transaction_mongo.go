package adapters

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"finance_backend/internal/feature/transactions/domain/entity"
	"finance_backend/internal/feature/transactions/usecase"
)

// transactionDocument はtransactionsコレクションのドキュメント形状です。
// 元システムのスキーマ（数値id、日付、金額、カテゴリ、ステータス、所有者）と一致します。
type transactionDocument struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	TxID        int64         `bson:"id"`
	Date        time.Time     `bson:"date"`
	Amount      float64       `bson:"amount"`
	Category    string        `bson:"category"`
	Status      string        `bson:"status"`
	UserID      string        `bson:"user_id"`
	UserProfile string        `bson:"user_profile"`
}

func (d transactionDocument) toEntity() entity.Transaction {
	return entity.Transaction{
		TxID:        d.TxID,
		Date:        d.Date,
		Amount:      d.Amount,
		Category:    d.Category,
		Status:      d.Status,
		UserID:      d.UserID,
		UserProfile: d.UserProfile,
	}
}

// transactionMongo はTransactionRepositoryインターフェースのMongoDB実装です。
type transactionMongo struct {
	coll *mongo.Collection
}

var _ usecase.TransactionRepository = (*transactionMongo)(nil)

// NewTransactionMongo は指定されたデータベースでtransactionMongoの新しいインスタンスを生成します。
func NewTransactionMongo(db *mongo.Database) *transactionMongo {
	return &transactionMongo{coll: db.Collection("transactions")}
}

func (r *transactionMongo) list(ctx context.Context, filter bson.M) ([]entity.Transaction, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []transactionDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]entity.Transaction, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}

// ListAll はストア内の全取引を取得します。
func (r *transactionMongo) ListAll(ctx context.Context) ([]entity.Transaction, error) {
	return r.list(ctx, bson.M{})
}

// ListByUserID は指定されたuser_idが所有する取引のみを取得します。
func (r *transactionMongo) ListByUserID(ctx context.Context, userID string) ([]entity.Transaction, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}
