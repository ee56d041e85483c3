// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// RegisterReq は/api/users/registerエンドポイントのリクエストボディを表します。
// 4つのフィールドすべてが必須です。欠落は入力エラーであり、重複とは区別されます。
type RegisterReq struct {
	Name     string `json:"name" binding:"required"`
	UserID   string `json:"user_id" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
