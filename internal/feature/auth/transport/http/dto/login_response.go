package dto

// PublicUser はログイン成功時に返されるユーザーの公開プロフィールです。
// パスワードハッシュは決して含まれません。
type PublicUser struct {
	Name   string `json:"name"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// LoginRes はログイン成功時のレスポンスボディを表します。
type LoginRes struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// MessageRes はメッセージのみのレスポンスボディを表します。
// エラー時も成功時も {message} の固定形状で返します。
type MessageRes struct {
	Message string `json:"message"`
}
