package token

import (
	"encoding/base64"
	"encoding/json"
	"strings"
)

// DisplayClaims is the identity a client shows in its header after login.
type DisplayClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// DecodeForDisplay extracts the payload segment of a token by structural
// parsing alone. It does NOT verify the signature and does NOT check expiry.
//
// This exists for one purpose: a client displaying the identity inside a token
// it just received from a successful login. Anything that gates access to a
// resource must call Verify instead.
func DecodeForDisplay(tokenStr string) (*DisplayClaims, error) {
	parts := strings.Split(tokenStr, ".")
	if len(parts) != 3 {
		return nil, ErrInvalidToken
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, ErrInvalidToken
	}
	var claims DisplayClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
