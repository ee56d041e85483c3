// Package http provides the outbound HTTP client used by the CLI dashboard
// client when talking to the API server.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient はAPI呼び出し用に設定されたHTTPクライアントを作成します。
//
// 注意:
//   - http.DefaultClientにはタイムアウトがないため、常にカスタムクライアントを使用すること
//   - タイムアウト超過や接続失敗は呼び出し元で一般的な「network error」として扱われる
//     （リトライやバックオフは行わない）
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
