// finboard is the terminal client for the finance dashboard API. It mirrors the
// browser client's flow: log in, keep the token locally, decode it for display,
// fetch the full transaction list, filter to the signed-in user, and render the
// computed aggregates.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	authdto "finance_backend/internal/feature/auth/transport/http/dto"
	dashusecase "finance_backend/internal/feature/dashboard/usecase"
	"finance_backend/internal/feature/transactions/domain/entity"
	txdto "finance_backend/internal/feature/transactions/transport/http/dto"
	platformhttp "finance_backend/internal/platform/http"
	"finance_backend/internal/platform/token"
)

const defaultBaseURL = "http://localhost:3000"

func baseURL() string {
	if v := os.Getenv("FINBOARD_API"); v != "" {
		return v
	}
	return defaultBaseURL
}

// tokenPath はトークンを保存するローカルファイルのパスを返します。
// ブラウザ版のlocalStorageに相当します。
func tokenPath() string {
	if v := os.Getenv("FINBOARD_TOKEN_FILE"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".finboard_token"
	}
	return filepath.Join(home, ".finboard_token")
}

func saveToken(tok string) error {
	return os.WriteFile(tokenPath(), []byte(tok), 0o600)
}

func loadToken() (string, error) {
	b, err := os.ReadFile(tokenPath())
	if err != nil {
		return "", fmt.Errorf("not logged in (run: finboard login)")
	}
	return string(b), nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: finboard <command> [flags]

commands:
  login     -email <email> -password <password>
  whoami    show the identity stored in the local token
  dashboard [-search <query>] render balance, monthly series, rankings
  logout    discard the local token`)
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	client := platformhttp.NewHTTPClient(15 * time.Second)

	var err error
	switch os.Args[1] {
	case "login":
		err = runLogin(client, os.Args[2:])
	case "whoami":
		err = runWhoami()
	case "dashboard":
		err = runDashboard(client, os.Args[2:])
	case "logout":
		err = runLogout()
	default:
		usage()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "finboard:", err)
		os.Exit(1)
	}
}

func runLogin(client *http.Client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)
	if *email == "" || *password == "" {
		return fmt.Errorf("both -email and -password are required")
	}

	body, _ := json.Marshal(authdto.LoginReq{Email: *email, Password: *password})
	resp, err := client.Post(baseURL()+"/api/users/login", "application/json", bytes.NewReader(body))
	if err != nil {
		// リトライは行わない。失敗は一般的なネットワークエラーとして報告する
		return fmt.Errorf("network error")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var msg authdto.MessageRes
		_ = json.NewDecoder(resp.Body).Decode(&msg)
		if msg.Message == "" {
			msg.Message = "login failed"
		}
		return fmt.Errorf("%s", msg.Message)
	}

	var res authdto.LoginRes
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return fmt.Errorf("unexpected response: %w", err)
	}
	if err := saveToken(res.Token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	fmt.Printf("logged in as %s (%s)\n", res.User.Name, res.User.UserID)
	return nil
}

// runWhoami は保存済みトークンのペイロードを表示用に復号します。
// 署名検証も有効期限の確認も行いません。これは認証ではなく表示のための操作です。
func runWhoami() error {
	tok, err := loadToken()
	if err != nil {
		return err
	}
	claims, err := token.DecodeForDisplay(tok)
	if err != nil {
		return fmt.Errorf("stored token is malformed: %w", err)
	}
	fmt.Printf("name:    %s\nuser_id: %s\nemail:   %s\n", claims.Name, claims.UserID, claims.Email)
	return nil
}

func runLogout() error {
	if err := os.Remove(tokenPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	// サーバー側に「ログアウト」の概念はない。トークンは自然満了まで有効なまま
	fmt.Println("logged out")
	return nil
}

func fetchTransactions(client *http.Client) ([]entity.Transaction, error) {
	resp, err := client.Get(baseURL() + "/api/transactions")
	if err != nil {
		return nil, fmt.Errorf("network error")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch transactions")
	}

	var items []txdto.TransactionItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("unexpected response: %w", err)
	}
	txs := make([]entity.Transaction, 0, len(items))
	for _, it := range items {
		txs = append(txs, entity.Transaction{
			TxID:        it.ID,
			Date:        it.Date,
			Amount:      it.Amount,
			Category:    it.Category,
			Status:      it.Status,
			UserID:      it.UserID,
			UserProfile: it.UserProfile,
		})
	}
	return txs, nil
}

func formatCurrency(amount float64) string {
	if amount < 0 {
		return fmt.Sprintf("-$%.2f", -amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}

func runDashboard(client *http.Client, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	search := fs.String("search", "", "filter the transaction table")
	_ = fs.Parse(args)

	tok, err := loadToken()
	if err != nil {
		return err
	}
	claims, err := token.DecodeForDisplay(tok)
	if err != nil {
		return fmt.Errorf("stored token is malformed: %w", err)
	}

	all, err := fetchTransactions(client)
	if err != nil {
		return err
	}

	// APIは全ユーザーの取引を返すため、自分のuser_idで絞り込む
	mine := make([]entity.Transaction, 0, len(all))
	for _, t := range all {
		if t.UserID == claims.UserID {
			mine = append(mine, t)
		}
	}

	summary := dashusecase.Summarize(mine)
	fmt.Printf("Dashboard for %s\n\n", claims.Name)
	fmt.Printf("  Balance:  %s\n", formatCurrency(summary.Balance))
	fmt.Printf("  Revenue:  %s\n", formatCurrency(summary.Revenue))
	fmt.Printf("  Expenses: %s\n", formatCurrency(summary.Expenses))
	fmt.Printf("  Savings:  %s\n", formatCurrency(summary.Savings))

	series := dashusecase.MonthlySeries(mine)
	fmt.Println("\nMonthly (Income / Expenses):")
	for _, b := range series {
		fmt.Printf("  %s  %10.2f / %10.2f\n", b.Month, b.Income, b.Expenses)
	}

	fmt.Println("\nTop 3 months by savings:")
	for i, m := range dashusecase.TopSavingsMonths(series, dashusecase.DefaultTopN) {
		fmt.Printf("  %d. %s  savings %s\n", i+1, m.Month, formatCurrency(m.Savings))
	}

	fmt.Println("\nRecent transactions:")
	for _, t := range dashusecase.Recent(mine, dashusecase.RecentN) {
		fmt.Printf("  %s  %-8s %-8s %s\n",
			t.Date.Format("2006-01-02"), t.Category, t.Status, formatCurrency(t.Amount))
	}

	rows := dashusecase.TableView(mine, *search, dashusecase.TableN)
	fmt.Printf("\nTransactions (%d shown):\n", len(rows))
	for _, t := range rows {
		fmt.Printf("  #%-6d %s  %-8s %-8s %s\n",
			t.TxID, t.Date.Format("2006-01-02"), t.Category, t.Status, formatCurrency(t.Amount))
	}
	return nil
}
