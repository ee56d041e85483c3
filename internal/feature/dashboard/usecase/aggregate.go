// Package usecase はダッシュボード集計のビジネスロジックを実装します。
// ここの関数はすべて純粋で、1ユーザー分に絞り込み済みの取引リストから
// 残高・月次系列・ランキングを毎回再計算します。キャッシュは持ちません。
package usecase

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"finance_backend/internal/feature/transactions/domain/entity"
)

const (
	// MonthBuckets は月次系列の固定バケット数です。
	MonthBuckets = 12
	// DefaultTopN は貯蓄上位月のデフォルト件数です。
	DefaultTopN = 3
	// RecentN はダッシュボードに表示する直近取引の件数です。
	RecentN = 3
	// TableN は取引テーブルに表示する最大行数です。
	TableN = 10
)

// Summary は1ユーザーの取引集合から導出される合計値です。
type Summary struct {
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
	Savings  float64 `json:"savings"`
}

// Summarize は収入合計・支出合計・残高を計算します。
// categoryが"revenue"でも"expense"でもない取引はどの合計にも寄与しません。
// 貯蓄は残高と同一です（独立した貯蓄モデルはスコープ外）。
func Summarize(txs []entity.Transaction) Summary {
	var s Summary
	for _, t := range txs {
		switch t.CategoryKind() {
		case entity.CategoryRevenue:
			s.Revenue += t.Amount
		case entity.CategoryExpense:
			s.Expenses += t.Amount
		}
	}
	s.Balance = s.Revenue - s.Expenses
	s.Savings = s.Balance
	return s
}

// MonthBucket は月次系列の1バケットです。IncomeとExpensesは独立に累積されます。
type MonthBucket struct {
	Month    string  `json:"month"` // "Jan".."Dec"
	Income   float64 `json:"Income"`
	Expenses float64 `json:"Expenses"`
}

// MonthlySeries は取引を暦月（0〜11）の12バケットに集計します。
// 年は無視されるため、異なる年の同じ月は同一バケットに合流します。
// 日付がゼロ値の取引はどのバケットにも寄与しません。
func MonthlySeries(txs []entity.Transaction) []MonthBucket {
	buckets := make([]MonthBucket, MonthBuckets)
	for i := range buckets {
		buckets[i].Month = time.Month(i + 1).String()[:3]
	}
	for _, t := range txs {
		if t.Date.IsZero() {
			continue
		}
		idx := int(t.Date.Month()) - 1
		switch t.CategoryKind() {
		case entity.CategoryRevenue:
			buckets[idx].Income += t.Amount
		case entity.CategoryExpense:
			buckets[idx].Expenses += t.Amount
		}
	}
	return buckets
}

// SavingsMonth は月次バケットに導出指標Savingsを加えたものです。
type SavingsMonth struct {
	Month    string  `json:"month"`
	Income   float64 `json:"Income"`
	Expenses float64 `json:"Expenses"`
	Savings  float64 `json:"Savings"`
}

// TopSavingsMonths は12バケットそれぞれのSavings = Income - Expensesを計算し、
// Savings降順で上位n件を返します。同値の場合は月の並び順を保持します（安定ソート）。
// 活動のない月もSavings 0として順位付けの対象になります。
func TopSavingsMonths(series []MonthBucket, n int) []SavingsMonth {
	if n <= 0 {
		n = DefaultTopN
	}
	months := make([]SavingsMonth, 0, len(series))
	for _, b := range series {
		months = append(months, SavingsMonth{
			Month:    b.Month,
			Income:   b.Income,
			Expenses: b.Expenses,
			Savings:  b.Income - b.Expenses,
		})
	}
	sort.SliceStable(months, func(i, j int) bool {
		return months[i].Savings > months[j].Savings
	})
	if n > len(months) {
		n = len(months)
	}
	return months[:n]
}

// Recent は取引を日付降順に並べ、先頭n件を返します。
// 同時刻の取引は元の相対順を保持します（安定ソート）。入力は変更しません。
func Recent(txs []entity.Transaction, n int) []entity.Transaction {
	sorted := make([]entity.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// localDateString は検索照合用の日付表記（M/D/YYYY）を返します。
func localDateString(t time.Time) string {
	return strconv.Itoa(int(t.Month())) + "/" + strconv.Itoa(t.Day()) + "/" + strconv.Itoa(t.Year())
}

// Filter はクエリ文字列をカテゴリ・ステータス・金額の文字列表現・日付表記に対して
// 大文字小文字を区別しない部分一致で照合し、一致した取引のみを元の順序のまま返します。
// クエリが空の場合は入力をそのまま返します。
func Filter(txs []entity.Transaction, query string) []entity.Transaction {
	if query == "" {
		return txs
	}
	q := strings.ToLower(query)
	out := make([]entity.Transaction, 0, len(txs))
	for _, t := range txs {
		if strings.Contains(strings.ToLower(t.Category), q) ||
			strings.Contains(strings.ToLower(t.Status), q) ||
			strings.Contains(strconv.FormatFloat(t.Amount, 'f', -1, 64), q) ||
			strings.Contains(localDateString(t.Date), q) {
			out = append(out, t)
		}
	}
	return out
}

// TableView は検索フィルタ適用後に日付降順へ並べ、テーブル表示用の先頭n件を返します。
func TableView(txs []entity.Transaction, query string, n int) []entity.Transaction {
	return Recent(Filter(txs, query), n)
}
