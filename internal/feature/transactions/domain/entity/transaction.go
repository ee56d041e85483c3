// Package entity defines the domain models for the transactions feature.
package entity

import (
	"strings"
	"time"
)

// Category classifies the direction of a transaction. The stored value is a
// free-form string; anything that is not "revenue" or "expense" (compared
// case-insensitively) maps to CategoryUnknown and contributes to no total.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryRevenue
	CategoryExpense
)

// ParseCategory maps a stored category string to its closed variant.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "revenue":
		return CategoryRevenue
	case "expense":
		return CategoryExpense
	default:
		return CategoryUnknown
	}
}

// Status describes the settlement state of a transaction.
type Status int

const (
	StatusUnknown Status = iota
	StatusPaid
	StatusPending
)

// ParseStatus maps a stored status string to its closed variant.
func ParseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "paid":
		return StatusPaid
	case "pending":
		return StatusPending
	default:
		return StatusUnknown
	}
}

// Transaction represents a single financial event belonging to one user.
// Records are created outside this system and are read-only here.
type Transaction struct {
	TxID        int64     // Unique numeric identifier assigned by the ingesting system
	Date        time.Time // Calendar timestamp of the event
	Amount      float64   // Non-negative magnitude; direction comes from Category
	Category    string    // Stored as free-form text (e.g. "Revenue", "expense")
	Status      string    // Stored as free-form text (e.g. "Paid", "pending")
	UserID      string    // External handle of the owning user
	UserProfile string    // Optional avatar URI
}

// CategoryKind returns the closed-variant category of the transaction.
func (t Transaction) CategoryKind() Category { return ParseCategory(t.Category) }

// StatusKind returns the closed-variant status of the transaction.
func (t Transaction) StatusKind() Status { return ParseStatus(t.Status) }
