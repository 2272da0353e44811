package entity

import (
	"MoneyTrack/internal/api/transaction"
	"strings"
	"time"
	"unicode/utf8"
)

type TransactionType string

const (
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeTransfer TransactionType = "transfer"
)

func IsValidTransactionType(transactionType string) bool {
	switch TransactionType(transactionType) {
	case TransactionTypeExpense, TransactionTypeIncome, TransactionTypeTransfer:
		return true
	default:
		return false
	}
}

const (
	CategoryMinLength = 2
	CategoryMaxLength = 50
	NoteMaxLength     = 500
	MinAmount         = 0.01
)

// Transaction is owned by exactly one user. UserID is assigned from the
// authenticated identity at creation and never changes afterwards.
// UpdatedAt stays zero until the first mutation. Destroyed is a one-way
// soft-delete flag; destroyed records are excluded from every read.
type Transaction struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	Note      string    `json:"note"`
	Date      time.Time `json:"date"`
	WalletID  string    `json:"wallet_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Destroyed bool      `json:"destroyed"`
}

func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return transaction.ErrInvalidTransactionType
	}

	if t.Amount < MinAmount {
		return transaction.ErrInvalidAmount
	}

	// Bounds are in characters, not bytes, so multibyte categories measure
	// the same here as at the request validator.
	categoryLen := utf8.RuneCountInString(strings.TrimSpace(t.Category))
	if categoryLen < CategoryMinLength || categoryLen > CategoryMaxLength {
		return transaction.ErrInvalidCategory
	}

	if utf8.RuneCountInString(strings.TrimSpace(t.Note)) > NoteMaxLength {
		return transaction.ErrInvalidNote
	}

	return nil
}
