package entity

import (
	"MoneyTrack/internal/api/transaction"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validTransaction() Transaction {
	return Transaction{
		ID:       "01J0000000000000000000TEST",
		UserID:   "user-1",
		Type:     string(TransactionTypeExpense),
		Amount:   10.00,
		Category: "groceries",
		Date:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestTransactionValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr error
	}{
		{name: "valid expense", mutate: func(*Transaction) {}},
		{name: "valid income", mutate: func(tx *Transaction) { tx.Type = string(TransactionTypeIncome) }},
		{name: "valid transfer", mutate: func(tx *Transaction) { tx.Type = string(TransactionTypeTransfer) }},
		{name: "minimum amount", mutate: func(tx *Transaction) { tx.Amount = MinAmount }},
		{name: "category at max", mutate: func(tx *Transaction) { tx.Category = strings.Repeat("a", CategoryMaxLength) }},
		{name: "note at max", mutate: func(tx *Transaction) { tx.Note = strings.Repeat("n", NoteMaxLength) }},
		{name: "padded category still in bounds", mutate: func(tx *Transaction) { tx.Category = "  ok  " }},
		{name: "multibyte category counted in characters", mutate: func(tx *Transaction) { tx.Category = strings.Repeat("食", 30) }},
		{name: "multibyte category at max", mutate: func(tx *Transaction) { tx.Category = strings.Repeat("č", CategoryMaxLength) }},
		{name: "multibyte note at max", mutate: func(tx *Transaction) { tx.Note = strings.Repeat("é", NoteMaxLength) }},
		{
			name:    "unknown type",
			mutate:  func(tx *Transaction) { tx.Type = "loan" },
			wantErr: transaction.ErrInvalidTransactionType,
		},
		{
			name:    "zero amount",
			mutate:  func(tx *Transaction) { tx.Amount = 0 },
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name:    "amount below minimum",
			mutate:  func(tx *Transaction) { tx.Amount = 0.009 },
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			mutate:  func(tx *Transaction) { tx.Amount = -5 },
			wantErr: transaction.ErrInvalidAmount,
		},
		{
			name:    "category too short",
			mutate:  func(tx *Transaction) { tx.Category = "x" },
			wantErr: transaction.ErrInvalidCategory,
		},
		{
			name:    "category only whitespace",
			mutate:  func(tx *Transaction) { tx.Category = "   " },
			wantErr: transaction.ErrInvalidCategory,
		},
		{
			name:    "category too long",
			mutate:  func(tx *Transaction) { tx.Category = strings.Repeat("a", CategoryMaxLength+1) },
			wantErr: transaction.ErrInvalidCategory,
		},
		{
			name:    "single multibyte character below minimum",
			mutate:  func(tx *Transaction) { tx.Category = "食" },
			wantErr: transaction.ErrInvalidCategory,
		},
		{
			name:    "multibyte category over max",
			mutate:  func(tx *Transaction) { tx.Category = strings.Repeat("食", CategoryMaxLength+1) },
			wantErr: transaction.ErrInvalidCategory,
		},
		{
			name:    "note too long",
			mutate:  func(tx *Transaction) { tx.Note = strings.Repeat("n", NoteMaxLength+1) },
			wantErr: transaction.ErrInvalidNote,
		},
		{
			name:    "multibyte note over max",
			mutate:  func(tx *Transaction) { tx.Note = strings.Repeat("é", NoteMaxLength+1) },
			wantErr: transaction.ErrInvalidNote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(&tx)

			err := tx.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIsValidTransactionType(t *testing.T) {
	require.True(t, IsValidTransactionType("expense"))
	require.True(t, IsValidTransactionType("income"))
	require.True(t, IsValidTransactionType("transfer"))

	require.False(t, IsValidTransactionType(""))
	require.False(t, IsValidTransactionType("Expense"))
	require.False(t, IsValidTransactionType("loan"))
}
