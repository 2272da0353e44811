package transaction

import "time"

type CreateTransactionRequest struct {
	UserID   string  `json:"-" validate:"required"`
	Type     string  `json:"type" validate:"required,oneof=expense income transfer"`
	Amount   float64 `json:"amount" validate:"required,gte=0.01"`
	Category string  `json:"category" validate:"required,min=2,max=50"`
	Note     string  `json:"note" validate:"omitempty,max=500"`
	Date     string  `json:"date"`
	WalletID string  `json:"walletId"`
}

// UpdateTransactionRequest uses pointers so absent fields can be told apart
// from zero values; only supplied fields reach the store.
type UpdateTransactionRequest struct {
	Type     *string  `json:"type" validate:"omitempty,oneof=expense income transfer"`
	Amount   *float64 `json:"amount" validate:"omitempty,gte=0.01"`
	Category *string  `json:"category" validate:"omitempty,min=2,max=50"`
	Note     *string  `json:"note" validate:"omitempty,max=500"`
	Date     *string  `json:"date"`
	WalletID *string  `json:"walletId"`
}

type ListTransactionsRequest struct {
	Type     string `query:"type" validate:"omitempty,oneof=expense income transfer"`
	Category string `query:"category" validate:"omitempty,min=2,max=50"`
	DateFrom string `query:"dateFrom"`
	DateTo   string `query:"dateTo"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Skip     int    `query:"skip" validate:"omitempty,min=0"`
}

type StatisticsRequest struct {
	DateFrom string `query:"dateFrom"`
	DateTo   string `query:"dateTo"`
}

type TransactionResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Category  string  `json:"category"`
	Note      string  `json:"note"`
	Date      string  `json:"date"`
	WalletID  string  `json:"walletId,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt,omitempty"`
}

type ListTransactionsResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int                   `json:"total"`
	Limit int                   `json:"limit"`
	Skip  int                   `json:"skip"`
}

type StatisticsResponse struct {
	TotalExpense float64             `json:"totalExpense"`
	TotalIncome  float64             `json:"totalIncome"`
	Balance      float64             `json:"balance"`
	ByCategory   []CategoryStatistic `json:"byCategory"`
	DateFrom     string              `json:"dateFrom"`
	DateTo       string              `json:"dateTo"`
}

type CategoryStatistic struct {
	Type     string  `json:"type" db:"type"`
	Category string  `json:"category" db:"category"`
	Total    float64 `json:"total" db:"total"`
	Count    int     `json:"count" db:"count"`
}

// TypeStatistic is a per-type aggregation row from the store.
type TypeStatistic struct {
	Type  string  `db:"type"`
	Total float64 `db:"total"`
	Count int     `db:"count"`
}

// Statistics is the aggregated result for one user and date window.
type Statistics struct {
	TotalExpense float64
	TotalIncome  float64
	Balance      float64
	ByCategory   []CategoryStatistic
	DateFrom     time.Time
	DateTo       time.Time
}
