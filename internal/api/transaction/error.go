package transaction

import (
	"MoneyTrack/pkg/response"
	"net/http"
)

var (
	ErrTransactionNotFound    = response.NewError(http.StatusNotFound, "transaction not found")
	ErrTransactionNotOwned    = response.NewError(http.StatusForbidden, "you do not have permission to access this transaction")
	ErrInvalidTransactionType = response.NewError(http.StatusBadRequest, "invalid transaction type")
	ErrInvalidAmount          = response.NewError(http.StatusBadRequest, "transaction amount must be at least 0.01")
	ErrInvalidCategory        = response.NewError(http.StatusBadRequest, "category must be between 2 and 50 characters")
	ErrInvalidNote            = response.NewError(http.StatusBadRequest, "note must be at most 500 characters")
	ErrInvalidDate            = response.NewError(http.StatusBadRequest, "invalid date format")
	ErrNoFieldsToUpdate       = response.NewError(http.StatusBadRequest, "no updatable fields supplied")
	ErrCreateTransaction      = response.NewError(http.StatusInternalServerError, "failed to create transaction")
	ErrUpdateTransaction      = response.NewError(http.StatusInternalServerError, "failed to update transaction")
	ErrDeleteTransaction      = response.NewError(http.StatusInternalServerError, "failed to delete transaction")
)
