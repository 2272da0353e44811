package transactionService

import (
	"MoneyTrack/internal/api/transaction"
	transactionRepository "MoneyTrack/internal/api/transaction/repository"
	"MoneyTrack/internal/entity"
	contextPkg "MoneyTrack/pkg/context"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *transactionService) CreateTransaction(ctx context.Context, req transaction.CreateTransactionRequest) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Transaction{}, err
	}

	now := s.clock.Now()

	date := now
	if req.Date != "" {
		date, err = transaction.ParseDate(req.Date)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"date":       req.Date,
			}).Warn("Invalid transaction date")
			return entity.Transaction{}, transaction.ErrInvalidDate
		}
	}

	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Transaction{}, err
	}

	record := entity.Transaction{
		ID:        id,
		UserID:    req.UserID,
		Type:      req.Type,
		Amount:    req.Amount,
		Category:  strings.TrimSpace(req.Category),
		Note:      strings.TrimSpace(req.Note),
		Date:      date,
		WalletID:  req.WalletID,
		CreatedAt: now,
	}

	if err := record.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return entity.Transaction{}, err
	}

	if err := repo.Transactions.Create(ctx, record); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create transaction")
		return entity.Transaction{}, transaction.ErrCreateTransaction
	}

	// Read back so the caller observes the persisted defaults, not the
	// request echo.
	created, err := repo.Transactions.GetByID(ctx, record.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         record.ID,
			"error":      err.Error(),
		}).Error("Failed to read back created transaction")
		return entity.Transaction{}, err
	}

	s.invalidateStatistics(ctx, req.UserID)

	return created, nil
}

func (s *transactionService) GetTransactions(ctx context.Context, req transaction.ListTransactionsRequest, userID string) ([]entity.Transaction, int, transaction.ListOptions, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, 0, transaction.ListOptions{}, err
	}

	filter, opts, err := transaction.BuildListQuery(req, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to build list query")
		return nil, 0, transaction.ListOptions{}, err
	}

	items, total, err := repo.Transactions.FindMany(ctx, filter, opts)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to list transactions")
		return nil, 0, transaction.ListOptions{}, err
	}

	return items, total, opts, nil
}

func (s *transactionService) GetTransactionDetails(ctx context.Context, id string, userID string) (entity.Transaction, error) {
	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Transaction{}, err
	}

	return s.getOwnedTransaction(ctx, repo, id, userID)
}

func (s *transactionService) UpdateTransaction(ctx context.Context, id string, req transaction.UpdateTransactionRequest, userID string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Transaction{}, err
	}

	existing, err := s.getOwnedTransaction(ctx, repo, id, userID)
	if err != nil {
		return entity.Transaction{}, err
	}

	fields, merged, err := buildUpdateFields(req, existing)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Invalid update payload")
		return entity.Transaction{}, err
	}

	if err := merged.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Invalid transaction data after merge")
		return entity.Transaction{}, err
	}

	if err := repo.Transactions.Update(ctx, id, fields, s.clock.Now()); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update transaction")
		return entity.Transaction{}, err
	}

	updated, err := repo.Transactions.GetByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to read back updated transaction")
		return entity.Transaction{}, err
	}

	s.invalidateStatistics(ctx, userID)

	return updated, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if _, err := s.getOwnedTransaction(ctx, repo, id, userID); err != nil {
		return err
	}

	if err := repo.Transactions.SoftDelete(ctx, id, s.clock.Now()); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete transaction")
		return transaction.ErrDeleteTransaction
	}

	s.invalidateStatistics(ctx, userID)

	return nil
}

// getOwnedTransaction is the ownership gate for single-record operations.
// Existence is checked first: a missing or soft-deleted record is NotFound,
// and only an existing record can fail the ownership comparison.
func (s *transactionService) getOwnedTransaction(ctx context.Context, repo transactionRepository.Client, id string, userID string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	record, err := repo.Transactions.GetByID(ctx, id)
	if err != nil {
		return entity.Transaction{}, err
	}

	if record.Destroyed {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("Transaction is soft-deleted")
		return entity.Transaction{}, transaction.ErrTransactionNotFound
	}

	if record.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":          requestID,
			"transaction_user_id": record.UserID,
			"request_user_id":     userID,
		}).Warn("Transaction does not belong to user")
		return entity.Transaction{}, transaction.ErrTransactionNotOwned
	}

	return record, nil
}

// buildUpdateFields maps the supplied request fields onto store columns using
// a fixed allow-list; arbitrary client keys can never reach the store. It also
// returns the merged record so the result can be validated as a whole.
func buildUpdateFields(req transaction.UpdateTransactionRequest, existing entity.Transaction) (map[string]interface{}, entity.Transaction, error) {
	fields := make(map[string]interface{})
	merged := existing

	if req.Type != nil {
		fields["type"] = *req.Type
		merged.Type = *req.Type
	}
	if req.Amount != nil {
		fields["amount"] = *req.Amount
		merged.Amount = *req.Amount
	}
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		fields["category"] = category
		merged.Category = category
	}
	if req.Note != nil {
		note := strings.TrimSpace(*req.Note)
		fields["note"] = note
		merged.Note = note
	}
	if req.Date != nil {
		date, err := transaction.ParseDate(*req.Date)
		if err != nil {
			return nil, entity.Transaction{}, transaction.ErrInvalidDate
		}
		fields["date"] = date
		merged.Date = date
	}
	if req.WalletID != nil {
		fields["wallet_id"] = *req.WalletID
		merged.WalletID = *req.WalletID
	}

	if len(fields) == 0 {
		return nil, entity.Transaction{}, transaction.ErrNoFieldsToUpdate
	}

	return fields, merged, nil
}
