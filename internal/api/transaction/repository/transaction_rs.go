package transactionRepository

import (
	"MoneyTrack/internal/api/transaction"
	"MoneyTrack/internal/entity"
	contextPkg "MoneyTrack/pkg/context"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type TransactionDB struct {
	ID        sql.NullString  `db:"id"`
	UserID    sql.NullString  `db:"user_id"`
	Type      sql.NullString  `db:"type"`
	Amount    sql.NullFloat64 `db:"amount"`
	Category  sql.NullString  `db:"category"`
	Note      sql.NullString  `db:"note"`
	Date      time.Time       `db:"date"`
	WalletID  sql.NullString  `db:"wallet_id"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt sql.NullTime    `db:"updated_at"`
	Destroyed bool            `db:"destroyed"`
}

func (r *transactionRepository) Create(c context.Context, record entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         record.ID,
		"user_id":    record.UserID,
		"type":       record.Type,
		"amount":     record.Amount,
		"category":   record.Category,
		"note":       record.Note,
		"date":       record.Date,
		"wallet_id":  nullableString(record.WalletID),
		"created_at": record.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Create")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating transaction")

		return err
	}

	return nil
}

func (r *transactionRepository) GetByID(c context.Context, id string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var record TransactionDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetTransactionByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")

		return entity.Transaction{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&record); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetByID no rows found")
			return entity.Transaction{}, transaction.ErrTransactionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Transaction{}, err
	}

	return r.makeTransaction(record), nil
}

// FindMany returns the filtered page sorted by date descending together with
// the unsliced match count. Destroyed records never match.
func (r *transactionRepository) FindMany(c context.Context, filter transaction.ListFilter, opts transaction.ListOptions) ([]entity.Transaction, int, error) {
	requestID := contextPkg.GetRequestID(c)
	var records []TransactionDB

	whereClause, argsKV := buildListWhere(filter)

	selectQuery := fmt.Sprintf(
		"%s %s ORDER BY date DESC LIMIT %d OFFSET %d",
		querySelectTransactions, whereClause, opts.Limit, opts.Skip,
	)

	query, args, err := sqlx.Named(selectQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FindMany named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &records, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FindMany execution err")
		return nil, 0, err
	}

	countQuery := fmt.Sprintf("%s %s", queryCountTransactions, whereClause)

	query, args, err = sqlx.Named(countQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FindMany count query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	var total int
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("FindMany count execution err")
		return nil, 0, err
	}

	result := make([]entity.Transaction, 0, len(records))
	for _, record := range records {
		result = append(result, r.makeTransaction(record))
	}

	return result, total, nil
}

// Update merges only the supplied columns and stamps updated_at. Ownership is
// the caller's concern and has been checked before this runs.
func (r *transactionRepository) Update(c context.Context, id string, fields map[string]interface{}, updatedAt time.Time) error {
	requestID := contextPkg.GetRequestID(c)

	if len(fields) == 0 {
		return transaction.ErrNoFieldsToUpdate
	}

	setClauses := make([]string, 0, len(fields)+1)
	argsKV := map[string]interface{}{
		"id":         id,
		"updated_at": updatedAt,
	}
	for column, value := range fields {
		setClauses = append(setClauses, fmt.Sprintf("%s = :%s", column, column))
		// An empty wallet reference is stored as NULL, same as on insert.
		if column == "wallet_id" {
			if wallet, ok := value.(string); ok {
				value = nullableString(wallet)
			}
		}
		argsKV[column] = value
	}
	setClauses = append(setClauses, "updated_at = :updated_at")

	updateQuery := fmt.Sprintf(
		"UPDATE transactions SET %s WHERE id = :id",
		strings.Join(setClauses, ", "),
	)

	query, args, err := sqlx.Named(updateQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Update named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Update execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Update rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("Update no rows affected")

		return transaction.ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) SoftDelete(c context.Context, id string, deletedAt time.Time) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         id,
		"updated_at": deletedAt,
	}

	query, args, err := sqlx.Named(querySoftDeleteTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SoftDelete named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SoftDelete execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SoftDelete rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("SoftDelete no rows affected")

		return transaction.ErrTransactionNotFound
	}

	return nil
}

func buildListWhere(filter transaction.ListFilter) (string, map[string]interface{}) {
	conditions := []string{
		"user_id = :user_id",
		"destroyed = FALSE",
	}
	argsKV := map[string]interface{}{
		"user_id": filter.UserID,
	}

	if filter.Type != "" {
		conditions = append(conditions, "type = :type")
		argsKV["type"] = filter.Type
	}

	if filter.Category != "" {
		conditions = append(conditions, "category = :category")
		argsKV["category"] = filter.Category
	}

	if !filter.DateFrom.IsZero() {
		conditions = append(conditions, "date >= :date_from")
		argsKV["date_from"] = filter.DateFrom
	}

	if !filter.DateTo.IsZero() {
		conditions = append(conditions, "date <= :date_to")
		argsKV["date_to"] = filter.DateTo
	}

	return "WHERE " + strings.Join(conditions, " AND "), argsKV
}

func nullableString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

func (r *transactionRepository) makeTransaction(record TransactionDB) entity.Transaction {
	return entity.Transaction{
		ID:        record.ID.String,
		UserID:    record.UserID.String,
		Type:      record.Type.String,
		Amount:    record.Amount.Float64,
		Category:  record.Category.String,
		Note:      record.Note.String,
		Date:      record.Date,
		WalletID:  record.WalletID.String,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt.Time,
		Destroyed: record.Destroyed,
	}
}
