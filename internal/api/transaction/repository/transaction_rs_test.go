package transactionRepository

import (
	"MoneyTrack/internal/api/transaction"
	"MoneyTrack/internal/entity"
	"context"
	"database/sql"
	"io"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// recordingExecutor satisfies SQLExecutor and captures what ExecContext
// receives, so statement shaping can be asserted without a database.
type recordingExecutor struct {
	query        string
	args         []interface{}
	rowsAffected int64
}

func (e *recordingExecutor) DriverName() string { return "postgres" }

func (e *recordingExecutor) Rebind(query string) string {
	return sqlx.Rebind(sqlx.DOLLAR, query)
}

func (e *recordingExecutor) BindNamed(query string, arg interface{}) (string, []interface{}, error) {
	return sqlx.BindNamed(sqlx.DOLLAR, query, arg)
}

func (e *recordingExecutor) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (e *recordingExecutor) QueryxContext(context.Context, string, ...interface{}) (*sqlx.Rows, error) {
	return nil, nil
}

func (e *recordingExecutor) QueryRowxContext(context.Context, string, ...interface{}) *sqlx.Row {
	return nil
}

func (e *recordingExecutor) SelectContext(context.Context, interface{}, string, ...interface{}) error {
	return nil
}

func (e *recordingExecutor) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	e.query = query
	e.args = args
	return fakeResult{rows: e.rowsAffected}, nil
}

type fakeResult struct {
	rows int64
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, nil }

func newRecordingRepository() (*transactionRepository, *recordingExecutor) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	exec := &recordingExecutor{rowsAffected: 1}
	return &transactionRepository{q: exec, log: logger}, exec
}

func TestCreateStoresEmptyWalletAsNull(t *testing.T) {
	repo, exec := newRecordingRepository()

	err := repo.Create(context.Background(), entity.Transaction{
		ID:        "tx-1",
		UserID:    "user-1",
		Type:      "expense",
		Amount:    10,
		Category:  "groceries",
		Date:      time.Now(),
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	require.Contains(t, exec.args, sql.NullString{})
}

func TestUpdateStoresEmptyWalletAsNull(t *testing.T) {
	repo, exec := newRecordingRepository()

	// Clearing the wallet must land as NULL, the same representation the
	// insert uses, never as an empty string.
	err := repo.Update(context.Background(), "tx-1", map[string]interface{}{
		"wallet_id": "",
	}, time.Now())
	require.NoError(t, err)
	require.Contains(t, exec.args, sql.NullString{})
	require.NotContains(t, exec.args, "")
}

func TestUpdateKeepsWalletValue(t *testing.T) {
	repo, exec := newRecordingRepository()

	err := repo.Update(context.Background(), "tx-1", map[string]interface{}{
		"wallet_id": "wallet-9",
	}, time.Now())
	require.NoError(t, err)
	require.Contains(t, exec.args, sql.NullString{String: "wallet-9", Valid: true})
}

func TestUpdateNoRowsIsNotFound(t *testing.T) {
	repo, exec := newRecordingRepository()
	exec.rowsAffected = 0

	amount := map[string]interface{}{"amount": 5.0}
	err := repo.Update(context.Background(), "missing", amount, time.Now())
	require.ErrorIs(t, err, transaction.ErrTransactionNotFound)
}
