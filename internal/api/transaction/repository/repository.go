package transactionRepository

import (
	"MoneyTrack/internal/api/transaction"
	"MoneyTrack/internal/entity"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Transactions: &transactionRepository{q: sqlExecutor, log: r.log},
		Commit:       commitFunc,
		Rollback:     rollbackFunc,
	}, nil
}

type Client struct {
	Transactions interface {
		Create(ctx context.Context, record entity.Transaction) error
		GetByID(ctx context.Context, id string) (entity.Transaction, error)
		FindMany(ctx context.Context, filter transaction.ListFilter, opts transaction.ListOptions) ([]entity.Transaction, int, error)
		Update(ctx context.Context, id string, fields map[string]interface{}, updatedAt time.Time) error
		SoftDelete(ctx context.Context, id string, deletedAt time.Time) error
		AggregateStatistics(ctx context.Context, userID string, dateFrom, dateTo time.Time) ([]transaction.TypeStatistic, []transaction.CategoryStatistic, error)
	}

	Commit   func() error
	Rollback func() error
}

type transactionRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
