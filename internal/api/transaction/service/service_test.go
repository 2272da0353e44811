package transactionService

import (
	"MoneyTrack/internal/api/transaction"
	transactionRepository "MoneyTrack/internal/api/transaction/repository"
	"MoneyTrack/internal/entity"
	"MoneyTrack/pkg/clock"
	"MoneyTrack/pkg/redis"
	"MoneyTrack/pkg/utils"
	"io"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// fakeTransactionStore is an in-memory stand-in for the postgres-backed store.
type fakeTransactionStore struct {
	records map[string]entity.Transaction

	lastFilter transaction.ListFilter
	lastOpts   transaction.ListOptions

	lastUpdateFields map[string]interface{}

	byType     []transaction.TypeStatistic
	byCategory []transaction.CategoryStatistic

	aggregateCalls int
	aggregateFrom  time.Time
	aggregateTo    time.Time
}

func newFakeTransactionStore() *fakeTransactionStore {
	return &fakeTransactionStore{records: make(map[string]entity.Transaction)}
}

func (f *fakeTransactionStore) Create(_ context.Context, record entity.Transaction) error {
	f.records[record.ID] = record
	return nil
}

func (f *fakeTransactionStore) GetByID(_ context.Context, id string) (entity.Transaction, error) {
	record, ok := f.records[id]
	if !ok {
		return entity.Transaction{}, transaction.ErrTransactionNotFound
	}
	return record, nil
}

func (f *fakeTransactionStore) FindMany(_ context.Context, filter transaction.ListFilter, opts transaction.ListOptions) ([]entity.Transaction, int, error) {
	f.lastFilter = filter
	f.lastOpts = opts

	var items []entity.Transaction
	for _, record := range f.records {
		if record.UserID != filter.UserID || record.Destroyed {
			continue
		}
		items = append(items, record)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) })
	return items, len(items), nil
}

func (f *fakeTransactionStore) Update(_ context.Context, id string, fields map[string]interface{}, updatedAt time.Time) error {
	record, ok := f.records[id]
	if !ok || record.Destroyed {
		return transaction.ErrTransactionNotFound
	}

	f.lastUpdateFields = fields

	for column, value := range fields {
		switch column {
		case "type":
			record.Type = value.(string)
		case "amount":
			record.Amount = value.(float64)
		case "category":
			record.Category = value.(string)
		case "note":
			record.Note = value.(string)
		case "date":
			record.Date = value.(time.Time)
		case "wallet_id":
			record.WalletID = value.(string)
		}
	}
	record.UpdatedAt = updatedAt
	f.records[id] = record
	return nil
}

func (f *fakeTransactionStore) SoftDelete(_ context.Context, id string, deletedAt time.Time) error {
	record, ok := f.records[id]
	if !ok || record.Destroyed {
		return transaction.ErrTransactionNotFound
	}
	record.Destroyed = true
	record.UpdatedAt = deletedAt
	f.records[id] = record
	return nil
}

func (f *fakeTransactionStore) AggregateStatistics(_ context.Context, _ string, dateFrom, dateTo time.Time) ([]transaction.TypeStatistic, []transaction.CategoryStatistic, error) {
	f.aggregateCalls++
	f.aggregateFrom = dateFrom
	f.aggregateTo = dateTo
	return f.byType, f.byCategory, nil
}

type fakeRepository struct {
	store *fakeTransactionStore
}

func (f *fakeRepository) NewClient(bool) (transactionRepository.Client, error) {
	return transactionRepository.Client{
		Transactions: f.store,
		Commit:       func() error { return nil },
		Rollback:     func() error { return nil },
	}, nil
}

// fakeRedis keeps cached payloads in a map and records invalidations.
type fakeRedis struct {
	entries       map[string]string
	invalidations []string
	getErr        error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{entries: make(map[string]string)}
}

func (f *fakeRedis) GetStatistics(_ context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	payload, ok := f.entries[key]
	if !ok {
		return "", redis.ErrCacheMiss
	}
	return payload, nil
}

func (f *fakeRedis) SetStatistics(_ context.Context, key string, payload string, _ time.Duration) error {
	f.entries[key] = payload
	return nil
}

func (f *fakeRedis) InvalidateStatistics(_ context.Context, userID string) error {
	f.invalidations = append(f.invalidations, userID)
	for key := range f.entries {
		delete(f.entries, key)
	}
	return nil
}

func newTestService(store *fakeTransactionStore, cache *fakeRedis, now time.Time) ITransactionService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewTransactionService(logger, &fakeRepository{store: store}, cache, clock.Fixed(now), utils.New())
}
