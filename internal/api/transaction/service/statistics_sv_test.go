package transactionService

import (
	"MoneyTrack/internal/api/transaction"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

func TestGetStatisticsDefaultWindow(t *testing.T) {
	store := newFakeTransactionStore()
	store.byType = []transaction.TypeStatistic{
		{Type: "expense", Total: 300, Count: 3},
		{Type: "income", Total: 1000, Count: 1},
	}
	store.byCategory = []transaction.CategoryStatistic{
		{Type: "expense", Category: "groceries", Total: 200, Count: 2},
		{Type: "expense", Category: "transport", Total: 100, Count: 1},
	}
	svc := newTestService(store, newFakeRedis(), testNow)

	stats, err := svc.GetStatistics(context.Background(), transaction.StatisticsRequest{}, "user-1")
	require.NoError(t, err)

	require.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), stats.DateFrom)
	require.Equal(t, time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC), stats.DateTo)
	require.Equal(t, stats.DateFrom, store.aggregateFrom)
	require.Equal(t, stats.DateTo, store.aggregateTo)

	require.Equal(t, 300.0, stats.TotalExpense)
	require.Equal(t, 1000.0, stats.TotalIncome)
	require.Equal(t, 700.0, stats.Balance)
	require.Len(t, stats.ByCategory, 2)
	require.Equal(t, "groceries", stats.ByCategory[0].Category)
}

func TestGetStatisticsDefaultWindowCoversShortMonths(t *testing.T) {
	store := newFakeTransactionStore()
	february := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	svc := newTestService(store, newFakeRedis(), february)

	stats, err := svc.GetStatistics(context.Background(), transaction.StatisticsRequest{}, "user-1")
	require.NoError(t, err)

	require.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), stats.DateFrom)
	require.Equal(t, time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC), stats.DateTo)
}

func TestGetStatisticsExplicitWindow(t *testing.T) {
	store := newFakeTransactionStore()
	svc := newTestService(store, newFakeRedis(), testNow)

	stats, err := svc.GetStatistics(context.Background(), transaction.StatisticsRequest{
		DateFrom: "2026-01-01",
		DateTo:   "2026-01-15",
	}, "user-1")
	require.NoError(t, err)

	require.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), stats.DateFrom)
	require.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), stats.DateTo)
}

func TestGetStatisticsInvalidWindow(t *testing.T) {
	svc := newTestService(newFakeTransactionStore(), newFakeRedis(), testNow)

	_, err := svc.GetStatistics(context.Background(), transaction.StatisticsRequest{DateFrom: "soon"}, "user-1")
	require.ErrorIs(t, err, transaction.ErrInvalidDate)
}

func TestGetStatisticsEmptyWindowIsZero(t *testing.T) {
	store := newFakeTransactionStore()
	svc := newTestService(store, newFakeRedis(), testNow)

	stats, err := svc.GetStatistics(context.Background(), transaction.StatisticsRequest{}, "user-1")
	require.NoError(t, err)

	require.Zero(t, stats.TotalExpense)
	require.Zero(t, stats.TotalIncome)
	require.Zero(t, stats.Balance)
	require.NotNil(t, stats.ByCategory)
	require.Empty(t, stats.ByCategory)
}

func TestGetStatisticsCachesResult(t *testing.T) {
	store := newFakeTransactionStore()
	store.byType = []transaction.TypeStatistic{{Type: "expense", Total: 50, Count: 1}}
	cache := newFakeRedis()
	svc := newTestService(store, cache, testNow)
	ctx := context.Background()

	first, err := svc.GetStatistics(ctx, transaction.StatisticsRequest{}, "user-1")
	require.NoError(t, err)
	require.Equal(t, 1, store.aggregateCalls)
	require.Len(t, cache.entries, 1)

	// Second read is served from the cache without touching the store.
	second, err := svc.GetStatistics(ctx, transaction.StatisticsRequest{}, "user-1")
	require.NoError(t, err)
	require.Equal(t, 1, store.aggregateCalls)
	require.Equal(t, first.TotalExpense, second.TotalExpense)
	require.Equal(t, first.Balance, second.Balance)
	require.True(t, first.DateFrom.Equal(second.DateFrom))
	require.True(t, first.DateTo.Equal(second.DateTo))
}

func TestGetStatisticsRecomputesAfterWrite(t *testing.T) {
	store := newFakeTransactionStore()
	store.byType = []transaction.TypeStatistic{{Type: "expense", Total: 50, Count: 1}}
	cache := newFakeRedis()
	svc := newTestService(store, cache, testNow)
	ctx := context.Background()

	_, err := svc.GetStatistics(ctx, transaction.StatisticsRequest{}, "user-1")
	require.NoError(t, err)
	require.Equal(t, 1, store.aggregateCalls)

	_, err = svc.CreateTransaction(ctx, transaction.CreateTransactionRequest{
		UserID:   "user-1",
		Type:     "expense",
		Amount:   25,
		Category: "coffee",
	})
	require.NoError(t, err)
	require.Empty(t, cache.entries, "writes drop every cached window for the user")

	store.byType = []transaction.TypeStatistic{{Type: "expense", Total: 75, Count: 2}}
	stats, err := svc.GetStatistics(ctx, transaction.StatisticsRequest{}, "user-1")
	require.NoError(t, err)
	require.Equal(t, 2, store.aggregateCalls)
	require.Equal(t, 75.0, stats.TotalExpense)
}

func TestGetStatisticsSurvivesCacheFailure(t *testing.T) {
	store := newFakeTransactionStore()
	store.byType = []transaction.TypeStatistic{{Type: "income", Total: 10, Count: 1}}
	cache := newFakeRedis()
	cache.getErr = contextDeadlineErr{}
	svc := newTestService(store, cache, testNow)

	stats, err := svc.GetStatistics(context.Background(), transaction.StatisticsRequest{}, "user-1")
	require.NoError(t, err)
	require.Equal(t, 10.0, stats.TotalIncome)
}

type contextDeadlineErr struct{}

func (contextDeadlineErr) Error() string { return "redis: connection deadline exceeded" }
