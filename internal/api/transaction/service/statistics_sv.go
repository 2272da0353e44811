package transactionService

import (
	"MoneyTrack/internal/api/transaction"
	"MoneyTrack/internal/entity"
	contextPkg "MoneyTrack/pkg/context"
	"MoneyTrack/pkg/redis"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const statisticsCacheTTL = 5 * time.Minute

// GetStatistics aggregates the user's transactions over the requested window,
// defaulting to the current calendar month. The resolved window is merged into
// the result so callers can see what was actually applied.
func (s *transactionService) GetStatistics(ctx context.Context, req transaction.StatisticsRequest, userID string) (transaction.Statistics, error) {
	requestID := contextPkg.GetRequestID(ctx)

	dateFrom, dateTo, err := s.resolveWindow(req)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"date_from":  req.DateFrom,
			"date_to":    req.DateTo,
		}).Warn("Invalid statistics window")
		return transaction.Statistics{}, err
	}

	cacheKey := redis.StatisticsKey(userID, dateFrom, dateTo)
	if cached, err := s.redisServer.GetStatistics(ctx, cacheKey); err == nil {
		var stats transaction.Statistics
		if err := jsoniter.UnmarshalFromString(cached, &stats); err == nil {
			return stats, nil
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"key":        cacheKey,
		}).Warn("Discarding unreadable cached statistics")
	} else if !errors.Is(err, redis.ErrCacheMiss) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Statistics cache read failed, falling through to store")
	}

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return transaction.Statistics{}, err
	}

	byType, byCategory, err := repo.Transactions.AggregateStatistics(ctx, userID, dateFrom, dateTo)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to aggregate statistics")
		return transaction.Statistics{}, err
	}

	stats := makeStatistics(byType, byCategory, dateFrom, dateTo)

	if payload, err := jsoniter.MarshalToString(stats); err == nil {
		if err := s.redisServer.SetStatistics(ctx, cacheKey, payload, statisticsCacheTTL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Statistics cache write failed")
		}
	}

	return stats, nil
}

// resolveWindow applies the default aggregate window: the first through the
// last day of the current month, with the upper bound extended to the end of
// that day so same-day transactions are included.
func (s *transactionService) resolveWindow(req transaction.StatisticsRequest) (time.Time, time.Time, error) {
	now := s.clock.Now()

	dateFrom := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if req.DateFrom != "" {
		parsed, err := transaction.ParseDate(req.DateFrom)
		if err != nil {
			return time.Time{}, time.Time{}, transaction.ErrInvalidDate
		}
		dateFrom = parsed
	}

	// Day 0 of the next month is the last day of the current one.
	dateTo := time.Date(now.Year(), now.Month()+1, 0, 23, 59, 59, 0, now.Location())
	if req.DateTo != "" {
		parsed, err := transaction.ParseDate(req.DateTo)
		if err != nil {
			return time.Time{}, time.Time{}, transaction.ErrInvalidDate
		}
		dateTo = parsed
	}

	return dateFrom, dateTo, nil
}

func makeStatistics(byType []transaction.TypeStatistic, byCategory []transaction.CategoryStatistic, dateFrom, dateTo time.Time) transaction.Statistics {
	var totalExpense, totalIncome float64
	for _, row := range byType {
		switch row.Type {
		case string(entity.TransactionTypeExpense):
			totalExpense = row.Total
		case string(entity.TransactionTypeIncome):
			totalIncome = row.Total
		}
	}

	if byCategory == nil {
		byCategory = []transaction.CategoryStatistic{}
	}

	return transaction.Statistics{
		TotalExpense: totalExpense,
		TotalIncome:  totalIncome,
		Balance:      totalIncome - totalExpense,
		ByCategory:   byCategory,
		DateFrom:     dateFrom,
		DateTo:       dateTo,
	}
}

// invalidateStatistics is best-effort: a failed cache drop only shortens the
// staleness window to the entry TTL.
func (s *transactionService) invalidateStatistics(ctx context.Context, userID string) {
	if err := s.redisServer.InvalidateStatistics(ctx, userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Failed to invalidate cached statistics")
	}
}
