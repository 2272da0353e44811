package transactionRepository

import (
	"MoneyTrack/internal/api/transaction"
	contextPkg "MoneyTrack/pkg/context"
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// AggregateStatistics computes per-type and per-(type, category) sums and
// counts over the user's non-destroyed records inside the inclusive window.
// Category rows come back ordered by sum descending.
func (r *transactionRepository) AggregateStatistics(c context.Context, userID string, dateFrom, dateTo time.Time) ([]transaction.TypeStatistic, []transaction.CategoryStatistic, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"user_id":   userID,
		"date_from": dateFrom,
		"date_to":   dateTo,
	}

	query, args, err := sqlx.Named(queryStatisticsByType, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AggregateStatistics by-type query preparation err")
		return nil, nil, err
	}

	query = r.q.Rebind(query)

	var byType []transaction.TypeStatistic
	if err := r.q.SelectContext(c, &byType, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AggregateStatistics by-type execution err")
		return nil, nil, err
	}

	query, args, err = sqlx.Named(queryStatisticsByCategory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AggregateStatistics by-category query preparation err")
		return nil, nil, err
	}

	query = r.q.Rebind(query)

	var byCategory []transaction.CategoryStatistic
	if err := r.q.SelectContext(c, &byCategory, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AggregateStatistics by-category execution err")
		return nil, nil, err
	}

	return byType, byCategory, nil
}
