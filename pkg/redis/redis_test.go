package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStatisticsKey(t *testing.T) {
	dateFrom := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	dateTo := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)

	key := StatisticsKey("user-1", dateFrom, dateTo)
	require.Equal(t, "statistics:user-1:1772323200:1775001599", key)

	// Distinct windows must never collide on one key.
	other := StatisticsKey("user-1", dateFrom, dateTo.Add(time.Second))
	require.NotEqual(t, key, other)
	require.NotEqual(t, key, StatisticsKey("user-2", dateFrom, dateTo))
}
