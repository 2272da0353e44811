package transaction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuildListQueryDefaults(t *testing.T) {
	filter, opts, err := BuildListQuery(ListTransactionsRequest{}, "user-1")
	require.NoError(t, err)

	require.Equal(t, "user-1", filter.UserID)
	require.Empty(t, filter.Type)
	require.Empty(t, filter.Category)
	require.True(t, filter.DateFrom.IsZero())
	require.True(t, filter.DateTo.IsZero())

	require.Equal(t, DefaultLimit, opts.Limit)
	require.Equal(t, 0, opts.Skip)
}

func TestBuildListQueryClampsPagination(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		skip      int
		wantLimit int
		wantSkip  int
	}{
		{name: "limit above max", limit: 1000, skip: 0, wantLimit: MaxLimit, wantSkip: 0},
		{name: "limit below min", limit: -5, skip: 0, wantLimit: MinLimit, wantSkip: 0},
		{name: "negative skip", limit: 20, skip: -10, wantLimit: 20, wantSkip: 0},
		{name: "in range untouched", limit: 25, skip: 75, wantLimit: 25, wantSkip: 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, opts, err := BuildListQuery(ListTransactionsRequest{Limit: tt.limit, Skip: tt.skip}, "user-1")
			require.NoError(t, err)
			require.Equal(t, tt.wantLimit, opts.Limit)
			require.Equal(t, tt.wantSkip, opts.Skip)
		})
	}
}

func TestBuildListQueryParsesDates(t *testing.T) {
	filter, _, err := BuildListQuery(ListTransactionsRequest{
		DateFrom: "2026-01-01",
		DateTo:   "2026-01-31T15:04:05Z",
	}, "user-1")
	require.NoError(t, err)

	require.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), filter.DateFrom)
	require.Equal(t, time.Date(2026, 1, 31, 15, 4, 5, 0, time.UTC), filter.DateTo)
}

func TestBuildListQueryRejectsBadDates(t *testing.T) {
	for _, raw := range []string{"not-a-date", "31-01-2026", "2026/01/01"} {
		_, _, err := BuildListQuery(ListTransactionsRequest{DateFrom: raw}, "user-1")
		require.ErrorIs(t, err, ErrInvalidDate, "dateFrom %q", raw)

		_, _, err = BuildListQuery(ListTransactionsRequest{DateTo: raw}, "user-1")
		require.ErrorIs(t, err, ErrInvalidDate, "dateTo %q", raw)
	}
}

func TestBuildListQueryIgnoresRequestOwner(t *testing.T) {
	// The owner always comes from the authenticated identity argument.
	filter, _, err := BuildListQuery(ListTransactionsRequest{Type: "expense"}, "token-user")
	require.NoError(t, err)
	require.Equal(t, "token-user", filter.UserID)
	require.Equal(t, "expense", filter.Type)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-08-15")
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("2026-08-15T12:30:00+07:00")
	require.NoError(t, err)
	require.Equal(t, 12, got.Hour())

	_, err = ParseDate("15 Aug 2026")
	require.Error(t, err)
}
