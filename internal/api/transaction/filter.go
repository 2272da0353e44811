package transaction

import (
	"time"
)

const (
	DefaultLimit = 50
	MinLimit     = 1
	MaxLimit     = 100
)

// ListFilter is the canonical store-level filter. UserID is always set from
// the authenticated identity; a zero DateFrom/DateTo leaves that side of the
// range open. Both bounds are inclusive.
type ListFilter struct {
	UserID   string
	Type     string
	Category string
	DateFrom time.Time
	DateTo   time.Time
}

// ListOptions carries pagination. Sort is fixed to date descending and is not
// client-configurable.
type ListOptions struct {
	Limit int
	Skip  int
}

// BuildListQuery normalizes raw list parameters into a canonical filter and
// pagination options. The userID comes from the verified token, never from
// the raw request. The validator rejects out-of-range limit/skip at the HTTP
// boundary; the clamp here keeps callers that bypass it inside bounds too.
func BuildListQuery(req ListTransactionsRequest, userID string) (ListFilter, ListOptions, error) {
	filter := ListFilter{
		UserID:   userID,
		Type:     req.Type,
		Category: req.Category,
	}

	if req.DateFrom != "" {
		dateFrom, err := ParseDate(req.DateFrom)
		if err != nil {
			return ListFilter{}, ListOptions{}, ErrInvalidDate
		}
		filter.DateFrom = dateFrom
	}

	if req.DateTo != "" {
		dateTo, err := ParseDate(req.DateTo)
		if err != nil {
			return ListFilter{}, ListOptions{}, ErrInvalidDate
		}
		filter.DateTo = dateTo
	}

	opts := ListOptions{
		Limit: req.Limit,
		Skip:  req.Skip,
	}

	if opts.Limit == 0 {
		opts.Limit = DefaultLimit
	}
	if opts.Limit < MinLimit {
		opts.Limit = MinLimit
	}
	if opts.Limit > MaxLimit {
		opts.Limit = MaxLimit
	}
	if opts.Skip < 0 {
		opts.Skip = 0
	}

	return filter, opts, nil
}

// ParseDate accepts RFC3339 timestamps and plain dates.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}
