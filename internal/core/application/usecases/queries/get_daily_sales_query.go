package queries

import (
	"errors"
	"time"

	"eatery/internal/pkg/errs"
	"eatery/internal/pkg/guard"
)

// GetDailySalesQuery requests the sales aggregate for one calendar day.
// Only orders that completed the full pipeline (payment taken) count.
//
// Example:
//
//	query, err := NewGetDailySalesQuery(time.Now())
//	if err != nil {
//	    // handle error
//	}
type GetDailySalesQuery struct {
	day time.Time

	guard.ConstructorGuard
}

// NewGetDailySalesQuery creates a query for the calendar day that
// contains the given instant. The instant's location decides where the
// day boundary falls.
func NewGetDailySalesQuery(day time.Time) (GetDailySalesQuery, error) {
	if err := errors.Join(setDay(day)); err != nil {
		return GetDailySalesQuery{}, err
	}

	return GetDailySalesQuery{
		day:              day,
		ConstructorGuard: guard.NewConstructorGuard(),
	}, nil
}

// Day returns the instant whose calendar day the query covers.
func (q GetDailySalesQuery) Day() time.Time {
	return q.day
}

func setDay(day time.Time) error {
	if day.IsZero() {
		return errs.NewValueIsRequiredError("day")
	}
	return nil
}
