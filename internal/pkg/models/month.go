package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidMonth is returned when a selected month cannot be parsed
var ErrInvalidMonth = errors.New("invalid month")

const (
	monthLayout = "2006-01"
	dayLayout   = "2006-01-02"
)

// MonthRange is the sale-date window of a selected month.
// Start is midnight UTC of the first selected day and End is midnight UTC
// of the last calendar day of that month; End is inclusive at day
// granularity.
type MonthRange struct {
	Start time.Time
	End   time.Time
}

// ParseMonthRange parses "YYYY-MM" or "YYYY-MM-DD" into a MonthRange.
// For the day form the range starts on that day and still ends on the
// last day of the month.
func ParseMonthRange(selectedMonth string) (MonthRange, error) {
	s := strings.TrimSpace(selectedMonth)
	if s == "" {
		return MonthRange{}, fmt.Errorf("%w: empty value", ErrInvalidMonth)
	}

	layout := monthLayout
	if len(s) > len(monthLayout) {
		layout = dayLayout
	}

	start, err := time.ParseInLocation(layout, s, time.UTC)
	if err != nil {
		return MonthRange{}, fmt.Errorf("%w: %q", ErrInvalidMonth, selectedMonth)
	}

	firstOfMonth := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := firstOfMonth.AddDate(0, 1, -1)

	return MonthRange{Start: start, End: end}, nil
}

// Until returns the exclusive upper bound of the range, the midnight
// following End. Store queries filter with Start <= dateOfSale < Until.
func (r MonthRange) Until() time.Time {
	return r.End.AddDate(0, 0, 1)
}

// Contains reports whether t falls inside the range
func (r MonthRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.Until())
}

// String returns the range as "start..end" in day format
func (r MonthRange) String() string {
	return r.Start.Format(dayLayout) + ".." + r.End.Format(dayLayout)
}
