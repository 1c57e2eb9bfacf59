package availability

import (
	"fmt"
	"strconv"
)

// ParseError reports a calendar entry whose date or count field does not
// match the wire format. The raw field values are kept for operator
// diagnosis.
type ParseError struct {
	Field     string // "start_date" or "num"
	StartDate string
	Num       string
	Err       error
}

func (e *ParseError) Error() string {
	if e.Field == "num" {
		return fmt.Sprintf("invalid 'num' string %q on start_date %q: %v", e.Num, e.StartDate, e.Err)
	}
	return fmt.Sprintf("invalid 'start_date' string %q, does not match %s: %v", e.StartDate, DateFormat, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Filter selects the entries with a start date inside rng and fewer than
// limit permits taken, preserving calendar order. Remaining capacity is
// computed against limit, not the calendar's declared one.
//
// Any entry whose date or count fails to parse aborts the whole pass with a
// *ParseError and no partial results; one bad entry usually means the page
// format changed and silently skipping it would mask that.
func Filter(cal Calendar, rng DateRange, limit uint64) (Result, error) {
	openings := make(Result, 0, len(cal.Calendar))

	for _, entry := range cal.Calendar {
		date, err := ParseDate(entry.StartDate)
		if err != nil {
			return nil, &ParseError{Field: "start_date", StartDate: entry.StartDate, Num: entry.Num, Err: err}
		}

		num, err := strconv.ParseUint(entry.Num, 10, 64)
		if err != nil {
			return nil, &ParseError{Field: "num", StartDate: entry.StartDate, Num: entry.Num, Err: err}
		}

		if rng.Contains(date) && num < limit {
			openings = append(openings, Opening{Date: date, Remaining: limit - num})
		}
	}

	return openings, nil
}
