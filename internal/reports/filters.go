package reports

import (
	"errors"
	"time"
)

// DateRange resolves a named booking-date window relative to now. An empty
// name means no bounds. Custom ranges take yyyy-mm-dd start/end and include
// the whole end day.
func DateRange(name, startStr, endStr string, now time.Time) (*time.Time, *time.Time, error) {
	loc := now.Location()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	span := func(start time.Time, days int) (*time.Time, *time.Time, error) {
		end := start.AddDate(0, 0, days).Add(-time.Nanosecond)
		return &start, &end, nil
	}

	switch name {
	case "":
		return nil, nil, nil
	case DateRangeToday:
		return span(dayStart, 1)
	case DateRangeTomorrow:
		return span(dayStart.AddDate(0, 0, 1), 1)
	case DateRangeWeek:
		return span(dayStart, 7)
	case DateRangeMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
		return &start, &end, nil
	case DateRangeCustom:
		if startStr == "" || endStr == "" {
			return nil, nil, errors.New("start_date and end_date required for custom range")
		}
		start, err := time.ParseInLocation("2006-01-02", startStr, loc)
		if err != nil {
			return nil, nil, errors.New("invalid start_date, expected yyyy-mm-dd")
		}
		end, err := time.ParseInLocation("2006-01-02", endStr, loc)
		if err != nil {
			return nil, nil, errors.New("invalid end_date, expected yyyy-mm-dd")
		}
		if start.After(end) {
			return nil, nil, errors.New("start_date must be before end_date")
		}
		end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
		return &start, &end, nil
	default:
		return nil, nil, errors.New("unknown date_range: " + name)
	}
}
