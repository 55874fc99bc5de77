// Package budget holds the pure core of the application: calendar
// arithmetic, the installment materializer, the month-scoped aggregator and
// the record filter. Nothing in here touches a store.
package budget

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MonthKey returns the canonical YYYY-MM identifier for the month containing t.
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// AddMonths shifts t by n calendar months, positive or negative, normalized
// to the first of the resulting month. Day-of-month is never preserved; all
// internal month anchors are first-of-month.
func AddMonths(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
}

// ParseYMD parses "YYYY-MM-DD" or "YYYY-MM", defaulting missing month and
// day components to 1. Empty or malformed input yields today: date parsing
// fails soft, never hard.
func ParseYMD(s string) time.Time {
	parts := strings.Split(strings.TrimSpace(s), "-")
	year, err := strconv.Atoi(parts[0])
	if err != nil || year == 0 {
		return time.Now()
	}
	month, day := 1, 1
	if len(parts) > 1 {
		if m, err := strconv.Atoi(parts[1]); err == nil && m != 0 {
			month = m
		}
	}
	if len(parts) > 2 {
		if d, err := strconv.Atoi(parts[2]); err == nil && d != 0 {
			day = d
		}
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// CurrentMonthKey returns the month key for today.
func CurrentMonthKey() string {
	return MonthKey(time.Now())
}

// NextMonthKey increments a month key, rolling the year over at December.
func NextMonthKey(ym string) string {
	year, month := splitMonthKey(ym)
	if month == 12 {
		return fmt.Sprintf("%04d-%02d", year+1, 1)
	}
	return fmt.Sprintf("%04d-%02d", year, month+1)
}

// PrevMonthKey decrements a month key, rolling the year back at January.
func PrevMonthKey(ym string) string {
	year, month := splitMonthKey(ym)
	if month == 1 {
		return fmt.Sprintf("%04d-%02d", year-1, 12)
	}
	return fmt.Sprintf("%04d-%02d", year, month-1)
}

func splitMonthKey(ym string) (year, month int) {
	t := ParseYMD(ym)
	return t.Year(), int(t.Month())
}
