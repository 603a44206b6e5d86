// Package service holds the business core: the ledger, the care action
// engine, bias redistribution, attendance/birthday events, minigames and the
// daily batch. All writes to user balances and animal state flow through
// here, inside caller-scoped gorm transactions.
package service

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	emotionMin = decimal.Zero
	emotionMax = decimal.NewFromInt(100)
)

// dayStart returns local midnight of t's calendar day in loc. All
// once-per-day rules compare against this value.
func dayStart(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// daysBetween returns the whole calendar days from a to b in loc (0 when
// they fall on the same day).
func daysBetween(a, b time.Time, loc *time.Location) int {
	return int(dayStart(b, loc).Sub(dayStart(a, loc)).Hours() / 24)
}
