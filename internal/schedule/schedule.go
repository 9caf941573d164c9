// Package schedule computes the first execution date of a recurring
// fund-purchase plan from today's date, the recurrence cycle and the
// chosen day selector.
package schedule

import "time"

// DateLayout is the calendar date format used throughout the system.
const DateLayout = "2006-01-02"

// Cycle is the recurrence cadence of a plan.
type Cycle string

// The closed set of supported cycles.
const (
	CycleDaily    Cycle = "daily"
	CycleWeekly   Cycle = "weekly"
	CycleBiweekly Cycle = "biweekly"
	CycleMonthly  Cycle = "monthly"
)

// ValidCycle contains the allowed cycle values.
var ValidCycle = map[Cycle]bool{
	CycleDaily: true, CycleWeekly: true, CycleBiweekly: true, CycleMonthly: true,
}

// Valid reports whether the cycle is one of the four defined values.
func (c Cycle) Valid() bool {
	return ValidCycle[c]
}

// UsesWeeklyDay reports whether the cycle is driven by a weekday selector.
func (c Cycle) UsesWeeklyDay() bool {
	return c == CycleWeekly || c == CycleBiweekly
}

// UsesMonthlyDay reports whether the cycle is driven by a day-of-month selector.
func (c Cycle) UsesMonthlyDay() bool {
	return c == CycleMonthly
}

// ValidWeeklyDay reports whether d is a selectable weekday (Monday=1..Friday=5).
// Weekends are never selectable.
func ValidWeeklyDay(d int) bool {
	return d >= 1 && d <= 5
}

// ValidMonthlyDay reports whether d is a selectable day of month (1..28).
// Days 29-31 are excluded to keep every month valid.
func ValidMonthlyDay(d int) bool {
	return d >= 1 && d <= 28
}

// weeklyScanLimit bounds the forward scan for a matching weekday. A match
// always exists within 7 days for targets in 1..5; 14 is a safety margin.
const weeklyScanLimit = 14

// ComputeFirstDate returns the earliest date, on or after today, on which the
// cadence rule is first satisfied.
//
// daily returns today. weekly and biweekly return the nearest date whose
// weekday matches the selector; biweekly deliberately shares weekly's rule,
// the two-week spacing is applied downstream when subsequent occurrences are
// scheduled. monthly returns the selected day in the current month, rolling
// to the next month if it has already passed.
//
// Out-of-range selectors are not an error: weekly falls back to today's
// weekday if it is a workday, else Monday; monthly falls back to
// min(28, today's day of month). Callers normally pass selectors already
// clamped to their valid ranges.
func ComputeFirstDate(cycle Cycle, weeklyDay, monthlyDay int, today time.Time) time.Time {
	today = startOfDay(today)

	switch {
	case cycle.UsesWeeklyDay():
		target := weeklyDay
		if !ValidWeeklyDay(target) {
			if wd := int(today.Weekday()); ValidWeeklyDay(wd) {
				target = wd
			} else {
				target = 1
			}
		}
		candidate := today
		for i := 0; i < weeklyScanLimit; i++ {
			if int(candidate.Weekday()) == target {
				return candidate
			}
			candidate = candidate.AddDate(0, 0, 1)
		}
		return candidate

	case cycle.UsesMonthlyDay():
		day := monthlyDay
		if !ValidMonthlyDay(day) {
			day = min(28, today.Day())
		}
		candidate := time.Date(today.Year(), today.Month(), day, 0, 0, 0, 0, today.Location())
		if candidate.Before(today) {
			// day <= 28, so adding a month always lands on the same day.
			candidate = candidate.AddDate(0, 1, 0)
		}
		return candidate

	default:
		return today
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
