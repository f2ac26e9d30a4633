package leave

import (
	"time"

	"github.com/workdocs/leave-engine-go/internal/domain/leave"
)

// DayClassification describes how one calendar date of a range contributes
// to the working-day count.
type DayClassification struct {
	Date     time.Time
	Weekday  time.Weekday
	Counted  bool
	Override *leave.ExclusionReason
}

// CountWorkingDays returns how many days of [start, end] (inclusive) an
// absence consumes under the given Saturday policy and per-date overrides.
//
// This is the single source of truth for day counting: the interactive
// preview and the persisted days_requested snapshot both go through here
// with identical inputs.
func CountWorkingDays(start, end time.Time, worksSaturday bool, exceptions []leave.ExcludedDate) (int, error) {
	classified, err := ClassifyDays(start, end, worksSaturday, exceptions)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, day := range classified {
		if day.Counted {
			count++
		}
	}
	return count, nil
}

// ClassifyDays classifies every date of [start, end] inclusive.
//
// Rules:
//   - Sunday never counts; no override applies.
//   - Saturday counts iff worksSaturday; a non_working_saturday override
//     force-excludes, a working_saturday override force-includes, either way
//     regardless of the default.
//   - Monday-Friday counts unless a non_working_weekday override excludes it.
//
// A multi-year range applies the same policy and override set uniformly;
// there is no per-year policy.
func ClassifyDays(start, end time.Time, worksSaturday bool, exceptions []leave.ExcludedDate) ([]DayClassification, error) {
	start = dateOnly(start)
	end = dateOnly(end)

	if start.After(end) {
		return nil, leave.ErrInvalidDateRange
	}

	overrides := make(map[string]leave.ExclusionReason, len(exceptions))
	for _, ex := range exceptions {
		overrides[dayKey(ex.Date)] = ex.Reason
	}

	var days []DayClassification
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := DayClassification{Date: d, Weekday: d.Weekday()}

		reason, hasOverride := overrides[dayKey(d)]

		switch d.Weekday() {
		case time.Sunday:
			day.Counted = false
		case time.Saturday:
			day.Counted = worksSaturday
			if hasOverride {
				switch reason {
				case leave.ExclusionNonWorkingSaturday:
					day.Counted = false
					day.Override = &reason
				case leave.ExclusionWorkingSaturday:
					day.Counted = true
					day.Override = &reason
				}
			}
		default:
			day.Counted = true
			if hasOverride && reason == leave.ExclusionNonWorkingWeekday {
				day.Counted = false
				day.Override = &reason
			}
		}

		days = append(days, day)
	}

	return days, nil
}

// SaturdaysInRange enumerates the Saturdays of [start, end] inclusive, for
// callers building an override set interactively before submission.
func SaturdaysInRange(start, end time.Time) []time.Time {
	return daysOfWeekInRange(start, end, func(w time.Weekday) bool {
		return w == time.Saturday
	})
}

// WeekdaysInRange enumerates the Monday-Friday dates of [start, end]
// inclusive.
func WeekdaysInRange(start, end time.Time) []time.Time {
	return daysOfWeekInRange(start, end, func(w time.Weekday) bool {
		return w != time.Saturday && w != time.Sunday
	})
}

func daysOfWeekInRange(start, end time.Time, match func(time.Weekday) bool) []time.Time {
	start = dateOnly(start)
	end = dateOnly(end)

	dates := make([]time.Time, 0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if match(d.Weekday()) {
			dates = append(dates, d)
		}
	}
	return dates
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
