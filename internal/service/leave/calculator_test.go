package leave

import (
	"errors"
	"testing"
	"time"

	"github.com/workdocs/leave-engine-go/internal/domain/leave"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCountWorkingDays(t *testing.T) {
	cases := []struct {
		name          string
		start, end    string
		worksSaturday bool
		exceptions    []leave.ExcludedDate
		want          int
	}{
		{
			// 2024-06-03 is a Monday, 2024-06-08 a Saturday.
			name:  "mon to sat without saturday work",
			start: "2024-06-03", end: "2024-06-08",
			worksSaturday: false,
			want:          5,
		},
		{
			name:  "mon to sat with saturday work",
			start: "2024-06-03", end: "2024-06-08",
			worksSaturday: true,
			want:          6,
		},
		{
			name:  "saturday worker excludes one saturday",
			start: "2024-06-03", end: "2024-06-08",
			worksSaturday: true,
			exceptions: []leave.ExcludedDate{
				{Date: date("2024-06-08"), Reason: leave.ExclusionNonWorkingSaturday},
			},
			want: 5,
		},
		{
			name:  "non saturday worker includes one saturday",
			start: "2024-06-03", end: "2024-06-08",
			worksSaturday: false,
			exceptions: []leave.ExcludedDate{
				{Date: date("2024-06-08"), Reason: leave.ExclusionWorkingSaturday},
			},
			want: 6,
		},
		{
			name:  "weekday excluded with justification",
			start: "2024-06-03", end: "2024-06-08",
			worksSaturday: false,
			exceptions: []leave.ExcludedDate{
				{Date: date("2024-06-05"), Reason: leave.ExclusionNonWorkingWeekday},
			},
			want: 4,
		},
		{
			name:  "full week includes sunday which never counts",
			start: "2024-06-03", end: "2024-06-09",
			worksSaturday: true,
			want:          6,
		},
		{
			name:  "single working day",
			start: "2024-06-03", end: "2024-06-03",
			worksSaturday: false,
			want:          1,
		},
		{
			name:  "single sunday",
			start: "2024-06-09", end: "2024-06-09",
			worksSaturday: true,
			want:          0,
		},
		{
			name:  "exception outside range is a no-op",
			start: "2024-06-03", end: "2024-06-07",
			worksSaturday: false,
			exceptions: []leave.ExcludedDate{
				{Date: date("2024-07-01"), Reason: leave.ExclusionNonWorkingWeekday},
			},
			want: 5,
		},
		{
			// 2023-12-29 Friday through 2024-01-02 Tuesday.
			name:  "range crossing year boundary uses one policy",
			start: "2023-12-29", end: "2024-01-02",
			worksSaturday: true,
			want:          4,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := CountWorkingDays(date(c.start), date(c.end), c.worksSaturday, c.exceptions)
			if err != nil {
				t.Fatalf("CountWorkingDays returned error: %v", err)
			}
			if got != c.want {
				t.Errorf("CountWorkingDays(%s..%s, worksSaturday=%v) = %d, want %d",
					c.start, c.end, c.worksSaturday, got, c.want)
			}
		})
	}
}

func TestCountWorkingDaysInvalidRange(t *testing.T) {
	_, err := CountWorkingDays(date("2024-06-08"), date("2024-06-03"), false, nil)
	if !errors.Is(err, leave.ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestClassifyDaysOverrideMarking(t *testing.T) {
	days, err := ClassifyDays(date("2024-06-03"), date("2024-06-08"), false, []leave.ExcludedDate{
		{Date: date("2024-06-05"), Reason: leave.ExclusionNonWorkingWeekday},
	})
	if err != nil {
		t.Fatalf("ClassifyDays returned error: %v", err)
	}
	if len(days) != 6 {
		t.Fatalf("expected 6 classified days, got %d", len(days))
	}

	for _, day := range days {
		key := day.Date.Format("2006-01-02")
		if key == "2024-06-05" {
			if day.Counted {
				t.Errorf("excluded weekday %s should not count", key)
			}
			if day.Override == nil || *day.Override != leave.ExclusionNonWorkingWeekday {
				t.Errorf("excluded weekday %s should carry its override reason", key)
			}
			continue
		}
		if day.Override != nil {
			t.Errorf("day %s should not carry an override", key)
		}
	}
}

func TestClassifyDaysIrrelevantOverrideIgnored(t *testing.T) {
	// A saturday-specific reason on a weekday changes nothing.
	got, err := CountWorkingDays(date("2024-06-03"), date("2024-06-07"), false, []leave.ExcludedDate{
		{Date: date("2024-06-04"), Reason: leave.ExclusionNonWorkingSaturday},
	})
	if err != nil {
		t.Fatalf("CountWorkingDays returned error: %v", err)
	}
	if got != 5 {
		t.Errorf("expected 5, got %d", got)
	}
}

func TestSaturdaysInRange(t *testing.T) {
	saturdays := SaturdaysInRange(date("2024-06-01"), date("2024-06-30"))
	if len(saturdays) != 5 {
		t.Fatalf("expected 5 saturdays in June 2024, got %d", len(saturdays))
	}
	for _, d := range saturdays {
		if d.Weekday() != time.Saturday {
			t.Errorf("%s is not a Saturday", d.Format("2006-01-02"))
		}
	}
}

func TestWeekdaysInRange(t *testing.T) {
	weekdays := WeekdaysInRange(date("2024-06-03"), date("2024-06-09"))
	if len(weekdays) != 5 {
		t.Fatalf("expected 5 weekdays, got %d", len(weekdays))
	}
	for _, d := range weekdays {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			t.Errorf("%s is not a weekday", d.Format("2006-01-02"))
		}
	}
}
