package leave

import (
	"context"
	"time"

	"github.com/workdocs/leave-engine-go/internal/domain/leave"
)

// CalendarService answers the dashboard questions: who is absent today,
// this week, and who has something planned this month. Read-only over
// approved requests.
type CalendarService struct {
	leave.RequestRepository
}

func NewCalendarService(requestRepository leave.RequestRepository) *CalendarService {
	return &CalendarService{RequestRepository: requestRepository}
}

// AbsenceSummary is one aggregation window.
type AbsenceSummary struct {
	From     time.Time
	To       time.Time
	Count    int
	Requests []leave.Request
}

// AbsentOn reports approved requests covering the given date.
func (s *CalendarService) AbsentOn(ctx context.Context, date time.Time) (AbsenceSummary, error) {
	day := dateOnly(date)
	return s.summarize(ctx, day, day)
}

// AbsentDuringWeek widens the date to its ISO week (Monday through Sunday).
func (s *CalendarService) AbsentDuringWeek(ctx context.Context, date time.Time) (AbsenceSummary, error) {
	day := dateOnly(date)

	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := day.AddDate(0, 0, 1-weekday)
	sunday := monday.AddDate(0, 0, 6)

	return s.summarize(ctx, monday, sunday)
}

// PlannedInMonth reports approved requests intersecting the calendar month
// containing the given date.
func (s *CalendarService) PlannedInMonth(ctx context.Context, date time.Time) (AbsenceSummary, error) {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	return s.summarize(ctx, first, last)
}

func (s *CalendarService) summarize(ctx context.Context, from, to time.Time) (AbsenceSummary, error) {
	requests, err := s.ListApprovedIntersecting(ctx, from, to)
	if err != nil {
		return AbsenceSummary{}, err
	}

	return AbsenceSummary{
		From:     from,
		To:       to,
		Count:    len(requests),
		Requests: requests,
	}, nil
}
