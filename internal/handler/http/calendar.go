package http

import (
	"net/http"
	"time"

	"github.com/workdocs/leave-engine-go/internal/handler/http/response"
	leaveService "github.com/workdocs/leave-engine-go/internal/service/leave"
)

type CalendarHandler interface {
	AbsentToday(w http.ResponseWriter, r *http.Request)
	AbsentThisWeek(w http.ResponseWriter, r *http.Request)
	PlannedThisMonth(w http.ResponseWriter, r *http.Request)
}

type CalendarHandlerImpl struct {
	calendarService *leaveService.CalendarService
}

func NewCalendarHandler(calendarService *leaveService.CalendarService) CalendarHandler {
	return &CalendarHandlerImpl{calendarService: calendarService}
}

// refDate reads ?date=YYYY-MM-DD, defaulting to today.
func refDate(r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Now().UTC(), true
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// AbsentToday implements CalendarHandler.
func (c *CalendarHandlerImpl) AbsentToday(w http.ResponseWriter, r *http.Request) {
	date, ok := refDate(r)
	if !ok {
		response.BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
		return
	}

	summary, err := c.calendarService.AbsentOn(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// AbsentThisWeek implements CalendarHandler.
func (c *CalendarHandlerImpl) AbsentThisWeek(w http.ResponseWriter, r *http.Request) {
	date, ok := refDate(r)
	if !ok {
		response.BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
		return
	}

	summary, err := c.calendarService.AbsentDuringWeek(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// PlannedThisMonth implements CalendarHandler.
func (c *CalendarHandlerImpl) PlannedThisMonth(w http.ResponseWriter, r *http.Request) {
	date, ok := refDate(r)
	if !ok {
		response.BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
		return
	}

	summary, err := c.calendarService.PlannedInMonth(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
