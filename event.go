package main

import (
	"time"
)

type EventCategory string

const (
	CategoryPersonal EventCategory = "personal"
	CategoryLecture  EventCategory = "lecture"
	CategoryGroup    EventCategory = "group"
)

// EventSpan holds the date fields of a one-off (personal or group) event.
// The raw server strings are kept as-is: the date-only end rule and the
// edit form both need the original values, not parsed times.
type EventSpan struct {
	AllDay bool
	Date   string // single-day form, "2006-01-02"
	Start  string // ISO datetime, or a bare date
	End    string
}

// StartRaw returns the effective start string, preferring the single-day
// date field when the server sent one.
func (s *EventSpan) StartRaw() string {
	if s.Date != "" {
		return s.Date
	}
	return s.Start
}

// EndRaw returns the effective end string, falling back to the single-day
// date field for events that have no explicit end.
func (s *EventSpan) EndRaw() string {
	if s.End != "" {
		return s.End
	}
	return s.Date
}

// WeeklyRecurrence holds the recurrence fields of a lecture.
type WeeklyRecurrence struct {
	StartRecur string // "2006-01-02"
	EndRecur   string
	StartTime  string // "15:04:05"
	EndTime    string
	DaysOfWeek []int // 0 = Sunday, matching time.Weekday
}

// Event is one schedule record. Exactly one of Span and Weekly is set for
// well-formed records; an event with neither matches no day and renders
// nothing, which is how malformed server rows degrade.
type Event struct {
	ID          int64
	Category    EventCategory
	Title       string
	Description string
	Location    string
	Color       string // resolved display color, set by NormalizeEvents
	GroupID     int64
	GroupName   string
	GroupColor  string

	Span   *EventSpan
	Weekly *WeeklyRecurrence
}

// scheduleJSON is the wire shape of a schedule row.
type scheduleJSON struct {
	ID          int64  `json:"id"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Color       string `json:"color"`
	GroupID     int64  `json:"groupId"`
	GroupName   string `json:"groupName"`
	GroupColor  string `json:"groupColor"`
	AllDay      bool   `json:"allDay"`
	Date        string `json:"date"`
	Start       string `json:"start"`
	End         string `json:"end"`
	StartRecur  string `json:"startRecur"`
	EndRecur    string `json:"endRecur"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	DaysOfWeek  []int  `json:"daysOfWeek"`
}

func decodeEvent(s scheduleJSON) Event {
	event := Event{
		ID:          s.ID,
		Category:    EventCategory(s.Category),
		Title:       s.Title,
		Description: s.Description,
		Location:    s.Location,
		Color:       s.Color,
		GroupID:     s.GroupID,
		GroupName:   s.GroupName,
		GroupColor:  s.GroupColor,
	}

	if s.Category == string(CategoryLecture) {
		event.Weekly = &WeeklyRecurrence{
			StartRecur: s.StartRecur,
			EndRecur:   s.EndRecur,
			StartTime:  s.StartTime,
			EndTime:    s.EndTime,
			DaysOfWeek: s.DaysOfWeek,
		}
	} else if s.Date != "" || s.Start != "" || s.End != "" {
		event.Span = &EventSpan{
			AllDay: s.AllDay,
			Date:   s.Date,
			Start:  s.Start,
			End:    s.End,
		}
	}

	return event
}

// datePart extracts the calendar date of an ISO datetime or bare date string.
func datePart(value string) string {
	if len(value) > 10 {
		return value[:10]
	}
	return value
}

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"
	clockLayout    = "15:04:05"
)

func parseDate(value string) (time.Time, bool) {
	t, err := time.ParseInLocation(dateLayout, datePart(value), time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func parseDateTime(value string) (time.Time, bool) {
	if t, err := time.ParseInLocation(dateTimeLayout, value, time.Local); err == nil {
		return t, true
	}
	// Some rows carry a bare date where a datetime is expected
	return parseDate(value)
}

func parseClock(value string) (hour, min int, ok bool) {
	t, err := time.Parse(clockLayout, value)
	if err != nil {
		if t, err = time.Parse("15:04", value); err != nil {
			return 0, 0, false
		}
	}
	return t.Hour(), t.Minute(), true
}
