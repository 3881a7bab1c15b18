package main

import (
	"testing"
	"time"
)

func day(value string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func TestMatchesDaySingleDate(t *testing.T) {
	event := Event{Span: &EventSpan{Date: "2025-11-27"}}

	if !MatchesDay(event, day("2025-11-27")) {
		t.Error("event should match its own date")
	}
	if MatchesDay(event, day("2025-11-28")) {
		t.Error("event should not match the next day")
	}
}

func TestMatchesDayRange(t *testing.T) {
	event := Event{Span: &EventSpan{
		Start: "2025-11-26T10:00:00",
		End:   "2025-11-28T12:00:00",
	}}

	cases := []struct {
		clicked string
		want    bool
	}{
		{"2025-11-25", false},
		{"2025-11-26", true}, // start day
		{"2025-11-27", true}, // strictly inside
		{"2025-11-28", false}, // end day is exclusive
	}

	for _, tc := range cases {
		if got := MatchesDay(event, day(tc.clicked)); got != tc.want {
			t.Errorf("MatchesDay(%s) = %v, want %v", tc.clicked, got, tc.want)
		}
	}
}

func TestEventsOnDayUsesRawEnds(t *testing.T) {
	// The exclusive-end shift NormalizeEvents applies for rendering must
	// not widen day matching: the raw end day stays excluded
	raw := []Event{{
		Category: CategoryPersonal,
		Span:     &EventSpan{AllDay: true, Start: "2025-11-26", End: "2025-11-28"},
	}}

	if got := len(EventsOnDay(raw, day("2025-11-27"))); got != 1 {
		t.Errorf("day inside the span: %d matches, want 1", got)
	}
	if got := len(EventsOnDay(raw, day("2025-11-28"))); got != 0 {
		t.Errorf("raw end day should be excluded: %d matches", got)
	}

	shifted := NormalizeEvents(raw)
	if !MatchesDay(shifted[0], day("2025-11-28")) {
		t.Error("the rendering copy should cover the raw end day")
	}
}

func TestMatchesDayWeekly(t *testing.T) {
	// 2025-11-27 is a Thursday (weekday 4)
	event := Event{
		Category: CategoryLecture,
		Weekly: &WeeklyRecurrence{
			StartRecur: "2025-09-01",
			EndRecur:   "2025-12-20",
			DaysOfWeek: []int{1, 4},
		},
	}

	if !MatchesDay(event, day("2025-11-27")) {
		t.Error("Thursday lecture should match a Thursday")
	}
	if MatchesDay(event, day("2025-11-28")) {
		t.Error("Thursday lecture should not match a Friday")
	}

	// Weekday matching does not consult the recurrence bounds
	if !MatchesDay(event, day("2026-03-05")) {
		t.Error("weekday match should apply outside the recurrence range")
	}
}

func TestMatchesDayEmptyWeekdays(t *testing.T) {
	event := Event{Category: CategoryLecture, Weekly: &WeeklyRecurrence{DaysOfWeek: []int{}}}

	if MatchesDay(event, day("2025-11-27")) {
		t.Error("lecture with no weekdays should match nothing")
	}
}

func TestMatchesDayInertEvent(t *testing.T) {
	if MatchesDay(Event{}, day("2025-11-27")) {
		t.Error("event with no span and no recurrence should match nothing")
	}
}

func TestEventsOnDayFirstRuleWins(t *testing.T) {
	// Date is checked before the start/end range: a row carrying both
	// matches only by its date
	event := Event{Span: &EventSpan{
		Date:  "2025-11-25",
		Start: "2025-11-26T10:00:00",
		End:   "2025-11-28T12:00:00",
	}}

	if got := len(EventsOnDay([]Event{event}, day("2025-11-27"))); got != 0 {
		t.Errorf("range rule applied despite date being set: %d matches", got)
	}
	if got := len(EventsOnDay([]Event{event}, day("2025-11-25"))); got != 1 {
		t.Errorf("date rule should match: %d matches", got)
	}
}
