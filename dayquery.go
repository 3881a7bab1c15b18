package main

import (
	"time"
)

// MatchesDay reports whether a normalized event belongs on the given day.
// Rules apply in order and the first applicable one decides:
//
//  1. single-day events match on date equality
//  2. ranged events match their start day, or any day strictly between the
//     start day and the (exclusive) end day
//  3. weekly events match on weekday membership; the recurrence date bounds
//     are intentionally not consulted here, matching the behavior users see
//  4. anything else matches nothing
func MatchesDay(event Event, day time.Time) bool {
	clicked := dayStart(day)

	if event.Span != nil && event.Span.Date != "" {
		date, ok := parseDate(event.Span.Date)
		return ok && clicked.Equal(date)
	}

	if event.Span != nil && event.Span.Start != "" && event.Span.End != "" {
		start, okStart := parseDateTime(event.Span.Start)
		end, okEnd := parseDateTime(event.Span.End)
		if !okStart || !okEnd {
			return false
		}
		startDay := dayStart(start)
		endDay := dayStart(end)
		return clicked.Equal(startDay) || (clicked.After(startDay) && clicked.Before(endDay))
	}

	if event.Weekly != nil {
		weekday := int(clicked.Weekday())
		for _, d := range event.Weekly.DaysOfWeek {
			if d == weekday {
				return true
			}
		}
		return false
	}

	return false
}

// EventsOnDay filters a normalized event list down to the given day.
func EventsOnDay(events []Event, day time.Time) []Event {
	matched := []Event{}
	for _, event := range events {
		if MatchesDay(event, day) {
			matched = append(matched, event)
		}
	}
	return matched
}
