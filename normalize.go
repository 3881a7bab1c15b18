package main

import (
	"time"
)

const (
	lectureColor       = "#1976d2"
	personalColor      = "#2e7d32"
	groupFallbackColor = "#ed6c02"
)

// resolveColor picks the display color for an event. Lectures and personal
// events use fixed category colors; group events use the event's own color,
// then the group's color, then the shared orange fallback.
func resolveColor(event Event) string {
	switch event.Category {
	case CategoryLecture:
		return lectureColor
	case CategoryPersonal:
		return personalColor
	default:
		if event.Color != "" {
			return event.Color
		}
		if event.GroupColor != "" {
			return event.GroupColor
		}
		return groupFallbackColor
	}
}

// endIsExclusive reports whether the event's end should be pushed forward a
// day for display. All-day events and events whose raw end string is a bare
// date (no time portion) use exclusive end semantics.
func endIsExclusive(span *EventSpan) bool {
	end := span.EndRaw()
	if end == "" {
		return false
	}
	return span.AllDay || len(end) <= 10
}

// NormalizeEvents returns display copies of the fetched events: resolved
// colors and exclusive end dates. The originals keep the server's raw
// values so edits round-trip untouched.
func NormalizeEvents(events []Event) []Event {
	out := make([]Event, len(events))
	for i, event := range events {
		event.Color = resolveColor(event)

		if event.Span != nil {
			span := *event.Span
			if endIsExclusive(&span) {
				if end, ok := parseDate(span.EndRaw()); ok {
					span.End = end.AddDate(0, 0, 1).Format(dateLayout)
				}
			}
			event.Span = &span
		}

		out[i] = event
	}
	return out
}

// dayStart truncates a time to local midnight.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
