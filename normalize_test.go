package main

import (
	"testing"
)

func TestResolveColor(t *testing.T) {
	cases := []struct {
		name  string
		event Event
		want  string
	}{
		{"lecture", Event{Category: CategoryLecture, Color: "#ffffff"}, "#1976d2"},
		{"personal", Event{Category: CategoryPersonal, Color: "#ffffff"}, "#2e7d32"},
		{"group with own color", Event{Category: CategoryGroup, Color: "#9c27b0"}, "#9c27b0"},
		{"group with group color", Event{Category: CategoryGroup, GroupColor: "#00bcd4"}, "#00bcd4"},
		{"group without any color", Event{Category: CategoryGroup}, "#ed6c02"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveColor(tc.event); got != tc.want {
				t.Errorf("resolveColor() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNormalizeEventsExclusiveEnd(t *testing.T) {
	events := []Event{
		{
			Category: CategoryPersonal,
			Span:     &EventSpan{AllDay: true, Start: "2025-11-26T00:00:00", End: "2025-11-28T00:00:00"},
		},
		{
			Category: CategoryPersonal,
			Span:     &EventSpan{Start: "2025-11-26", End: "2025-11-28"},
		},
		{
			Category: CategoryPersonal,
			Span:     &EventSpan{Start: "2025-11-26T14:00:00", End: "2025-11-26T16:00:00"},
		},
	}

	normalized := NormalizeEvents(events)

	// All-day: end pushed forward a day
	if got := normalized[0].Span.End; got != "2025-11-29" {
		t.Errorf("all-day end = %q, want 2025-11-29", got)
	}

	// Date-only end string: same rule even without the allDay flag
	if got := normalized[1].Span.End; got != "2025-11-29" {
		t.Errorf("date-only end = %q, want 2025-11-29", got)
	}

	// Timed event keeps its end untouched
	if got := normalized[2].Span.End; got != "2025-11-26T16:00:00" {
		t.Errorf("timed end = %q, want unchanged", got)
	}

	// The originals must not be mutated; edits echo the raw values
	if events[0].Span.End != "2025-11-28T00:00:00" {
		t.Errorf("raw event mutated: end = %q", events[0].Span.End)
	}
}

func TestNormalizeEventsSingleDay(t *testing.T) {
	events := []Event{
		{Category: CategoryPersonal, Span: &EventSpan{Date: "2025-12-01"}},
	}

	normalized := NormalizeEvents(events)

	// A single-day event's effective end is its date, so the exclusive
	// rule lands it on the next day
	if got := normalized[0].Span.End; got != "2025-12-02" {
		t.Errorf("single-day end = %q, want 2025-12-02", got)
	}
	if normalized[0].Span.Date != "2025-12-01" {
		t.Errorf("date field changed to %q", normalized[0].Span.Date)
	}
}
