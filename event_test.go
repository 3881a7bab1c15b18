package main

import (
	"testing"
)

func TestDecodeEventLecture(t *testing.T) {
	row := scheduleJSON{
		ID:         3,
		Category:   "lecture",
		Title:      "Operating Systems",
		Location:   "B-201",
		StartRecur: "2025-09-01",
		EndRecur:   "2025-12-21",
		StartTime:  "10:30:00",
		EndTime:    "12:00:00",
		DaysOfWeek: []int{2, 4},
	}

	event := decodeEvent(row)

	if event.Weekly == nil {
		t.Fatal("lecture should decode into the weekly variant")
	}
	if event.Span != nil {
		t.Error("lecture should not carry a span")
	}
	if event.Weekly.StartTime != "10:30:00" {
		t.Errorf("start time = %q", event.Weekly.StartTime)
	}
	if len(event.Weekly.DaysOfWeek) != 2 {
		t.Errorf("daysOfWeek = %v", event.Weekly.DaysOfWeek)
	}
}

func TestDecodeEventSpan(t *testing.T) {
	row := scheduleJSON{
		ID:       7,
		Category: "personal",
		Title:    "Dentist",
		Start:    "2025-11-26T14:00:00",
		End:      "2025-11-26T15:00:00",
	}

	event := decodeEvent(row)

	if event.Span == nil {
		t.Fatal("personal event should decode into the span variant")
	}
	if event.Weekly != nil {
		t.Error("personal event should not carry a recurrence")
	}
}

func TestDecodeEventInert(t *testing.T) {
	event := decodeEvent(scheduleJSON{ID: 9, Category: "personal", Title: "Broken"})

	if event.Span != nil || event.Weekly != nil {
		t.Error("row without date fields should decode with no variant")
	}
}

func TestSpanRawAliases(t *testing.T) {
	// Rows that use `date` instead of `start`, and rows without `end`,
	// hydrate through the alias fallbacks
	span := &EventSpan{Date: "2025-12-01"}
	if span.StartRaw() != "2025-12-01" {
		t.Errorf("StartRaw = %q, want the date field", span.StartRaw())
	}
	if span.EndRaw() != "2025-12-01" {
		t.Errorf("EndRaw = %q, want the date field", span.EndRaw())
	}

	span = &EventSpan{Start: "2025-12-01T10:00:00", End: "2025-12-01T11:00:00"}
	if span.StartRaw() != "2025-12-01T10:00:00" {
		t.Errorf("StartRaw = %q, want the start field", span.StartRaw())
	}
	if span.EndRaw() != "2025-12-01T11:00:00" {
		t.Errorf("EndRaw = %q, want the end field", span.EndRaw())
	}
}

func TestParseClock(t *testing.T) {
	hour, min, ok := parseClock("10:30:00")
	if !ok || hour != 10 || min != 30 {
		t.Errorf("parseClock(10:30:00) = %d:%d, %v", hour, min, ok)
	}

	hour, min, ok = parseClock("09:05")
	if !ok || hour != 9 || min != 5 {
		t.Errorf("parseClock(09:05) = %d:%d, %v", hour, min, ok)
	}

	if _, _, ok := parseClock("not a time"); ok {
		t.Error("parseClock should reject garbage")
	}
}

func TestParseDateTimeFallsBackToDate(t *testing.T) {
	got, ok := parseDateTime("2025-11-26")
	if !ok {
		t.Fatal("bare date should parse")
	}
	if got.Hour() != 0 || got.Day() != 26 {
		t.Errorf("parsed = %s", got.Format("2006-01-02 15:04"))
	}
}
