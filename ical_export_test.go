package main

import (
	"testing"
	"time"
)

func TestMonthEntriesTimedSpan(t *testing.T) {
	events := []Event{
		{ID: 1, Category: CategoryPersonal, Title: "Dinner",
			Span: &EventSpan{Start: "2025-11-20T18:00:00", End: "2025-11-20T20:00:00"}},
		{ID: 2, Category: CategoryPersonal, Title: "Next month",
			Span: &EventSpan{Start: "2025-12-03T09:00:00", End: "2025-12-03T10:00:00"}},
	}

	entries := monthEntries(events, day("2025-11-15"))
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Title != "Dinner" {
		t.Errorf("entry = %q", entries[0].Title)
	}
	if entries[0].AllDay {
		t.Error("timed event exported as all-day")
	}
	if entries[0].Start.Hour() != 18 || entries[0].End.Hour() != 20 {
		t.Errorf("hours = %d..%d", entries[0].Start.Hour(), entries[0].End.Hour())
	}
}

func TestMonthEntriesAllDayExclusiveEnd(t *testing.T) {
	events := []Event{
		{ID: 3, Category: CategoryPersonal, Title: "Festival",
			Span: &EventSpan{AllDay: true, Start: "2025-11-26", End: "2025-11-27"}},
	}

	entries := monthEntries(events, day("2025-11-01"))
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if !entries[0].AllDay {
		t.Error("all-day flag lost")
	}
	if got := entries[0].End.Format(dateLayout); got != "2025-11-28" {
		t.Errorf("exclusive end = %s, want 2025-11-28", got)
	}
}

func TestMonthEntriesSingleDateEvent(t *testing.T) {
	events := []Event{
		{ID: 4, Category: CategoryPersonal, Title: "Holiday",
			Span: &EventSpan{Date: "2025-11-10"}},
	}

	entries := monthEntries(events, day("2025-11-01"))
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if !entries[0].AllDay {
		t.Error("date-only event should export as all-day")
	}
	if got := entries[0].End.Format(dateLayout); got != "2025-11-11" {
		t.Errorf("exclusive end = %s, want 2025-11-11", got)
	}
}

func TestMonthEntriesWeeklyExpansion(t *testing.T) {
	// Mondays and Thursdays in November 2025, bounded to the 1st..16th
	lecture := Event{
		ID:       5,
		Category: CategoryLecture,
		Title:    "Databases",
		Weekly: &WeeklyRecurrence{
			StartRecur: "2025-11-01",
			EndRecur:   "2025-11-16",
			StartTime:  "10:30:00",
			EndTime:    "12:00:00",
			DaysOfWeek: []int{1, 4},
		},
	}

	entries := monthEntries([]Event{lecture}, day("2025-11-01"))

	// Nov 3, 6, 10, 13
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4", len(entries))
	}
	wantDates := []string{"2025-11-03", "2025-11-06", "2025-11-10", "2025-11-13"}
	for i, entry := range entries {
		if got := entry.Start.Format(dateLayout); got != wantDates[i] {
			t.Errorf("entry %d on %s, want %s", i, got, wantDates[i])
		}
		if entry.Start.Hour() != 10 || entry.Start.Minute() != 30 {
			t.Errorf("entry %d starts %s", i, entry.Start.Format("15:04"))
		}
		if entry.End.Hour() != 12 {
			t.Errorf("entry %d ends %s", i, entry.End.Format("15:04"))
		}
	}
}

func TestMonthEntriesWeeklyDefaultEnd(t *testing.T) {
	lecture := Event{
		ID:       6,
		Category: CategoryLecture,
		Title:    "Seminar",
		Weekly: &WeeklyRecurrence{
			StartRecur: "2025-11-01",
			EndRecur:   "2025-11-07",
			StartTime:  "15:00:00",
			DaysOfWeek: []int{3},
		},
	}

	entries := monthEntries([]Event{lecture}, day("2025-11-01"))
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].End.Sub(entries[0].Start) != time.Hour {
		t.Errorf("default duration = %s, want 1h", entries[0].End.Sub(entries[0].Start))
	}
}
