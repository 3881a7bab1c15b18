package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
)

func newTestForm(t *testing.T, rf *RFCal, opts formOptions) *EventFormWindow {
	t.Helper()
	a := test.NewApp()

	form := &EventFormWindow{rf: rf, opts: opts}
	form.window = a.NewWindow("test")
	form.buildUI()
	return form
}

func TestLectureSubmitRequiresWeekday(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	form := newTestForm(t, &RFCal{api: NewAPIClient(server.URL)}, formOptions{})
	form.titleEntry.SetText("Algorithms")
	form.categorySelect.SetSelected("Lecture")

	// No weekday is ticked; the rejection happens before any request
	_, err := form.lecturePayload()
	if err == nil {
		t.Fatal("expected a validation error for an empty weekday set")
	}
	if !strings.Contains(err.Error(), "day of the week") {
		t.Errorf("error = %q", err)
	}

	form.submit()
	if requests != 0 {
		t.Errorf("submit reached the server %d times, want 0", requests)
	}
}

func TestSpanHydrateRoundTrip(t *testing.T) {
	event := Event{
		ID:       7,
		Category: CategoryPersonal,
		Title:    "Dentist",
		Location: "Clinic",
		Span: &EventSpan{
			Start: "2025-11-26T14:00:00",
			End:   "2025-11-26T15:30:00",
		},
	}

	form := newTestForm(t, nil, formOptions{event: &event})

	if form.startDateEntry.Text != "2025-11-26" || form.startTimeEntry.Text != "14:00" {
		t.Errorf("hydrated start = %s %s", form.startDateEntry.Text, form.startTimeEntry.Text)
	}
	if form.endDateEntry.Text != "2025-11-26" || form.endTimeEntry.Text != "15:30" {
		t.Errorf("hydrated end = %s %s", form.endDateEntry.Text, form.endTimeEntry.Text)
	}

	payload, err := form.spanPayload()
	if err != nil {
		t.Fatalf("spanPayload: %v", err)
	}
	if payload.Start != event.Span.Start || payload.End != event.Span.End {
		t.Errorf("round trip = %s / %s", payload.Start, payload.End)
	}
	if payload.AllDay == nil || *payload.AllDay {
		t.Error("timed span should submit allDay=false")
	}
}

func TestSpanCascades(t *testing.T) {
	form := newTestForm(t, nil, formOptions{})

	// Start time resets the end to one hour later
	form.startTimeEntry.SetText("14:00")
	if form.endTimeEntry.Text != "15:00" {
		t.Errorf("end time after start-time edit = %s, want 15:00", form.endTimeEntry.Text)
	}

	// Start date drags the end date along, clock untouched
	form.endTimeEntry.SetText("18:30")
	form.startDateEntry.SetText("2025-05-10")
	if form.endDateEntry.Text != "2025-05-10" {
		t.Errorf("end date after start-date edit = %s, want 2025-05-10", form.endDateEntry.Text)
	}
	if form.endTimeEntry.Text != "18:30" {
		t.Errorf("end clock changed to %s", form.endTimeEntry.Text)
	}
}

func TestSpanHydrateDateAlias(t *testing.T) {
	// Single-date rows carry the date under "date" with start and end empty
	event := Event{
		ID:       8,
		Category: CategoryPersonal,
		Title:    "Holiday",
		Span:     &EventSpan{AllDay: true, Date: "2025-11-26"},
	}

	form := newTestForm(t, nil, formOptions{event: &event})

	if form.startDateEntry.Text != "2025-11-26" || form.endDateEntry.Text != "2025-11-26" {
		t.Errorf("alias hydration = %s / %s", form.startDateEntry.Text, form.endDateEntry.Text)
	}
	if !form.allDayCheck.Checked {
		t.Error("all-day flag not hydrated")
	}

	payload, err := form.spanPayload()
	if err != nil {
		t.Fatalf("spanPayload: %v", err)
	}
	if payload.AllDay == nil || !*payload.AllDay {
		t.Error("all-day span should submit allDay=true")
	}
	if payload.Start != "2025-11-26T00:00:00" {
		t.Errorf("start = %s", payload.Start)
	}
}
