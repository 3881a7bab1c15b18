package main

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"github.com/emersion/go-ical"
)

// icsEntry is one concrete calendar entry ready for export. Weekly
// lectures are expanded into one entry per occurrence before this point.
type icsEntry struct {
	UID      string
	Title    string
	Location string
	AllDay   bool
	Start    time.Time
	End      time.Time
}

// monthEntries flattens the loaded events into export entries for the
// month containing the given time.
func monthEntries(events []Event, month time.Time) []icsEntry {
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	entries := []icsEntry{}

	for _, event := range events {
		if event.Span != nil {
			entry, ok := spanEntry(event, monthStart, monthEnd)
			if ok {
				entries = append(entries, entry)
			}
			continue
		}

		if event.Weekly != nil {
			entries = append(entries, weeklyEntries(event, monthStart, monthEnd)...)
		}
	}

	return entries
}

func spanEntry(event Event, monthStart, monthEnd time.Time) (icsEntry, bool) {
	span := event.Span

	start, ok := parseDateTime(span.StartRaw())
	if !ok {
		return icsEntry{}, false
	}

	end := start
	if e, ok := parseDateTime(span.EndRaw()); ok {
		end = e
	}

	allDay := span.AllDay || len(span.EndRaw()) <= 10
	if allDay {
		// ICS all-day ends are exclusive, same convention as the
		// calendar display
		start = dayStart(start)
		end = dayStart(end).AddDate(0, 0, 1)
	}

	// Keep entries that overlap the month
	if end.Before(monthStart) || !start.Before(monthEnd) {
		return icsEntry{}, false
	}

	return icsEntry{
		UID:      fmt.Sprintf("%d-%s@rfcal", event.ID, start.Format("20060102")),
		Title:    event.Title,
		Location: event.Location,
		AllDay:   allDay,
		Start:    start,
		End:      end,
	}, true
}

func weeklyEntries(event Event, monthStart, monthEnd time.Time) []icsEntry {
	weekly := event.Weekly

	startHour, startMin, ok := parseClock(weekly.StartTime)
	if !ok {
		return nil
	}
	endHour, endMin, ok := parseClock(weekly.EndTime)
	if !ok {
		endHour, endMin = startHour+1, startMin
	}

	from := monthStart
	if recurFrom, ok := parseDate(weekly.StartRecur); ok && recurFrom.After(from) {
		from = recurFrom
	}
	until := monthEnd
	if recurUntil, ok := parseDate(weekly.EndRecur); ok && recurUntil.AddDate(0, 0, 1).Before(until) {
		until = recurUntil.AddDate(0, 0, 1)
	}

	selected := make(map[int]bool)
	for _, d := range weekly.DaysOfWeek {
		selected[d] = true
	}

	entries := []icsEntry{}
	for day := from; day.Before(until); day = day.AddDate(0, 0, 1) {
		if !selected[int(day.Weekday())] {
			continue
		}
		start := day.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute)
		end := day.Add(time.Duration(endHour)*time.Hour + time.Duration(endMin)*time.Minute)
		entries = append(entries, icsEntry{
			UID:      fmt.Sprintf("%d-%s@rfcal", event.ID, day.Format("20060102")),
			Title:    event.Title,
			Location: event.Location,
			Start:    start,
			End:      end,
		})
	}
	return entries
}

// buildCalendar encodes the entries as a VCALENDAR.
func buildCalendar(entries []icsEntry) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//rfcal//rfcal//EN")

	now := time.Now()

	for _, entry := range entries {
		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, entry.UID)
		event.Props.SetDateTime(ical.PropDateTimeStamp, now)
		event.Props.SetText(ical.PropSummary, entry.Title)
		if entry.Location != "" {
			event.Props.SetText(ical.PropLocation, entry.Location)
		}

		if entry.AllDay {
			setDateProp(event, ical.PropDateTimeStart, entry.Start)
			setDateProp(event, ical.PropDateTimeEnd, entry.End)
		} else {
			event.Props.SetDateTime(ical.PropDateTimeStart, entry.Start)
			event.Props.SetDateTime(ical.PropDateTimeEnd, entry.End)
		}

		cal.Children = append(cal.Children, event.Component)
	}

	return cal
}

func setDateProp(event *ical.Event, name string, t time.Time) {
	prop := ical.NewProp(name)
	prop.SetValueType(ical.ValueDate)
	prop.Value = t.Format("20060102")
	event.Props.Set(prop)
}

// exportMonth writes the visible month's events to an .ics file picked by
// the user.
func exportMonth(win fyne.Window, events []Event, month time.Time) {
	entries := monthEntries(events, month)
	if len(entries) == 0 {
		showToast(win, "No events to export for "+month.Format("January 2006"))
		return
	}

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		if err := ical.NewEncoder(writer).Encode(buildCalendar(entries)); err != nil {
			log.Printf("Failed to encode calendar export: %v", err)
			dialog.ShowError(err, win)
			return
		}

		showToast(win, fmt.Sprintf("Exported %d events", len(entries)))
	}, win)
	saveDialog.SetFileName(month.Format("2006-01") + ".ics")
	saveDialog.Show()
}
