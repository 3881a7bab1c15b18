package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	xwidget "fyne.io/x/fyne/widget"
)

func (mw *MainWindow) buildCalendarTab() fyne.CanvasObject {
	mw.visibleMonth = time.Now()

	mw.calendarHolder = container.NewStack(mw.newCalendarWidget())

	legend := container.NewHBox(
		legendSwatch(lectureColor), widget.NewLabel("Lecture"),
		legendSwatch(personalColor), widget.NewLabel("Personal"),
		legendSwatch(groupFallbackColor), widget.NewLabel("Group"),
	)

	syncButton := widget.NewButton("Sync", func() {
		go mw.rf.syncAll()
	})
	syncButton.Icon = theme.ViewRefreshIcon()

	addButton := widget.NewButton("Add Event", func() {
		mw.openEventForm(formOptions{day: time.Now()})
	})
	addButton.Icon = theme.ContentAddIcon()

	exportButton := widget.NewButton("Export", func() {
		exportMonth(mw.window, mw.rf.store.Events(), mw.visibleMonth)
	})
	exportButton.Icon = theme.DownloadIcon()

	toolbar := container.NewBorder(nil, nil, legend,
		container.NewHBox(syncButton, exportButton, addButton))

	return container.NewBorder(
		container.NewPadded(toolbar),
		nil,
		nil,
		nil,
		container.NewPadded(mw.calendarHolder),
	)
}

func (mw *MainWindow) newCalendarWidget() *xwidget.Calendar {
	return xwidget.NewCalendar(mw.visibleMonth, func(day time.Time) {
		mw.visibleMonth = day
		mw.showDayDialog(day)
	})
}

// refreshCalendar rebuilds the calendar widget after a sync.
func (mw *MainWindow) refreshCalendar() {
	if mw.calendarHolder == nil {
		return
	}
	mw.calendarHolder.Objects = []fyne.CanvasObject{mw.newCalendarWidget()}
	mw.calendarHolder.Refresh()
}

func legendSwatch(colorHex string) fyne.CanvasObject {
	rect := canvas.NewRectangle(parseHexColor(colorHex))
	rect.SetMinSize(fyne.NewSize(14, 14))
	return container.NewCenter(rect)
}

// showDayDialog lists the day's events with their colors and times, with
// shortcuts to add an event on that day or open an event's detail.
// Matching runs on the raw events; the exclusive-end shift exists only for
// the rendering copy and must not widen the filter.
func (mw *MainWindow) showDayDialog(day time.Time) {
	matched := EventsOnDay(mw.rf.store.Events(), day)

	var content fyne.CanvasObject
	if len(matched) == 0 {
		empty := widget.NewLabel("No events on this day.")
		empty.Importance = widget.MediumImportance
		content = container.NewPadded(empty)
	} else {
		list := widget.NewList(
			func() int {
				return len(matched)
			},
			func() fyne.CanvasObject {
				bar := canvas.NewRectangle(nil)
				bar.SetMinSize(fyne.NewSize(6, 36))
				titleLabel := widget.NewLabel("Title")
				titleLabel.TextStyle.Bold = true
				timeLabel := widget.NewLabel("Time")
				timeLabel.Importance = widget.MediumImportance
				return container.NewBorder(nil, nil, bar, nil,
					container.NewVBox(titleLabel, timeLabel))
			},
			func(i widget.ListItemID, o fyne.CanvasObject) {
				border := o.(*fyne.Container)
				bar := border.Objects[1].(*canvas.Rectangle)
				vbox := border.Objects[0].(*fyne.Container)
				titleLabel := vbox.Objects[0].(*widget.Label)
				timeLabel := vbox.Objects[1].(*widget.Label)

				event := matched[i]
				bar.FillColor = parseHexColor(resolveColor(event))
				bar.Refresh()
				titleLabel.SetText(event.Title)
				timeLabel.SetText(eventTimeText(event))
			})

		scroll := container.NewScroll(list)
		scroll.SetMinSize(fyne.NewSize(360, 240))
		content = scroll

		list.OnSelected = func(id widget.ListItemID) {
			list.UnselectAll()
			mw.openEventDetail(matched[id].ID)
		}
	}

	dayDialog := dialog.NewCustom(day.Format("Mon, Jan 2 2006"), "Close", content, mw.window)

	// Replace the dialog's single button row with Close plus Add
	dayDialog.SetButtons([]fyne.CanvasObject{
		widget.NewButton("Close", func() {
			dayDialog.Hide()
		}),
		widget.NewButtonWithIcon("Add Event", theme.ContentAddIcon(), func() {
			dayDialog.Hide()
			mw.openEventForm(formOptions{day: day})
		}),
	})

	dayDialog.Show()
}

// eventTimeText formats the time line shown under an event title in the
// day dialog.
func eventTimeText(event Event) string {
	if event.Weekly != nil {
		return fmt.Sprintf("%s ~ %s", clockText(event.Weekly.StartTime), clockText(event.Weekly.EndTime))
	}

	if event.Span == nil {
		return ""
	}
	if event.Span.AllDay || event.Span.Date != "" {
		return "All day"
	}

	start, okStart := parseDateTime(event.Span.Start)
	end, okEnd := parseDateTime(event.Span.End)
	if okStart && okEnd {
		return fmt.Sprintf("%s ~ %s", start.Format("15:04"), end.Format("15:04"))
	}
	if okStart {
		return start.Format("15:04")
	}
	return ""
}

func clockText(value string) string {
	hour, min, ok := parseClock(value)
	if !ok {
		return value
	}
	return fmt.Sprintf("%02d:%02d", hour, min)
}
