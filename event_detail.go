package main

import (
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// openEventDetail fetches the schedule fresh and shows it in its own
// window. The list copy can be stale; the detail never is.
func (mw *MainWindow) openEventDetail(scheduleID int64) {
	win := mw.rf.app.NewWindow("Event")
	loading := widget.NewLabel("Loading...")
	loading.Alignment = fyne.TextAlignCenter
	win.SetContent(container.NewPadded(loading))
	win.Resize(fyne.NewSize(420, 380))
	win.CenterOnScreen()
	win.Show()

	go func() {
		event, err := mw.rf.api.GetSchedule(scheduleID)
		fyne.Do(func() {
			if err != nil {
				log.Printf("Error fetching schedule %d: %v", scheduleID, err)
				win.SetContent(container.NewPadded(widget.NewLabel(UserMessage(err))))
				return
			}
			win.SetContent(mw.buildEventDetail(win, event))
		})
	}()
}

func (mw *MainWindow) buildEventDetail(win fyne.Window, event Event) fyne.CanvasObject {
	colorBar := canvas.NewRectangle(parseHexColor(resolveColor(event)))
	colorBar.SetMinSize(fyne.NewSize(0, 6))

	title := widget.NewLabel(event.Title)
	title.TextStyle.Bold = true
	title.Wrapping = fyne.TextWrapWord

	info := container.NewVBox(colorBar, title)

	whenLabel := widget.NewLabel(eventDateText(event))
	whenLabel.Wrapping = fyne.TextWrapWord
	info.Add(whenLabel)

	if event.Category == CategoryGroup && event.GroupName != "" {
		groupLabel := widget.NewLabel("Group: " + event.GroupName)
		groupLabel.Importance = widget.MediumImportance
		info.Add(groupLabel)
	}

	if event.Location != "" {
		info.Add(widget.NewLabel("Place: " + event.Location))
	}

	if event.Description != "" {
		info.Add(widget.NewSeparator())
		desc := widget.NewLabel(event.Description)
		desc.Wrapping = fyne.TextWrapWord
		info.Add(desc)
	}

	buttonRow := container.NewHBox()
	if mw.canEditEvent(event) {
		editButton := widget.NewButton("Edit", func() {
			win.Close()
			eventCopy := event
			mw.openEventForm(formOptions{event: &eventCopy})
		})

		deleteButton := widget.NewButton("Delete", func() {
			mw.rf.confirm.Ask("Delete Event",
				fmt.Sprintf("Delete '%s'? This cannot be undone.", event.Title),
				win, func(confirmed bool) {
					if !confirmed {
						return
					}
					go func() {
						if err := mw.rf.api.DeleteSchedule(event.ID); err != nil {
							log.Printf("Error deleting schedule %d: %v", event.ID, err)
							fyne.Do(func() {
								showToast(win, UserMessage(err))
							})
							return
						}
						fyne.Do(func() {
							win.Close()
						})
						mw.rf.syncAll()
					}()
				})
		})
		deleteButton.Importance = widget.DangerImportance

		buttonRow.Add(editButton)
		buttonRow.Add(deleteButton)
	}

	return container.NewBorder(
		nil,
		container.NewPadded(container.NewCenter(buttonRow)),
		nil,
		nil,
		container.NewPadded(container.NewVScroll(info)),
	)
}

// canEditEvent reports whether the edit and delete buttons appear. Group
// events are editable by the group leader only.
func (mw *MainWindow) canEditEvent(event Event) bool {
	if event.Category != CategoryGroup {
		return true
	}
	for _, group := range mw.rf.store.Groups() {
		if group.ID == event.GroupID {
			return group.IsLeader()
		}
	}
	return false
}

// eventDateText formats the full date line on the detail view.
func eventDateText(event Event) string {
	if event.Weekly != nil {
		days := []string{}
		for _, d := range event.Weekly.DaysOfWeek {
			if d >= 0 && d < 7 {
				days = append(days, weekdayLabels[d])
			}
		}
		return fmt.Sprintf("Every %s, %s ~ %s (%s to %s)",
			strings.Join(days, "/"),
			clockText(event.Weekly.StartTime), clockText(event.Weekly.EndTime),
			event.Weekly.StartRecur, event.Weekly.EndRecur)
	}

	if event.Span == nil {
		return ""
	}

	if event.Span.AllDay || event.Span.Date != "" {
		start, okStart := parseDateTime(event.Span.StartRaw())
		end, okEnd := parseDateTime(event.Span.EndRaw())
		if !okStart {
			return ""
		}
		if okEnd && !end.Equal(start) {
			return fmt.Sprintf("%s ~ %s (all day)", start.Format("Jan 2, 2006"), end.Format("Jan 2, 2006"))
		}
		return start.Format("Jan 2, 2006") + " (all day)"
	}

	start, okStart := parseDateTime(event.Span.Start)
	end, okEnd := parseDateTime(event.Span.End)
	if !okStart {
		return ""
	}
	if okEnd {
		if dayStart(start).Equal(dayStart(end)) {
			return fmt.Sprintf("%s, %s ~ %s",
				start.Format("Jan 2, 2006"), start.Format("15:04"), end.Format("15:04"))
		}
		return fmt.Sprintf("%s ~ %s",
			start.Format("Jan 2, 2006 15:04"), end.Format("Jan 2, 2006 15:04"))
	}
	return start.Format("Jan 2, 2006 15:04")
}
