package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type ReminderWindow struct {
	window        fyne.Window
	app           fyne.App
	reminder      *Reminder
	snoozeMinutes int
	onDismiss     func()
	onSnooze      func()

	audioPlayer *AudioPlayer
}

func NewReminderWindow(app fyne.App, reminder *Reminder, snoozeMinutes int, onDismiss, onSnooze func()) *ReminderWindow {
	rw := &ReminderWindow{
		app:           app,
		reminder:      reminder,
		snoozeMinutes: snoozeMinutes,
		onDismiss:     onDismiss,
		onSnooze:      onSnooze,
	}

	rw.audioPlayer = playReminderTone()

	// Create window and build UI on the main Fyne thread
	fyne.Do(func() {
		rw.window = app.NewWindow("Upcoming Event")
		rw.buildUI()

		// Stop sound when window is closed
		rw.window.SetOnClosed(func() {
			if rw.audioPlayer != nil {
				rw.audioPlayer.Stop()
			}
		})
	})

	return rw
}

func (rw *ReminderWindow) buildUI() {
	title := canvas.NewText(rw.reminder.Title, nil)
	title.TextSize = 24
	title.Alignment = fyne.TextAlignCenter

	timeLabel := widget.NewLabel("Starts at " + rw.reminder.StartsAt.Format("3:04 PM"))
	timeLabel.Alignment = fyne.TextAlignCenter

	content := container.NewVBox(
		container.NewPadded(title),
		timeLabel,
	)

	if rw.reminder.Location != "" {
		locationLabel := widget.NewLabel(rw.reminder.Location)
		locationLabel.Alignment = fyne.TextAlignCenter
		locationLabel.Importance = widget.MediumImportance
		content.Add(locationLabel)
	}

	content.Add(widget.NewSeparator())

	dismissButton := widget.NewButton("Dismiss", func() {
		if rw.onDismiss != nil {
			rw.onDismiss()
		}
		rw.window.Close()
	})
	dismissButton.Importance = widget.HighImportance

	buttonRow := container.NewHBox()
	if rw.snoozeMinutes > 0 {
		snoozeButton := widget.NewButton(fmt.Sprintf("Snooze %dm", rw.snoozeMinutes), func() {
			if rw.onSnooze != nil {
				rw.onSnooze()
			}
			rw.window.Close()
		})
		buttonRow.Add(snoozeButton)
	}
	buttonRow.Add(dismissButton)

	content.Add(container.NewCenter(buttonRow))

	rw.window.SetContent(container.NewPadded(content))
	rw.window.Resize(fyne.NewSize(360, 200))
	rw.window.CenterOnScreen()
	rw.window.RequestFocus()
}

func (rw *ReminderWindow) Show() {
	fyne.Do(func() {
		if rw.window != nil {
			rw.window.Show()
		}
	})
}
