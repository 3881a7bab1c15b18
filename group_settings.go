package main

import (
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// openGroupSettings shows the group settings window. Every member can pick
// the color the group's events get on their calendar; renaming, the invite
// code, and deletion are leader territory. Members get a leave button
// instead.
func (mw *MainWindow) openGroupSettings(group Group) {
	win := mw.rf.app.NewWindow(group.Name + " - Settings")
	win.Resize(fyne.NewSize(460, 520))
	win.CenterOnScreen()

	selectedColor := groupColorOrDefault(group)
	paletteRow := NewColorPaletteRow(selectedColor, func(colorHex string) {
		selectedColor = colorHex
	})

	nameEntry := widget.NewEntry()
	nameEntry.SetText(group.Name)
	nameEntry.Validator = func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("name is required")
		}
		if len([]rune(s)) > 20 {
			return fmt.Errorf("name must be 20 characters or less")
		}
		return nil
	}

	descEntry := widget.NewMultiLineEntry()
	descEntry.SetText(group.Description)
	descEntry.SetMinRowsVisible(3)

	if !group.IsLeader() {
		nameEntry.Disable()
		descEntry.Disable()
	}

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Name:"), nameEntry,
		widget.NewLabel("Description:"), descEntry,
		widget.NewLabel("Color:"), paletteRow,
	)

	content := container.NewVBox(
		widget.NewLabel("Group Settings"),
		widget.NewSeparator(),
		form,
	)

	// Invite code, leader only, click to copy
	if group.IsLeader() && group.InviteCode != "" {
		codeEntry := widget.NewEntry()
		codeEntry.SetText(group.InviteCode)
		codeEntry.Disable()

		copyButton := widget.NewButton("Copy", func() {
			win.Clipboard().SetContent(group.InviteCode)
			showToast(win, "Invite code copied")
		})
		copyButton.Icon = theme.ContentCopyIcon()

		content.Add(widget.NewSeparator())
		content.Add(widget.NewLabel("Invite Code:"))
		content.Add(container.NewBorder(nil, nil, nil, copyButton, codeEntry))
	}

	var saveButton *widget.Button
	saveButton = widget.NewButton("Save", func() {
		if group.IsLeader() {
			if err := nameEntry.Validate(); err != nil {
				showToast(win, err.Error())
				return
			}
		}

		saveButton.Disable()
		go func() {
			// Color is per-member and always saved; name and
			// description only go out for the leader
			err := mw.rf.api.SetGroupColor(group.ID, selectedColor)
			if err == nil && group.IsLeader() {
				err = mw.rf.api.UpdateGroup(group.ID, nameEntry.Text, descEntry.Text)
			}

			fyne.Do(func() {
				saveButton.Enable()
				if err != nil {
					log.Printf("Error saving group %d settings: %v", group.ID, err)
					showToast(win, UserMessage(err))
					return
				}
				showToast(win, "Settings saved")
			})
			if err == nil {
				mw.rf.syncAll()
			}
		}()
	})
	saveButton.Importance = widget.HighImportance

	var dangerButton *widget.Button
	if group.IsLeader() {
		dangerButton = widget.NewButton("Delete Group", func() {
			mw.rf.confirm.Ask("Delete Group",
				fmt.Sprintf("Delete '%s' and all its events? This cannot be undone.", group.Name),
				win, func(confirmed bool) {
					if !confirmed {
						return
					}
					go func() {
						if err := mw.rf.api.DeleteGroup(group.ID); err != nil {
							log.Printf("Error deleting group %d: %v", group.ID, err)
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
	} else {
		dangerButton = widget.NewButton("Leave Group", func() {
			mw.rf.confirm.Ask("Leave Group",
				fmt.Sprintf("Leave '%s'?", group.Name),
				win, func(confirmed bool) {
					if !confirmed {
						return
					}
					go func() {
						if err := mw.rf.api.LeaveGroup(group.ID); err != nil {
							log.Printf("Error leaving group %d: %v", group.ID, err)
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
	}
	dangerButton.Importance = widget.DangerImportance

	buttonRow := container.NewBorder(nil, nil, dangerButton, saveButton)

	win.SetContent(container.NewPadded(container.NewBorder(
		nil,
		container.NewPadded(buttonRow),
		nil,
		nil,
		container.NewVScroll(content),
	)))
	win.Show()
}
