package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

func (mw *MainWindow) buildProfileTab() fyne.CanvasObject {
	rf := mw.rf

	// Nickname
	mw.nicknameLabel = widget.NewLabel(rf.session.Nickname)
	mw.nicknameLabel.TextStyle.Bold = true

	editNicknameButton := widget.NewButton("Edit", func() {
		mw.showEditNicknameDialog()
	})

	nicknameRow := container.NewHBox(mw.nicknameLabel, editNicknameButton)

	// Appearance
	darkModeCheck := widget.NewCheck("Dark mode", func(checked bool) {
		rf.config.DarkMode = checked
		saveConfig(rf.app, rf.config)
		applyTheme(rf.app, checked)
	})
	darkModeCheck.SetChecked(rf.config.DarkMode)

	// Reminders
	remindersCheck := widget.NewCheck("Remind me before events", func(checked bool) {
		rf.config.RemindersOn = checked
		saveConfig(rf.app, rf.config)
		go rf.syncAll()
	})
	remindersCheck.SetChecked(rf.config.RemindersOn)

	remindBeforeSelect := widget.NewSelect(
		[]string{"5 min", "10 min", "15 min", "30 min", "60 min"},
		func(value string) {
			var minutes int
			if _, err := fmt.Sscanf(value, "%d min", &minutes); err == nil {
				rf.config.RemindBefore = minutes
				saveConfig(rf.app, rf.config)
				go rf.syncAll()
			}
		})
	remindBeforeSelect.SetSelected(strconv.Itoa(rf.config.RemindBefore) + " min")

	snoozeSelect := widget.NewSelect(
		[]string{"0 min (disabled)", "3 min", "5 min", "10 min"},
		func(value string) {
			if value == "0 min (disabled)" {
				rf.config.SnoozeMinutes = 0
			} else {
				var minutes int
				if _, err := fmt.Sscanf(value, "%d min", &minutes); err == nil {
					rf.config.SnoozeMinutes = minutes
				}
			}
			saveConfig(rf.app, rf.config)
		})
	if rf.config.SnoozeMinutes == 0 {
		snoozeSelect.SetSelected("0 min (disabled)")
	} else {
		snoozeSelect.SetSelected(strconv.Itoa(rf.config.SnoozeMinutes) + " min")
	}

	// Sync
	syncIntervalSelect := widget.NewSelect(
		[]string{"5 min", "10 min", "15 min", "30 min", "60 min"},
		func(value string) {
			var minutes int
			if _, err := fmt.Sscanf(value, "%d min", &minutes); err == nil && minutes != rf.config.SyncInterval {
				rf.config.SyncInterval = minutes
				saveConfig(rf.app, rf.config)
				rf.restartBackgroundSync()
			}
		})
	syncIntervalSelect.SetSelected(strconv.Itoa(rf.config.SyncInterval) + " min")

	// System
	autoStartCheck := widget.NewCheck("Start on login", func(checked bool) {
		if err := setupAutostart(checked); err != nil {
			log.Printf("Error setting autostart: %v", err)
			showToast(mw.window, "Failed to change the autostart setting")
			return
		}
		rf.config.AutoStart = checked
		saveConfig(rf.app, rf.config)
	})
	autoStartCheck.SetChecked(rf.config.AutoStart)

	serverEntry := widget.NewEntry()
	serverEntry.SetText(rf.config.ServerURL)
	applyServerButton := widget.NewButton("Apply", func() {
		url := strings.TrimRight(strings.TrimSpace(serverEntry.Text), "/")
		if url == "" {
			showToast(mw.window, "Server URL is required")
			return
		}
		rf.config.ServerURL = url
		saveConfig(rf.app, rf.config)
		rf.api.SetBaseURL(url)
		go rf.syncAll()
		showToast(mw.window, "Server URL updated")
	})
	serverRow := container.NewBorder(nil, nil, nil, applyServerButton, serverEntry)

	logoutButton := widget.NewButton("Log Out", func() {
		rf.confirm.Ask("Log Out", "Log out of this device?", mw.window, func(confirmed bool) {
			if confirmed {
				rf.logout()
			}
		})
	})
	logoutButton.Importance = widget.DangerImportance

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Nickname:"), nicknameRow,
		widget.NewLabel("Appearance:"), darkModeCheck,
		widget.NewLabel("Reminders:"), container.NewVBox(remindersCheck,
			container.NewGridWithColumns(2, remindBeforeSelect, snoozeSelect)),
		widget.NewLabel("Sync every:"), syncIntervalSelect,
		widget.NewLabel("System:"), autoStartCheck,
		widget.NewLabel("Server:"), serverRow,
	)

	content := container.NewVBox(
		widget.NewLabel("My Page"),
		widget.NewSeparator(),
		form,
		widget.NewSeparator(),
		container.NewHBox(logoutButton),
	)

	return container.NewPadded(container.NewVScroll(content))
}

func (mw *MainWindow) showEditNicknameDialog() {
	nicknameEntry := widget.NewEntry()
	nicknameEntry.SetText(mw.rf.session.Nickname)
	nicknameEntry.Validator = func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("nickname is required")
		}
		return nil
	}

	formItems := []*widget.FormItem{
		widget.NewFormItem("Nickname", nicknameEntry),
	}

	dialog.ShowForm("Edit Nickname", "Save", "Cancel", formItems, func(confirmed bool) {
		if !confirmed {
			return
		}

		nickname := strings.TrimSpace(nicknameEntry.Text)
		go func() {
			if err := mw.rf.api.UpdateNickname(nickname); err != nil {
				log.Printf("Error updating nickname: %v", err)
				fyne.Do(func() {
					showToast(mw.window, UserMessage(err))
				})
				return
			}
			fyne.Do(func() {
				mw.rf.session.Nickname = nickname
				saveSession(mw.rf.app, mw.rf.session)
				mw.nicknameLabel.SetText(nickname)
				showToast(mw.window, "Nickname updated")
			})
		}()
	}, mw.window)
}
