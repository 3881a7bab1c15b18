package main

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

type RFCal struct {
	app     fyne.App
	config  *Config
	session *Session
	api     *APIClient
	store   *EventStore
	confirm *Confirmer

	mainWindow  *MainWindow
	loginWindow *LoginWindow

	syncTicker     *time.Ticker
	reminderTicker *time.Ticker
}

func main() {
	rf := &RFCal{
		app:     app.NewWithID("com.rfcal.app"),
		store:   NewEventStore(),
		confirm: &Confirmer{},
	}

	if err := rf.initialize(); err != nil {
		log.Fatal(err)
	}

	rf.app.Run()
}

func (rf *RFCal) initialize() error {
	rf.config = loadConfig(rf.app)
	applyTheme(rf.app, rf.config.DarkMode)

	// Sync autostart state with config on startup
	if err := setupAutostart(rf.config.AutoStart); err != nil {
		log.Printf("Warning: failed to setup autostart: %v", err)
	}

	saveConfig(rf.app, rf.config)

	rf.session = loadSession(rf.app)
	rf.api = NewAPIClient(rf.config.ServerURL)
	rf.api.SetToken(rf.session.Token)

	rf.setupSystemTray()

	if rf.session.Valid() {
		rf.enterApp()
	} else {
		rf.showLoginWindow()
	}

	return nil
}

// enterApp opens the main window and starts the background loops. Called
// on startup with a stored session and again after a fresh login.
func (rf *RFCal) enterApp() {
	rf.showMainWindow()
	rf.startBackgroundSync()
	rf.startReminderChecker()
}

func (rf *RFCal) showMainWindow() {
	if rf.mainWindow != nil {
		rf.mainWindow.window.RequestFocus()
		rf.mainWindow.window.Show()
		return
	}

	rf.mainWindow = NewMainWindow(rf)
	rf.mainWindow.Show()
}

func (rf *RFCal) showLoginWindow() {
	if rf.loginWindow != nil {
		rf.loginWindow.window.RequestFocus()
		rf.loginWindow.window.Show()
		return
	}

	rf.loginWindow = NewLoginWindow(rf.app, rf.api, func(result LoginResult) {
		rf.session = &Session{Token: result.Token, Nickname: result.Nickname}
		saveSession(rf.app, rf.session)
		rf.api.SetToken(rf.session.Token)

		rf.loginWindow.window.Close()
		rf.loginWindow = nil

		rf.enterApp()
	})
	rf.loginWindow.Show()
}

// logout clears the stored session and returns to the login window.
func (rf *RFCal) logout() {
	clearSession(rf.app)
	rf.session = &Session{}
	rf.api.SetToken("")

	rf.stopTickers()
	rf.store.SetEvents(nil, rf.config.RemindBefore)
	rf.store.SetGroups(nil)

	if rf.mainWindow != nil {
		rf.mainWindow.window.Close()
		rf.mainWindow = nil
	}

	rf.showLoginWindow()
}

// syncAll refetches schedules and groups and refreshes every view that
// renders them.
func (rf *RFCal) syncAll() {
	if !rf.session.Valid() {
		return
	}

	events, err := rf.api.ListSchedules()
	if err != nil {
		log.Printf("Error syncing schedules: %v", err)
		return
	}

	groups, err := rf.api.ListGroups()
	if err != nil {
		log.Printf("Error syncing groups: %v", err)
		groups = rf.store.Groups()
	}

	remindBefore := 0
	if rf.config.RemindersOn {
		remindBefore = rf.config.RemindBefore
	}
	rf.store.SetEvents(events, remindBefore)
	rf.store.SetGroups(groups)
	log.Printf("Synced %d schedules and %d groups", len(events), len(groups))

	if rf.mainWindow != nil {
		fyne.Do(func() {
			if rf.mainWindow != nil {
				rf.mainWindow.refreshAll()
			}
		})
	}

	rf.updateSystemTrayMenu()
}

func (rf *RFCal) startBackgroundSync() {
	// Kick off an immediate sync so the calendar is not empty on open
	go rf.syncAll()

	rf.syncTicker = time.NewTicker(time.Duration(rf.config.SyncInterval) * time.Minute)
	go func() {
		for range rf.syncTicker.C {
			rf.syncAll()
		}
	}()
}

func (rf *RFCal) restartBackgroundSync() {
	if rf.syncTicker != nil {
		rf.syncTicker.Stop()
	}
	rf.startBackgroundSync()
}

func (rf *RFCal) startReminderChecker() {
	rf.reminderTicker = time.NewTicker(1 * time.Minute)
	go func() {
		for range rf.reminderTicker.C {
			rf.checkReminders()
		}
	}()
}

func (rf *RFCal) checkReminders() {
	if !rf.config.RemindersOn {
		return
	}

	for _, reminder := range rf.store.DueReminders(time.Now()) {
		rf.showReminder(reminder)
	}
}

func (rf *RFCal) showReminder(reminder *Reminder) {
	reminderWindow := NewReminderWindow(
		rf.app,
		reminder,
		rf.config.SnoozeMinutes,
		func() {
			log.Printf("Reminder dismissed: %s", reminder.Title)
		},
		func() {
			rf.store.Snooze(reminder.ID, rf.config.SnoozeMinutes)
			log.Printf("Reminder snoozed: %s for %d minutes", reminder.Title, rf.config.SnoozeMinutes)
		},
	)
	reminderWindow.Show()
}

func (rf *RFCal) stopTickers() {
	if rf.syncTicker != nil {
		rf.syncTicker.Stop()
		rf.syncTicker = nil
	}
	if rf.reminderTicker != nil {
		rf.reminderTicker.Stop()
		rf.reminderTicker = nil
	}
}

func (rf *RFCal) quit() {
	rf.stopTickers()
	rf.app.Quit()
}
