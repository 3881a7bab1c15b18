package main

import (
	"fyne.io/fyne/v2"
)

type Config struct {
	ServerURL     string `json:"server_url"`
	DarkMode      bool   `json:"dark_mode"`
	AutoStart     bool   `json:"auto_start"`
	SyncInterval  int    `json:"sync_interval"`
	RemindersOn   bool   `json:"reminders_on"`
	RemindBefore  int    `json:"remind_before"`
	SnoozeMinutes int    `json:"snooze_minutes"`
}

func loadConfig(app fyne.App) *Config {
	prefs := app.Preferences()

	return &Config{
		ServerURL:     prefs.StringWithFallback("server_url", "http://localhost:8080"),
		DarkMode:      prefs.BoolWithFallback("dark_mode", true),
		AutoStart:     prefs.BoolWithFallback("auto_start", false),
		SyncInterval:  prefs.IntWithFallback("sync_interval", 10),
		RemindersOn:   prefs.BoolWithFallback("reminders_on", true),
		RemindBefore:  prefs.IntWithFallback("remind_before", 10),
		SnoozeMinutes: prefs.IntWithFallback("snooze_minutes", 5),
	}
}

func saveConfig(app fyne.App, config *Config) {
	prefs := app.Preferences()

	prefs.SetString("server_url", config.ServerURL)
	prefs.SetBool("dark_mode", config.DarkMode)
	prefs.SetBool("auto_start", config.AutoStart)
	prefs.SetInt("sync_interval", config.SyncInterval)
	prefs.SetBool("reminders_on", config.RemindersOn)
	prefs.SetInt("remind_before", config.RemindBefore)
	prefs.SetInt("snooze_minutes", config.SnoozeMinutes)
}
