package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/emersion/go-autostart"
)

// setupAutostart reconciles the OS launch-at-login entry with the wanted
// state. Idempotent; called on startup and from the settings toggle.
func setupAutostart(enable bool) error {
	execPath, err := os.Executable()
	if err != nil {
		return err
	}

	// The registered path must survive symlinked install locations
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return err
	}

	entry := &autostart.App{
		Name:        "rfcal",
		DisplayName: "RF Calendar",
		Exec:        []string{execPath},
	}

	if enable == entry.IsEnabled() {
		return nil
	}

	if enable {
		if err := entry.Enable(); err != nil {
			return err
		}
		log.Println("Autostart enabled")
	} else {
		if err := entry.Disable(); err != nil {
			return err
		}
		log.Println("Autostart disabled")
	}

	return nil
}
