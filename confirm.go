package main

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// Confirmer serializes confirmation dialogs: at most one is outstanding at
// a time. Asking while one is pending answers the new request false
// immediately instead of stacking dialogs.
type Confirmer struct {
	mu      sync.Mutex
	pending bool
}

// begin claims the single confirmation slot. It returns false when another
// confirmation is already pending.
func (c *Confirmer) begin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending {
		return false
	}
	c.pending = true
	return true
}

func (c *Confirmer) finish() {
	c.mu.Lock()
	c.pending = false
	c.mu.Unlock()
}

// Ask shows a confirmation dialog and reports the answer to callback.
func (c *Confirmer) Ask(title, message string, parent fyne.Window, callback func(bool)) {
	if !c.begin() {
		callback(false)
		return
	}

	dialog.ShowConfirm(title, message, func(confirmed bool) {
		c.finish()
		callback(confirmed)
	}, parent)
}
