package main

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type MainWindow struct {
	window fyne.Window
	rf     *RFCal

	// Calendar tab
	calendarHolder *fyne.Container
	visibleMonth   time.Time

	// Groups tab
	groupsList *widget.List
	groupsData []Group

	// My Page tab
	nicknameLabel *widget.Label
}

func NewMainWindow(rf *RFCal) *MainWindow {
	mw := &MainWindow{
		rf: rf,
	}

	mw.window = rf.app.NewWindow("RF Calendar")
	mw.buildUI()

	return mw
}

func (mw *MainWindow) buildUI() {
	tabs := container.NewAppTabs(
		container.NewTabItem("Calendar", mw.buildCalendarTab()),
		container.NewTabItem("Groups", mw.buildGroupsTab()),
		container.NewTabItem("My Page", mw.buildProfileTab()),
	)
	tabs.SetTabLocation(container.TabLocationTop)

	mw.window.SetContent(tabs)
	mw.window.Resize(fyne.NewSize(900, 700))
	mw.window.CenterOnScreen()

	// Closing hides the window; the tray keeps the app alive
	mw.window.SetCloseIntercept(func() {
		mw.window.Hide()
	})
}

func (mw *MainWindow) Show() {
	mw.window.Show()
}

// refreshAll repaints everything that renders synced data. Must run on the
// Fyne thread.
func (mw *MainWindow) refreshAll() {
	mw.refreshCalendar()
	mw.refreshGroups()
}
