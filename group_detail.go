package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// openGroupDetail fetches the group and shows its overview: description,
// member count, the group's upcoming events, and the leader actions.
func (mw *MainWindow) openGroupDetail(groupID int64) {
	win := mw.rf.app.NewWindow("Group")
	loading := widget.NewLabel("Loading...")
	loading.Alignment = fyne.TextAlignCenter
	win.SetContent(container.NewPadded(loading))
	win.Resize(fyne.NewSize(480, 520))
	win.CenterOnScreen()
	win.Show()

	go func() {
		group, err := mw.rf.api.GetGroup(groupID)
		fyne.Do(func() {
			if err != nil {
				log.Printf("Error fetching group %d: %v", groupID, err)
				win.SetContent(container.NewPadded(widget.NewLabel(UserMessage(err))))
				return
			}
			win.SetContent(mw.buildGroupDetail(win, group))
		})
	}()
}

func (mw *MainWindow) buildGroupDetail(win fyne.Window, group Group) fyne.CanvasObject {
	colorBar := canvas.NewRectangle(parseHexColor(groupColorOrDefault(group)))
	colorBar.SetMinSize(fyne.NewSize(0, 6))

	nameLabel := widget.NewLabel(group.Name)
	nameLabel.TextStyle.Bold = true

	descLabel := widget.NewLabel(group.Description)
	descLabel.Wrapping = fyne.TextWrapWord
	descLabel.Importance = widget.MediumImportance

	membersButton := widget.NewButton(fmt.Sprintf("%d members", group.MemberCount), func() {
		mw.openGroupMembers(group)
	})
	membersButton.Icon = theme.AccountIcon()

	settingsButton := widget.NewButton("Settings", func() {
		win.Close()
		mw.openGroupSettings(group)
	})
	settingsButton.Icon = theme.SettingsIcon()

	header := container.NewVBox(
		colorBar,
		container.NewBorder(nil, nil, nameLabel, container.NewHBox(membersButton, settingsButton)),
		descLabel,
		widget.NewSeparator(),
	)

	// Upcoming group events, from the synced cache
	groupEvents := []Event{}
	for _, event := range mw.rf.store.Events() {
		if event.Category == CategoryGroup && event.GroupID == group.ID {
			groupEvents = append(groupEvents, event)
		}
	}

	var eventsArea fyne.CanvasObject
	if len(groupEvents) == 0 {
		empty := widget.NewLabel("No group events yet.")
		empty.Importance = widget.MediumImportance
		eventsArea = container.NewPadded(empty)
	} else {
		list := widget.NewList(
			func() int {
				return len(groupEvents)
			},
			func() fyne.CanvasObject {
				titleLabel := widget.NewLabel("Title")
				titleLabel.TextStyle.Bold = true
				whenLabel := widget.NewLabel("When")
				whenLabel.Importance = widget.MediumImportance
				return container.NewVBox(titleLabel, whenLabel)
			},
			func(i widget.ListItemID, o fyne.CanvasObject) {
				vbox := o.(*fyne.Container)
				titleLabel := vbox.Objects[0].(*widget.Label)
				whenLabel := vbox.Objects[1].(*widget.Label)

				event := groupEvents[i]
				titleLabel.SetText(event.Title)
				whenLabel.SetText(eventDateText(event))
			})
		list.OnSelected = func(id widget.ListItemID) {
			list.UnselectAll()
			mw.openEventDetail(groupEvents[id].ID)
		}
		eventsArea = list
	}

	bottom := container.NewHBox()
	if group.IsLeader() {
		addEventButton := widget.NewButton("Add Group Event", func() {
			groupCopy := group
			mw.openEventForm(formOptions{group: &groupCopy})
		})
		addEventButton.Icon = theme.ContentAddIcon()
		bottom.Add(addEventButton)
	}

	return container.NewPadded(container.NewBorder(
		header,
		container.NewPadded(bottom),
		nil,
		nil,
		eventsArea,
	))
}
