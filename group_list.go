package main

import (
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

func (mw *MainWindow) buildGroupsTab() fyne.CanvasObject {
	mw.groupsData = mw.rf.store.Groups()

	mw.groupsList = widget.NewList(
		func() int {
			return len(mw.groupsData)
		},
		func() fyne.CanvasObject {
			dot := canvas.NewCircle(nil)
			nameLabel := widget.NewLabel("Name")
			nameLabel.TextStyle.Bold = true
			metaLabel := widget.NewLabel("Meta")
			metaLabel.Importance = widget.MediumImportance
			return container.NewBorder(nil, nil, container.NewCenter(dot), nil,
				container.NewVBox(nameLabel, metaLabel))
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			border := o.(*fyne.Container)
			dotHolder := border.Objects[1].(*fyne.Container)
			dot := dotHolder.Objects[0].(*canvas.Circle)
			vbox := border.Objects[0].(*fyne.Container)
			nameLabel := vbox.Objects[0].(*widget.Label)
			metaLabel := vbox.Objects[1].(*widget.Label)

			group := mw.groupsData[i]

			dot.FillColor = parseHexColor(groupColorOrDefault(group))
			dot.Resize(fyne.NewSize(16, 16))
			dot.Refresh()

			name := group.Name
			if group.IsLeader() {
				name += "  (leader)"
			}
			nameLabel.SetText(name)
			metaLabel.SetText(fmt.Sprintf("%d members", group.MemberCount))
		})

	mw.groupsList.OnSelected = func(id widget.ListItemID) {
		mw.groupsList.UnselectAll()
		if id >= 0 && id < len(mw.groupsData) {
			mw.openGroupDetail(mw.groupsData[id].ID)
		}
	}

	createButton := widget.NewButton("Create Group", func() {
		mw.showCreateGroupDialog()
	})
	createButton.Icon = theme.ContentAddIcon()

	joinButton := widget.NewButton("Join with Code", func() {
		mw.showJoinGroupDialog()
	})

	helpText := widget.NewLabel("Groups share a calendar. Create one and pass the invite code around, or join with a code you received.")
	helpText.Wrapping = fyne.TextWrapWord
	helpText.Importance = widget.MediumImportance

	header := container.NewVBox(
		widget.NewLabel("My Groups"),
		widget.NewSeparator(),
		helpText,
		container.NewHBox(createButton, joinButton),
	)

	return container.NewPadded(container.NewBorder(header, nil, nil, nil, mw.groupsList))
}

func (mw *MainWindow) refreshGroups() {
	mw.groupsData = mw.rf.store.Groups()
	if mw.groupsList != nil {
		mw.groupsList.Refresh()
	}
}

func groupColorOrDefault(group Group) string {
	if group.Color != "" {
		return group.Color
	}
	return groupFallbackColor
}

func (mw *MainWindow) showCreateGroupDialog() {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("e.g., Capstone Team")
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
	descEntry.SetPlaceHolder("What is this group for?")
	descEntry.SetMinRowsVisible(3)

	formItems := []*widget.FormItem{
		widget.NewFormItem("Name", nameEntry),
		widget.NewFormItem("Description", descEntry),
	}

	createDialog := dialog.NewForm("Create Group", "Create", "Cancel", formItems, func(confirmed bool) {
		if !confirmed {
			return
		}

		go func() {
			if err := mw.rf.api.CreateGroup(nameEntry.Text, descEntry.Text); err != nil {
				log.Printf("Error creating group: %v", err)
				fyne.Do(func() {
					showToast(mw.window, UserMessage(err))
				})
				return
			}
			fyne.Do(func() {
				showToast(mw.window, "Group created")
			})
			mw.rf.syncAll()
		}()
	}, mw.window)

	createDialog.Resize(fyne.NewSize(420, 280))
	createDialog.Show()
}

func (mw *MainWindow) showJoinGroupDialog() {
	codeEntry := widget.NewEntry()
	codeEntry.SetPlaceHolder("Invite code")
	codeEntry.Validator = func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("invite code is required")
		}
		return nil
	}

	formItems := []*widget.FormItem{
		widget.NewFormItem("Code", codeEntry),
	}

	dialog.ShowForm("Join Group", "Join", "Cancel", formItems, func(confirmed bool) {
		if !confirmed {
			return
		}

		code := strings.TrimSpace(codeEntry.Text)
		go func() {
			if err := mw.rf.api.JoinGroup(code); err != nil {
				log.Printf("Error joining group: %v", err)
				fyne.Do(func() {
					showToast(mw.window, UserMessage(err))
				})
				return
			}
			fyne.Do(func() {
				showToast(mw.window, "Joined group")
			})
			mw.rf.syncAll()
		}()
	}, mw.window)
}
