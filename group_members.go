package main

import (
	"fmt"
	"log"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// openGroupMembers lists a group's members, leader first then by name.
// The leader can kick anyone but themselves.
func (mw *MainWindow) openGroupMembers(group Group) {
	win := mw.rf.app.NewWindow(group.Name + " - Members")
	win.Resize(fyne.NewSize(400, 480))
	win.CenterOnScreen()
	win.Show()

	var members []Member
	var list *widget.List

	reload := func() {
		go func() {
			fetched, err := mw.rf.api.ListMembers(group.ID)
			fyne.Do(func() {
				if err != nil {
					log.Printf("Error fetching members of group %d: %v", group.ID, err)
					win.SetContent(container.NewPadded(widget.NewLabel(UserMessage(err))))
					return
				}
				sortMembers(fetched)
				members = fetched
				list.Refresh()
			})
		}()
	}

	list = widget.NewList(
		func() int {
			return len(members)
		},
		func() fyne.CanvasObject {
			nameLabel := widget.NewLabel("Name")
			roleLabel := widget.NewLabel("Role")
			roleLabel.Importance = widget.MediumImportance
			kickButton := widget.NewButton("Kick", nil)
			kickButton.Importance = widget.DangerImportance
			return container.NewBorder(nil, nil, nil, kickButton,
				container.NewHBox(nameLabel, roleLabel))
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			border := o.(*fyne.Container)
			kickButton := border.Objects[1].(*widget.Button)
			hbox := border.Objects[0].(*fyne.Container)
			nameLabel := hbox.Objects[0].(*widget.Label)
			roleLabel := hbox.Objects[1].(*widget.Label)

			member := members[i]
			nameLabel.SetText(member.Nickname)
			if member.IsLeader() {
				roleLabel.SetText("leader")
			} else {
				roleLabel.SetText("")
			}

			// Kick is leader-only and never offered on the leader row
			if group.IsLeader() && !member.IsLeader() {
				kickButton.Show()
				kickButton.OnTapped = func() {
					mw.rf.confirm.Ask("Kick Member",
						fmt.Sprintf("Remove '%s' from the group?", member.Nickname),
						win, func(confirmed bool) {
							if !confirmed {
								return
							}
							go func() {
								if err := mw.rf.api.KickMember(group.ID, member.ID); err != nil {
									log.Printf("Error kicking member %d: %v", member.ID, err)
									fyne.Do(func() {
										showToast(win, UserMessage(err))
									})
									return
								}
								fyne.Do(func() {
									showToast(win, "Member removed")
								})
								reload()
							}()
						})
				}
			} else {
				kickButton.Hide()
			}
		})

	header := container.NewVBox(
		widget.NewLabel("Members"),
		widget.NewSeparator(),
	)

	win.SetContent(container.NewPadded(container.NewBorder(header, nil, nil, nil, list)))
	reload()
}

// sortMembers orders the leader first, everyone else alphabetically.
func sortMembers(members []Member) {
	sort.SliceStable(members, func(i, j int) bool {
		if members[i].IsLeader() != members[j].IsLeader() {
			return members[i].IsLeader()
		}
		return members[i].Nickname < members[j].Nickname
	})
}
