package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var weekdayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// formOptions selects the mode of the event form window.
type formOptions struct {
	day     time.Time // default start date for new events
	event   *Event    // non-nil switches the form into edit mode
	group   *Group    // non-nil pins the category to group
	onSaved func()
}

type EventFormWindow struct {
	window fyne.Window
	rf     *RFCal
	opts   formOptions

	categorySelect *widget.Select
	titleEntry     *widget.Entry
	descEntry      *widget.Entry

	// personal/group fields
	placeEntry     *widget.Entry
	allDayCheck    *widget.Check
	startDateEntry *widget.Entry
	startTimeEntry *widget.Entry
	endDateEntry   *widget.Entry
	endTimeEntry   *widget.Entry

	// lecture fields
	roomEntry        *widget.Entry
	weekdayChecks    [7]*widget.Check
	semStartEntry    *widget.Entry
	semEndEntry      *widget.Entry
	lectureStartTime *widget.Entry
	lectureEndTime   *widget.Entry

	fieldsHolder *fyne.Container
	spanForm     fyne.CanvasObject
	lectureForm  fyne.CanvasObject
	submitButton *widget.Button

	// hydrating suppresses the editor cascades while the form is being
	// filled programmatically
	hydrating bool
}

func (mw *MainWindow) openEventForm(opts formOptions) {
	form := &EventFormWindow{
		rf:   mw.rf,
		opts: opts,
	}

	title := "Add Event"
	if opts.event != nil {
		title = "Edit Event"
	}
	form.window = mw.rf.app.NewWindow(title)
	form.buildUI()
	form.window.Show()
}

func (f *EventFormWindow) buildUI() {
	f.titleEntry = widget.NewEntry()
	f.titleEntry.SetPlaceHolder("Title")
	f.titleEntry.Validator = func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("title is required")
		}
		if len([]rune(s)) > 20 {
			return fmt.Errorf("title must be 20 characters or less")
		}
		return nil
	}

	f.descEntry = widget.NewMultiLineEntry()
	f.descEntry.SetPlaceHolder("Description (optional)")
	f.descEntry.SetMinRowsVisible(3)

	f.buildSpanFields()
	f.buildLectureFields()

	categories := []string{"Personal", "Lecture"}
	if f.opts.group != nil || (f.opts.event != nil && f.opts.event.Category == CategoryGroup) {
		categories = []string{"Group"}
	}
	f.categorySelect = widget.NewSelect(categories, func(value string) {
		f.showFieldsFor(value)
	})

	f.fieldsHolder = container.NewStack()

	f.submitButton = widget.NewButton("Save", func() {
		f.submit()
	})
	f.submitButton.Importance = widget.HighImportance

	cancelButton := widget.NewButton("Cancel", func() {
		f.window.Close()
	})

	header := container.New(layout.NewFormLayout(),
		widget.NewLabel("Category:"), f.categorySelect,
		widget.NewLabel("Title:"), f.titleEntry,
		widget.NewLabel("Description:"), f.descEntry,
	)

	buttonRow := container.NewBorder(nil, nil, nil,
		container.NewHBox(cancelButton, f.submitButton))

	content := container.NewBorder(
		header,
		container.NewPadded(buttonRow),
		nil,
		nil,
		container.NewPadded(container.NewVScroll(f.fieldsHolder)),
	)

	f.window.SetContent(content)
	f.window.Resize(fyne.NewSize(520, 620))
	f.window.CenterOnScreen()

	f.hydrate()
}

func (f *EventFormWindow) buildSpanFields() {
	f.placeEntry = widget.NewEntry()
	f.placeEntry.SetPlaceHolder("Place (optional)")
	f.placeEntry.Validator = maxLenValidator("place", 50)

	f.startDateEntry = widget.NewEntry()
	f.startDateEntry.SetPlaceHolder("YYYY-MM-DD")
	f.startTimeEntry = widget.NewEntry()
	f.startTimeEntry.SetPlaceHolder("HH:MM")
	f.endDateEntry = widget.NewEntry()
	f.endDateEntry.SetPlaceHolder("YYYY-MM-DD")
	f.endTimeEntry = widget.NewEntry()
	f.endTimeEntry.SetPlaceHolder("HH:MM")

	f.allDayCheck = widget.NewCheck("All day", func(checked bool) {
		if checked {
			f.startTimeEntry.Disable()
			f.endTimeEntry.Disable()
		} else {
			f.startTimeEntry.Enable()
			f.endTimeEntry.Enable()
		}
	})

	// Picking a start time always resets the end to one hour later
	f.startTimeEntry.OnChanged = func(value string) {
		if f.hydrating {
			return
		}
		hour, min, ok := parseClock(value)
		if !ok {
			return
		}
		start := time.Date(2000, 1, 1, hour, min, 0, 0, time.Local)
		f.endTimeEntry.SetText(EndTimeForStart(start).Format("15:04"))
	}

	// Moving the start date drags the end to the same date, keeping its
	// clock time
	f.startDateEntry.OnChanged = func(value string) {
		if f.hydrating {
			return
		}
		if _, ok := parseDate(value); ok {
			f.endDateEntry.SetText(value)
		}
	}

	startRow := container.NewGridWithColumns(2, f.startDateEntry, f.startTimeEntry)
	endRow := container.NewGridWithColumns(2, f.endDateEntry, f.endTimeEntry)

	f.spanForm = container.New(layout.NewFormLayout(),
		widget.NewLabel("Place:"), f.placeEntry,
		widget.NewLabel(""), f.allDayCheck,
		widget.NewLabel("Start:"), startRow,
		widget.NewLabel("End:"), endRow,
	)
}

func (f *EventFormWindow) buildLectureFields() {
	f.roomEntry = widget.NewEntry()
	f.roomEntry.SetPlaceHolder("Room (optional)")
	f.roomEntry.Validator = maxLenValidator("room", 20)

	weekdayRow := container.NewHBox()
	for i, label := range weekdayLabels {
		f.weekdayChecks[i] = widget.NewCheck(label, nil)
		weekdayRow.Add(f.weekdayChecks[i])
	}

	f.semStartEntry = widget.NewEntry()
	f.semStartEntry.SetPlaceHolder("YYYY-MM-DD")
	f.semEndEntry = widget.NewEntry()
	f.semEndEntry.SetPlaceHolder("YYYY-MM-DD")
	f.lectureStartTime = widget.NewEntry()
	f.lectureStartTime.SetPlaceHolder("HH:MM")
	f.lectureEndTime = widget.NewEntry()
	f.lectureEndTime.SetPlaceHolder("HH:MM")

	// Changing the semester start recomputes the end and, when nothing
	// is ticked yet, selects the start date's weekday
	f.semStartEntry.OnChanged = func(value string) {
		if f.hydrating {
			return
		}
		start, ok := parseDate(value)
		if !ok {
			return
		}
		f.semEndEntry.SetText(SemesterEnd(start).Format(dateLayout))

		if weekday, ok := AutoSelectWeekday(f.selectedWeekdays(), start); ok {
			f.weekdayChecks[weekday].SetChecked(true)
		}
	}

	// Same one-hour cascade as timed events
	f.lectureStartTime.OnChanged = func(value string) {
		if f.hydrating {
			return
		}
		hour, min, ok := parseClock(value)
		if !ok {
			return
		}
		start := time.Date(2000, 1, 1, hour, min, 0, 0, time.Local)
		f.lectureEndTime.SetText(EndTimeForStart(start).Format("15:04"))
	}

	timeRow := container.NewGridWithColumns(2, f.lectureStartTime, f.lectureEndTime)
	semesterRow := container.NewGridWithColumns(2, f.semStartEntry, f.semEndEntry)

	f.lectureForm = container.New(layout.NewFormLayout(),
		widget.NewLabel("Room:"), f.roomEntry,
		widget.NewLabel("Days:"), weekdayRow,
		widget.NewLabel("Time:"), timeRow,
		widget.NewLabel("Semester:"), semesterRow,
	)
}

func (f *EventFormWindow) showFieldsFor(category string) {
	if category == "Lecture" {
		f.fieldsHolder.Objects = []fyne.CanvasObject{f.lectureForm}
	} else {
		f.fieldsHolder.Objects = []fyne.CanvasObject{f.spanForm}
	}
	f.fieldsHolder.Refresh()
}

func (f *EventFormWindow) selectedWeekdays() []int {
	selected := []int{}
	for i, check := range f.weekdayChecks {
		if check.Checked {
			selected = append(selected, i)
		}
	}
	return selected
}

// hydrate fills the form with defaults for a new event or the stored
// values of the one being edited. Cascades stay quiet throughout.
func (f *EventFormWindow) hydrate() {
	f.hydrating = true
	defer func() { f.hydrating = false }()

	now := time.Now()

	// Lecture defaults apply regardless of mode so switching category
	// lands on something sensible
	semStart := DefaultSemesterStart(now)
	f.semStartEntry.SetText(semStart.Format(dateLayout))
	f.semEndEntry.SetText(SemesterEnd(semStart).Format(dateLayout))
	f.lectureStartTime.SetText("09:00")
	f.lectureEndTime.SetText("10:00")

	day := f.opts.day
	if day.IsZero() {
		day = now
	}
	f.startDateEntry.SetText(day.Format(dateLayout))
	f.endDateEntry.SetText(day.Format(dateLayout))
	start := time.Date(day.Year(), day.Month(), day.Day(), now.Hour()+1, 0, 0, 0, time.Local)
	f.startTimeEntry.SetText(start.Format("15:04"))
	f.endTimeEntry.SetText(EndTimeForStart(start).Format("15:04"))

	event := f.opts.event
	if event == nil {
		if f.opts.group != nil {
			f.categorySelect.SetSelected("Group")
		} else {
			f.categorySelect.SetSelected("Personal")
		}
		return
	}

	// Edit mode: category is fixed
	f.titleEntry.SetText(event.Title)
	f.descEntry.SetText(event.Description)

	switch event.Category {
	case CategoryLecture:
		f.categorySelect.SetSelected("Lecture")
		f.roomEntry.SetText(event.Location)
		if event.Weekly != nil {
			f.semStartEntry.SetText(event.Weekly.StartRecur)
			f.semEndEntry.SetText(event.Weekly.EndRecur)
			f.lectureStartTime.SetText(clockText(event.Weekly.StartTime))
			f.lectureEndTime.SetText(clockText(event.Weekly.EndTime))
			for _, d := range event.Weekly.DaysOfWeek {
				if d >= 0 && d < 7 {
					f.weekdayChecks[d].SetChecked(true)
				}
			}
		}
	default:
		if event.Category == CategoryGroup {
			f.categorySelect.SetSelected("Group")
		} else {
			f.categorySelect.SetSelected("Personal")
		}
		f.placeEntry.SetText(event.Location)
		if event.Span != nil {
			f.allDayCheck.SetChecked(event.Span.AllDay)
			if start, ok := parseDateTime(event.Span.StartRaw()); ok {
				f.startDateEntry.SetText(start.Format(dateLayout))
				f.startTimeEntry.SetText(start.Format("15:04"))
			}
			if end, ok := parseDateTime(event.Span.EndRaw()); ok {
				f.endDateEntry.SetText(end.Format(dateLayout))
				f.endTimeEntry.SetText(end.Format("15:04"))
			}
		}
	}
	f.categorySelect.Disable()
}

func (f *EventFormWindow) submit() {
	if err := f.titleEntry.Validate(); err != nil {
		showToast(f.window, err.Error())
		return
	}

	var payload SchedulePayload
	var err error
	if f.categorySelect.Selected == "Lecture" {
		payload, err = f.lecturePayload()
	} else {
		payload, err = f.spanPayload()
	}
	if err != nil {
		showToast(f.window, err.Error())
		return
	}

	f.submitButton.Disable()

	go func() {
		var reqErr error
		if f.opts.event != nil {
			reqErr = f.rf.api.UpdateSchedule(f.opts.event.ID, payload)
		} else {
			reqErr = f.rf.api.CreateSchedule(payload)
		}

		fyne.Do(func() {
			if reqErr != nil {
				log.Printf("Error saving schedule: %v", reqErr)
				f.submitButton.Enable()
				showToast(f.window, UserMessage(reqErr))
				return
			}

			if f.opts.onSaved != nil {
				f.opts.onSaved()
			}
			f.window.Close()
		})
		if reqErr == nil {
			go f.rf.syncAll()
		}
	}()
}

func (f *EventFormWindow) spanPayload() (SchedulePayload, error) {
	if err := f.placeEntry.Validate(); err != nil {
		return SchedulePayload{}, err
	}

	startDate, ok := parseDate(f.startDateEntry.Text)
	if !ok {
		return SchedulePayload{}, fmt.Errorf("please enter a valid start date")
	}
	endDate, ok := parseDate(f.endDateEntry.Text)
	if !ok {
		return SchedulePayload{}, fmt.Errorf("please enter a valid end date")
	}

	allDay := f.allDayCheck.Checked
	start := startDate
	end := endDate
	if !allDay {
		hour, min, ok := parseClock(f.startTimeEntry.Text)
		if !ok {
			return SchedulePayload{}, fmt.Errorf("please enter a valid start time")
		}
		start = startDate.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)

		hour, min, ok = parseClock(f.endTimeEntry.Text)
		if !ok {
			return SchedulePayload{}, fmt.Errorf("please enter a valid end time")
		}
		end = endDate.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
	}

	category := CategoryPersonal
	var groupID int64
	if f.opts.group != nil {
		category = CategoryGroup
		groupID = f.opts.group.ID
	} else if f.opts.event != nil && f.opts.event.Category == CategoryGroup {
		category = CategoryGroup
		groupID = f.opts.event.GroupID
	}

	return SchedulePayload{
		Category:    string(category),
		Title:       f.titleEntry.Text,
		Description: f.descEntry.Text,
		Location:    f.placeEntry.Text,
		AllDay:      &allDay,
		Start:       start.Format(dateTimeLayout),
		End:         end.Format(dateTimeLayout),
		GroupID:     groupID,
	}, nil
}

func (f *EventFormWindow) lecturePayload() (SchedulePayload, error) {
	if err := f.roomEntry.Validate(); err != nil {
		return SchedulePayload{}, err
	}

	// Rejected locally, no request leaves the client
	days := f.selectedWeekdays()
	if len(days) == 0 {
		return SchedulePayload{}, fmt.Errorf("please select at least one day of the week")
	}

	if _, ok := parseDate(f.semStartEntry.Text); !ok {
		return SchedulePayload{}, fmt.Errorf("please enter a valid semester start date")
	}
	if _, ok := parseDate(f.semEndEntry.Text); !ok {
		return SchedulePayload{}, fmt.Errorf("please enter a valid semester end date")
	}

	startHour, startMin, ok := parseClock(f.lectureStartTime.Text)
	if !ok {
		return SchedulePayload{}, fmt.Errorf("please enter a valid start time")
	}
	endHour, endMin, ok := parseClock(f.lectureEndTime.Text)
	if !ok {
		return SchedulePayload{}, fmt.Errorf("please enter a valid end time")
	}

	return SchedulePayload{
		Category:    string(CategoryLecture),
		Title:       f.titleEntry.Text,
		Description: f.descEntry.Text,
		Location:    f.roomEntry.Text,
		StartRecur:  f.semStartEntry.Text,
		EndRecur:    f.semEndEntry.Text,
		StartTime:   fmt.Sprintf("%02d:%02d:00", startHour, startMin),
		EndTime:     fmt.Sprintf("%02d:%02d:00", endHour, endMin),
		DaysOfWeek:  days,
	}, nil
}

func maxLenValidator(field string, max int) func(string) error {
	return func(s string) error {
		if len([]rune(s)) > max {
			return fmt.Errorf("%s must be %d characters or less", field, max)
		}
		return nil
	}
}
