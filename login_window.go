package main

import (
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

type LoginWindow struct {
	window  fyne.Window
	app     fyne.App
	api     *APIClient
	onLogin func(LoginResult)

	loginButton    *widget.Button
	registerButton *widget.Button
	statusLabel    *widget.Label
}

func NewLoginWindow(app fyne.App, api *APIClient, onLogin func(LoginResult)) *LoginWindow {
	lw := &LoginWindow{
		app:     app,
		api:     api,
		onLogin: onLogin,
	}

	lw.window = app.NewWindow("RF Calendar - Sign In")
	lw.buildUI()

	return lw
}

func (lw *LoginWindow) buildUI() {
	lw.statusLabel = widget.NewLabel("")
	lw.statusLabel.Importance = widget.DangerImportance
	lw.statusLabel.Wrapping = fyne.TextWrapWord

	tabs := container.NewAppTabs(
		container.NewTabItem("Sign In", lw.buildSignInTab()),
		container.NewTabItem("Sign Up", lw.buildSignUpTab()),
	)

	content := container.NewBorder(
		nil,
		container.NewPadded(lw.statusLabel),
		nil,
		nil,
		tabs,
	)

	lw.window.SetContent(container.NewPadded(content))
	lw.window.Resize(fyne.NewSize(380, 360))
	lw.window.CenterOnScreen()
}

func (lw *LoginWindow) buildSignInTab() fyne.CanvasObject {
	idEntry := widget.NewEntry()
	idEntry.SetPlaceHolder("ID")

	passwordEntry := widget.NewPasswordEntry()
	passwordEntry.SetPlaceHolder("Password")

	lw.loginButton = widget.NewButton("Sign In", func() {
		loginID := strings.TrimSpace(idEntry.Text)
		password := passwordEntry.Text
		if loginID == "" || password == "" {
			lw.setStatus("Please enter your ID and password.")
			return
		}

		lw.setStatus("")
		lw.loginButton.Disable()

		go func() {
			result, err := lw.api.Login(loginID, password)
			fyne.Do(func() {
				lw.loginButton.Enable()
				if err != nil {
					log.Printf("Login failed: %v", err)
					lw.setStatus(UserMessage(err))
					return
				}
				lw.onLogin(result)
			})
		}()
	})
	lw.loginButton.Importance = widget.HighImportance

	passwordEntry.OnSubmitted = func(string) {
		lw.loginButton.OnTapped()
	}

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("ID:"), idEntry,
		widget.NewLabel("Password:"), passwordEntry,
	)

	return container.NewVBox(
		form,
		container.NewPadded(lw.loginButton),
	)
}

func (lw *LoginWindow) buildSignUpTab() fyne.CanvasObject {
	idEntry := widget.NewEntry()
	idEntry.SetPlaceHolder("ID")

	passwordEntry := widget.NewPasswordEntry()
	passwordEntry.SetPlaceHolder("Password")

	confirmEntry := widget.NewPasswordEntry()
	confirmEntry.SetPlaceHolder("Confirm password")

	nicknameEntry := widget.NewEntry()
	nicknameEntry.SetPlaceHolder("Nickname")

	lw.registerButton = widget.NewButton("Create Account", func() {
		loginID := strings.TrimSpace(idEntry.Text)
		nickname := strings.TrimSpace(nicknameEntry.Text)

		if loginID == "" || passwordEntry.Text == "" || nickname == "" {
			lw.setStatus("Please fill in every field.")
			return
		}
		if passwordEntry.Text != confirmEntry.Text {
			lw.setStatus("Passwords do not match.")
			return
		}

		lw.setStatus("")
		lw.registerButton.Disable()

		go func() {
			err := lw.api.Register(loginID, passwordEntry.Text, nickname)
			fyne.Do(func() {
				lw.registerButton.Enable()
				if err != nil {
					log.Printf("Registration failed: %v", err)
					lw.setStatus(UserMessage(err))
					return
				}
				lw.setStatusInfo(fmt.Sprintf("Account '%s' created. You can sign in now.", loginID))
			})
		}()
	})
	lw.registerButton.Importance = widget.HighImportance

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("ID:"), idEntry,
		widget.NewLabel("Password:"), passwordEntry,
		widget.NewLabel("Confirm:"), confirmEntry,
		widget.NewLabel("Nickname:"), nicknameEntry,
	)

	return container.NewVBox(
		form,
		container.NewPadded(lw.registerButton),
	)
}

func (lw *LoginWindow) setStatus(message string) {
	lw.statusLabel.Importance = widget.DangerImportance
	lw.statusLabel.SetText(message)
	lw.statusLabel.Refresh()
}

func (lw *LoginWindow) setStatusInfo(message string) {
	lw.statusLabel.Importance = widget.SuccessImportance
	lw.statusLabel.SetText(message)
	lw.statusLabel.Refresh()
}

func (lw *LoginWindow) Show() {
	lw.window.Show()
}
