package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// appTheme pins the theme variant so the user's dark mode choice wins over
// the OS setting.
type appTheme struct {
	variant fyne.ThemeVariant
}

func (t *appTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, t.variant)
}

func (t *appTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *appTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *appTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}

func applyTheme(app fyne.App, dark bool) {
	variant := theme.VariantLight
	if dark {
		variant = theme.VariantDark
	}
	app.Settings().SetTheme(&appTheme{variant: variant})
}
