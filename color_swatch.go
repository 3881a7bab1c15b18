package main

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// groupPalette is the set of colors a group can be assigned.
var groupPalette = []string{"#d32f2f", "#ed6c02", "#fbc02d", "#1a237e", "#9c27b0", "#00bcd4"}

// parseHexColor parses a "#rrggbb" string. Unparseable input comes back
// gray rather than erroring; colors here are cosmetic.
func parseHexColor(s string) color.Color {
	if len(s) != 7 || s[0] != '#' {
		return color.Gray{Y: 128}
	}
	value, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.Gray{Y: 128}
	}
	return color.NRGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 0xff,
	}
}

// ColorSwatch is a clickable color circle used by the palette picker.
type ColorSwatch struct {
	widget.BaseWidget
	Color    string
	OnTapped func()

	selected bool
	hovered  bool
}

func NewColorSwatch(colorHex string, onTapped func()) *ColorSwatch {
	s := &ColorSwatch{
		Color:    colorHex,
		OnTapped: onTapped,
	}
	s.ExtendBaseWidget(s)
	return s
}

func (s *ColorSwatch) SetSelected(selected bool) {
	s.selected = selected
	s.Refresh()
}

func (s *ColorSwatch) Tapped(*fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped()
	}
}

func (s *ColorSwatch) TappedSecondary(*fyne.PointEvent) {
}

func (s *ColorSwatch) MouseIn(*desktop.MouseEvent) {
	s.hovered = true
	s.Refresh()
}

func (s *ColorSwatch) MouseMoved(*desktop.MouseEvent) {
}

func (s *ColorSwatch) MouseOut() {
	s.hovered = false
	s.Refresh()
}

func (s *ColorSwatch) CreateRenderer() fyne.WidgetRenderer {
	circle := canvas.NewCircle(parseHexColor(s.Color))
	ring := canvas.NewCircle(color.Transparent)
	ring.StrokeWidth = 3

	return &colorSwatchRenderer{
		swatch: s,
		circle: circle,
		ring:   ring,
	}
}

type colorSwatchRenderer struct {
	swatch *ColorSwatch
	circle *canvas.Circle
	ring   *canvas.Circle
}

func (r *colorSwatchRenderer) Layout(size fyne.Size) {
	r.ring.Resize(size)
	inset := float32(4)
	r.circle.Resize(fyne.NewSize(size.Width-inset*2, size.Height-inset*2))
	r.circle.Move(fyne.NewPos(inset, inset))
}

func (r *colorSwatchRenderer) MinSize() fyne.Size {
	return fyne.NewSize(36, 36)
}

func (r *colorSwatchRenderer) Refresh() {
	r.circle.FillColor = parseHexColor(r.swatch.Color)

	if r.swatch.selected {
		r.ring.StrokeColor = theme.PrimaryColor()
	} else if r.swatch.hovered {
		r.ring.StrokeColor = theme.HoverColor()
	} else {
		r.ring.StrokeColor = color.Transparent
	}

	r.circle.Refresh()
	r.ring.Refresh()
}

func (r *colorSwatchRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.ring, r.circle}
}

func (r *colorSwatchRenderer) Destroy() {
}

// NewColorPaletteRow builds a row of swatches for the group palette. The
// onSelect callback receives the chosen hex color.
func NewColorPaletteRow(selected string, onSelect func(string)) *fyne.Container {
	swatches := make([]*ColorSwatch, len(groupPalette))
	row := container.NewHBox()

	for i, colorHex := range groupPalette {
		colorHex := colorHex
		index := i
		swatches[i] = NewColorSwatch(colorHex, func() {
			for j, swatch := range swatches {
				swatch.SetSelected(j == index)
			}
			onSelect(colorHex)
		})
		if colorHex == selected {
			swatches[i].SetSelected(true)
		}
		row.Add(swatches[i])
	}

	return row
}
