package ui

import (
	"image/color"

	"ShapeBoard/internal/session"
	"ShapeBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    state.Color
	OnTapped func(state.Color)

	selected bool
	border   *canvas.Rectangle
	tip      tooltip
}

var _ fyne.Tappable = (*colorSwatch)(nil)
var _ desktop.Hoverable = (*colorSwatch)(nil)

func newColorSwatch(c state.Color, tapped func(state.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped, tip: tooltip{text: "Select a color."}}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(paintOrTransparent(s.Color))
	rect.SetMinSize(fyne.NewSize(32, 32))

	s.border = canvas.NewRectangle(color.Transparent)
	s.applyBorder()

	return widget.NewSimpleRenderer(container.NewStack(rect, s.border))
}

func (s *colorSwatch) setSelected(v bool) {
	s.selected = v
	if s.border != nil {
		s.applyBorder()
		s.border.Refresh()
	}
}

func (s *colorSwatch) applyBorder() {
	if s.selected {
		s.border.StrokeColor = color.NRGBA{R: 0xff, G: 0xa5, A: 0xff}
		s.border.StrokeWidth = 3
		return
	}
	s.border.StrokeColor = color.Gray{Y: 150}
	s.border.StrokeWidth = 1
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

func (s *colorSwatch) MouseIn(*desktop.MouseEvent)    { s.tip.show(s) }
func (s *colorSwatch) MouseMoved(*desktop.MouseEvent) {}
func (s *colorSwatch) MouseOut()                      { s.tip.hide() }

// Toolbar holds the shape picker, color palette and Draw/Clear buttons.
type Toolbar struct {
	session  *session.Session
	shape    *tipSelect
	swatches []*colorSwatch
	colorLbl *widget.Label
	draw     *tipButton
	clear    *tipButton
	content  fyne.CanvasObject
}

// NewToolbar builds the controls and selects the session's current kind and color.
func NewToolbar(s *session.Session) *Toolbar {
	t := &Toolbar{session: s}

	// --- Shape Picker ---
	names := make([]string, 0, len(state.Kinds))
	for _, k := range state.Kinds {
		names = append(names, k.String())
	}
	t.shape = newTipSelect(names, "Select a shape.", func(name string) {
		if k, err := state.ParseKind(name); err == nil {
			s.SetKind(k)
		}
	})
	t.shape.SetSelected(s.Draw.Kind().String())

	// --- Color Palette ---
	t.colorLbl = widget.NewLabel("")
	colorBox := container.NewHBox()
	for _, c := range state.Palette {
		sw := newColorSwatch(c, t.selectColor)
		t.swatches = append(t.swatches, sw)
		colorBox.Add(sw)
	}
	t.selectColor(s.Draw.Color())

	// --- Buttons ---
	t.draw = newTipButton("Draw", "Draw the selected shape", s.Stamp)
	t.clear = newTipButton("Clear", "Clear the canvas", s.Clear)

	// --- Assemble everything ---
	t.content = container.NewVBox(
		container.NewHBox(widget.NewLabel("Select Shape:"), t.shape),
		container.NewHBox(widget.NewLabel("Select Color:"), colorBox, t.colorLbl),
		container.NewHBox(layout.NewSpacer(), t.clear, t.draw),
	)
	return t
}

func (t *Toolbar) selectColor(c state.Color) {
	t.session.SetColor(c)
	for _, sw := range t.swatches {
		sw.setSelected(sw.Color == c)
	}
	t.colorLbl.SetText(c.String())
}

// CanvasObject returns the toolbar's root object.
func (t *Toolbar) CanvasObject() fyne.CanvasObject {
	return t.content
}
