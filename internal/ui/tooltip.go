package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// tooltip is a small popup shown below-right of a hovered widget.
type tooltip struct {
	text  string
	popup *widget.PopUp
}

func (t *tooltip) show(owner fyne.CanvasObject) {
	if t.text == "" || t.popup != nil {
		return
	}
	a := fyne.CurrentApp()
	if a == nil {
		return
	}
	c := a.Driver().CanvasForObject(owner)
	if c == nil {
		return
	}

	bg := canvas.NewRectangle(color.NRGBA{R: 0xff, G: 0xff, B: 0xe0, A: 0xff})
	bg.StrokeColor = color.Black
	bg.StrokeWidth = 1
	content := container.NewStack(bg, container.NewPadded(widget.NewLabel(t.text)))

	t.popup = widget.NewPopUp(content, c)
	pos := a.Driver().AbsolutePositionForObject(owner)
	t.popup.ShowAtPosition(pos.Add(fyne.NewPos(25, owner.Size().Height)))
}

func (t *tooltip) hide() {
	if t.popup != nil {
		t.popup.Hide()
		t.popup = nil
	}
}

// tipButton is a button with a hover tooltip.
type tipButton struct {
	widget.Button
	tip tooltip
}

var _ desktop.Hoverable = (*tipButton)(nil)

func newTipButton(label, tip string, tapped func()) *tipButton {
	b := &tipButton{tip: tooltip{text: tip}}
	b.Text = label
	b.OnTapped = tapped
	b.ExtendBaseWidget(b)
	return b
}

func (b *tipButton) MouseIn(e *desktop.MouseEvent) {
	b.Button.MouseIn(e)
	b.tip.show(b)
}

func (b *tipButton) MouseOut() {
	b.Button.MouseOut()
	b.tip.hide()
}

func (b *tipButton) Tapped(e *fyne.PointEvent) {
	b.tip.hide()
	b.Button.Tapped(e)
}

// tipSelect is a dropdown with a hover tooltip.
type tipSelect struct {
	widget.Select
	tip tooltip
}

var _ desktop.Hoverable = (*tipSelect)(nil)

func newTipSelect(options []string, tip string, changed func(string)) *tipSelect {
	s := &tipSelect{tip: tooltip{text: tip}}
	s.Options = options
	s.OnChanged = changed
	s.ExtendBaseWidget(s)
	return s
}

func (s *tipSelect) MouseIn(e *desktop.MouseEvent) {
	s.Select.MouseIn(e)
	s.tip.show(s)
}

func (s *tipSelect) MouseOut() {
	s.Select.MouseOut()
	s.tip.hide()
}

func (s *tipSelect) Tapped(e *fyne.PointEvent) {
	s.tip.hide()
	s.Select.Tapped(e)
}
