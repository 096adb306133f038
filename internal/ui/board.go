package ui

import (
	"image/color"

	"ShapeBoard/internal/session"
	"ShapeBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const shapeStrokeWidth float32 = 1.5

// BoardWidget shows the session's board and feeds primary-button drags into
// the draw controller.
type BoardWidget struct {
	widget.BaseWidget
	session *session.Session
	lastPos fyne.Position
	pressed bool
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(s *session.Session) *BoardWidget {
	b := &BoardWidget{session: s}
	b.ExtendBaseWidget(b)
	s.Board.OnChanged = b.Refresh
	return b
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.pressed = true
	b.lastPos = e.Position
	b.session.PointerDown(float64(e.Position.X), float64(e.Position.Y))
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !b.pressed {
		return
	}
	b.lastPos = e.Position
	b.session.PointerMove(float64(e.Position.X), float64(e.Position.Y))
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.release(e.Position)
}

// DragEnd covers releases the driver reports only as the end of a drag.
func (b *BoardWidget) DragEnd() {
	b.release(b.lastPos)
}

func (b *BoardWidget) release(pos fyne.Position) {
	if !b.pressed {
		return
	}
	b.pressed = false
	b.session.PointerUp(float64(pos.X), float64(pos.Y))
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	r.rebuild()
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *boardWidgetRenderer) rebuild() {
	shapes := r.board.session.Board.Shapes()
	objects := make([]fyne.CanvasObject, 0, len(shapes)+1)
	objects = append(objects, r.background)
	for _, s := range shapes {
		if obj := shapeObject(s); obj != nil {
			objects = append(objects, obj)
		}
	}
	r.objects = objects
}

// shapeObject converts a board shape to a canvas primitive positioned in
// widget coordinates.
func shapeObject(s state.Shape) fyne.CanvasObject {
	minX, minY, maxX, maxY := s.Box()
	topLeft := fyne.NewPos(float32(minX), float32(minY))
	bottomRight := fyne.NewPos(float32(maxX), float32(maxY))

	switch s.Geometry {
	case state.GeometryLine:
		stroke := s.Fill.RGBA()
		if stroke == nil {
			return nil
		}
		l := canvas.NewLine(stroke)
		l.StrokeWidth = shapeStrokeWidth
		l.Position1 = fyne.NewPos(float32(s.Coords[0]), float32(s.Coords[1]))
		l.Position2 = fyne.NewPos(float32(s.Coords[2]), float32(s.Coords[3]))
		return l
	case state.GeometryOval:
		c := canvas.NewCircle(paintOrTransparent(s.Fill))
		c.StrokeColor = paintOrTransparent(s.Outline)
		c.StrokeWidth = strokeFor(s.Outline)
		c.Position1 = topLeft
		c.Position2 = bottomRight
		return c
	case state.GeometryRectangle:
		rect := canvas.NewRectangle(paintOrTransparent(s.Fill))
		rect.StrokeColor = paintOrTransparent(s.Outline)
		rect.StrokeWidth = strokeFor(s.Outline)
		rect.Move(topLeft)
		rect.Resize(fyne.NewSize(float32(maxX-minX), float32(maxY-minY)))
		return rect
	}
	return nil
}

func paintOrTransparent(c state.Color) color.Color {
	if p := c.RGBA(); p != nil {
		return p
	}
	return color.Transparent
}

func strokeFor(c state.Color) float32 {
	if c == state.ColorNone {
		return 0
	}
	return shapeStrokeWidth
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardWidgetRenderer) Refresh() {
	r.rebuild()
	r.background.Refresh()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Destroy() {}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}
