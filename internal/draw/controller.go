// Package draw turns pointer events and picker selections into shapes on a board.
package draw

import (
	"ShapeBoard/internal/state"

	"go.uber.org/zap"
)

// Stamp geometry for the Draw button, keyed by kind. Point has none.
var stampCoords = map[state.Kind][4]float64{
	state.KindLine:      {10, 10, 200, 200},
	state.KindCircle:    {100, 100, 300, 300},
	state.KindRectangle: {50, 50, 250, 150},
}

// Controller runs the Idle/Dragging machine for one board.
//
// At most one preview shape exists at a time. Every pointer move replaces it,
// and pointer release leaves the last one on the board.
type Controller struct {
	board       *state.Board
	logger      *zap.Logger
	kind        state.Kind
	color       state.Color
	pointRadius float64

	dragging         bool
	originX, originY float64
	preview          string
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller's logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithPointRadius overrides the dot radius used for Point.
func WithPointRadius(r float64) Option {
	return func(c *Controller) {
		if r > 0 {
			c.pointRadius = r
		}
	}
}

// WithSelection sets the initial kind and color.
func WithSelection(kind state.Kind, color state.Color) Option {
	return func(c *Controller) {
		c.kind = kind
		c.color = color
	}
}

// NewController returns an idle controller drawing black points.
func NewController(board *state.Board, opts ...Option) *Controller {
	c := &Controller{
		board:       board,
		logger:      zap.NewNop(),
		kind:        state.KindPoint,
		color:       state.ColorBlack,
		pointRadius: state.DefaultPointRadius,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetKind changes the selected kind. An in-progress preview keeps its kind
// until the next move replaces it.
func (c *Controller) SetKind(k state.Kind) { c.kind = k }

// SetColor changes the selected color, with the same timing as SetKind.
func (c *Controller) SetColor(col state.Color) { c.color = col }

// Kind returns the selected kind.
func (c *Controller) Kind() state.Kind { return c.kind }

// Color returns the selected color.
func (c *Controller) Color() state.Color { return c.color }

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool { return c.dragging }

// Preview returns the ID of the in-progress shape, or "" when there is none.
func (c *Controller) Preview() string { return c.preview }

// PointerDown starts a drag at (x, y). No shape is created yet.
func (c *Controller) PointerDown(x, y float64) {
	c.dragging = true
	c.originX, c.originY = x, y
	c.preview = ""
	c.logger.Debug("drag started", zap.Float64("x", x), zap.Float64("y", y))
}

// PointerMove replaces the preview with a shape from the drag origin to (x, y).
func (c *Controller) PointerMove(x, y float64) {
	if !c.dragging {
		c.logger.Debug("move without drag ignored")
		return
	}
	if c.preview != "" {
		c.board.Remove(c.preview)
	}
	s := state.NewShape(c.kind, c.color, c.originX, c.originY, x, y, c.pointRadius)
	c.preview = c.board.Add(s)
}

// PointerUp commits the preview and returns to idle.
func (c *Controller) PointerUp(x, y float64) {
	if !c.dragging {
		return
	}
	c.logger.Debug("drag finished",
		zap.Float64("x", x),
		zap.Float64("y", y),
		zap.Bool("committed", c.preview != ""))
	c.dragging = false
	c.preview = ""
}

// Stamp adds the selected kind at its fixed position in the selected color.
// It leaves any drag in progress alone and reports whether a shape was added;
// Point has no stamp.
func (c *Controller) Stamp() bool {
	coords, ok := stampCoords[c.kind]
	if !ok {
		c.logger.Debug("no stamp for kind", zap.Stringer("kind", c.kind))
		return false
	}
	c.board.Add(state.NewShape(c.kind, c.color, coords[0], coords[1], coords[2], coords[3], c.pointRadius))
	return true
}

// Clear removes every shape from the board.
func (c *Controller) Clear() {
	c.board.Clear()
	c.preview = ""
}
