package state

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Board is the ordered set of shapes on the canvas. Later shapes are drawn on top.
type Board struct {
	shapes    []Shape
	mu        sync.RWMutex
	logger    *zap.Logger
	OnChanged func()
}

// NewBoard creates an empty board. A nil logger disables logging.
func NewBoard(logger *zap.Logger) *Board {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Board{
		shapes: make([]Shape, 0),
		logger: logger,
	}
}

// Add appends s, assigning it a fresh ID, and returns that ID.
func (b *Board) Add(s Shape) string {
	b.mu.Lock()
	s.ID = uuid.NewString()
	b.shapes = append(b.shapes, s)
	b.mu.Unlock()

	b.logger.Debug("shape added",
		zap.String("id", s.ID),
		zap.String("geometry", string(s.Geometry)),
		zap.Float64s("coords", s.Coords[:]))
	b.changed()
	return s.ID
}

// Remove deletes the shape with the given ID and reports whether it existed.
func (b *Board) Remove(id string) bool {
	b.mu.Lock()
	removed := false
	for i, s := range b.shapes {
		if s.ID == id {
			b.shapes = append(b.shapes[:i], b.shapes[i+1:]...)
			removed = true
			break
		}
	}
	b.mu.Unlock()

	if removed {
		b.logger.Debug("shape removed", zap.String("id", id))
		b.changed()
	}
	return removed
}

// Clear removes every shape.
func (b *Board) Clear() {
	b.mu.Lock()
	n := len(b.shapes)
	b.shapes = make([]Shape, 0)
	b.mu.Unlock()

	b.logger.Debug("board cleared", zap.Int("removed", n))
	b.changed()
}

// Shapes returns a copy of the shapes in drawing order.
func (b *Board) Shapes() []Shape {
	b.mu.RLock()
	defer b.mu.RUnlock()
	shapes := make([]Shape, len(b.shapes))
	copy(shapes, b.shapes)
	return shapes
}

// Get returns the shape with the given ID.
func (b *Board) Get(id string) (Shape, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, s := range b.shapes {
		if s.ID == id {
			return s, true
		}
	}
	return Shape{}, false
}

// Len returns the number of shapes.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.shapes)
}

func (b *Board) changed() {
	if b.OnChanged != nil {
		b.OnChanged()
	}
}
