package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundsEmpty(t *testing.T) {
	_, ok := Bounds(nil, 10)
	assert.False(t, ok)
}

func TestBoundsCoversAllShapes(t *testing.T) {
	shapes := []Shape{
		NewLine(10, 10, 200, 200, ColorBlack),
		NewOval(100, 100, 300, 300, ColorRed),
		NewRectangle(250, 150, 50, 50, ColorBlue),
	}
	area, ok := Bounds(shapes, 5)
	assert.True(t, ok)
	assert.Equal(t, Area{X: 5, Y: 5, Width: 300, Height: 300}, area)
}

func TestAreaUnion(t *testing.T) {
	a := Area{X: 0, Y: 0, Width: 10, Height: 10}
	b := Area{X: 5, Y: -5, Width: 10, Height: 5}
	assert.Equal(t, Area{X: 0, Y: -5, Width: 15, Height: 15}, a.Union(b))
}
