package ui

import (
	"testing"

	"ShapeBoard/internal/state"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolbarDefaults(t *testing.T) {
	test.NewTempApp(t)
	s := newTestSession(state.KindPoint, state.ColorBlack)
	tb := NewToolbar(s)

	assert.Equal(t, "Point", tb.shape.Selected)
	assert.Equal(t, []string{"Point", "Line", "Circle", "Rectangle"}, tb.shape.Options)
	require.Len(t, tb.swatches, 4)
	assert.True(t, tb.swatches[0].selected)
	assert.Equal(t, "Black", tb.colorLbl.Text)
}

func TestToolbarSelections(t *testing.T) {
	test.NewTempApp(t)
	s := newTestSession(state.KindPoint, state.ColorBlack)
	tb := NewToolbar(s)

	tb.shape.SetSelected("Circle")
	assert.Equal(t, state.KindCircle, s.Draw.Kind())

	test.Tap(tb.swatches[3])
	assert.Equal(t, state.ColorBlue, s.Draw.Color())
	assert.False(t, tb.swatches[0].selected)
	assert.True(t, tb.swatches[3].selected)
	assert.Equal(t, "Blue", tb.colorLbl.Text)
}

func TestToolbarButtons(t *testing.T) {
	test.NewTempApp(t)
	s := newTestSession(state.KindRectangle, state.ColorGreen)
	tb := NewToolbar(s)
	test.NewWindow(tb.CanvasObject())

	test.Tap(tb.draw)
	require.Equal(t, 1, s.Board.Len())
	assert.Equal(t, [4]float64{50, 50, 250, 150}, s.Board.Shapes()[0].Coords)

	test.Tap(tb.clear)
	assert.Equal(t, 0, s.Board.Len())
}

func TestToolbarDrawPointDoesNothing(t *testing.T) {
	test.NewTempApp(t)
	s := newTestSession(state.KindPoint, state.ColorGreen)
	tb := NewToolbar(s)

	test.Tap(tb.draw)
	assert.Equal(t, 0, s.Board.Len())
}
