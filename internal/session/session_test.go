package session

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ShapeBoard/internal/export"
	"ShapeBoard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type message struct {
	level, title, text string
}

type recordingNotifier struct {
	messages []message
}

func (n *recordingNotifier) Info(title, text string) {
	n.messages = append(n.messages, message{"info", title, text})
}

func (n *recordingNotifier) Error(title, text string) {
	n.messages = append(n.messages, message{"error", title, text})
}

func (n *recordingNotifier) last() message {
	if len(n.messages) == 0 {
		return message{}
	}
	return n.messages[len(n.messages)-1]
}

func newTestSession(t *testing.T) (*Session, *recordingNotifier) {
	t.Helper()
	n := &recordingNotifier{}
	s := New(Options{
		SaveFile:     filepath.Join(t.TempDir(), "saved_shapes.json"),
		Kind:         state.KindLine,
		Color:        state.ColorRed,
		ExportWidth:  200,
		ExportHeight: 100,
	}, n)
	return s, n
}

func TestNewDefaults(t *testing.T) {
	s := New(Options{}, nil)
	assert.Equal(t, "saved_shapes.json", s.SaveFile())
	assert.Equal(t, state.KindPoint, s.Draw.Kind())
	assert.Equal(t, state.ColorBlack, s.Draw.Color())
}

func TestSaveNotifiesSuccess(t *testing.T) {
	s, n := newTestSession(t)
	s.Stamp()
	s.Save()

	assert.Equal(t, message{"info", "Success", "Shapes saved successfully!"}, n.last())
	assert.Equal(t, 1, s.Board.Len())
	_, err := os.Stat(s.SaveFile())
	assert.NoError(t, err)
}

func TestSaveFailureNotifiesError(t *testing.T) {
	n := &recordingNotifier{}
	s := New(Options{SaveFile: filepath.Join(t.TempDir(), "no", "such", "dir.json")}, n)
	s.Save()

	got := n.last()
	assert.Equal(t, "error", got.level)
	assert.Equal(t, "Error", got.title)
	assert.Contains(t, got.text, "An error occurred while saving shapes: ")
}

func TestLoadMissingFile(t *testing.T) {
	s, n := newTestSession(t)
	s.Stamp()
	s.Load()

	assert.Equal(t, message{"error", "Error", "No saved shapes found!"}, n.last())
	assert.Equal(t, 0, s.Board.Len(), "board is cleared before the file is read")
}

func TestLoadParseFailure(t *testing.T) {
	s, n := newTestSession(t)
	require.NoError(t, os.WriteFile(s.SaveFile(), []byte("not json"), 0o644))
	s.Load()

	got := n.last()
	assert.Equal(t, "error", got.level)
	assert.Contains(t, got.text, "An error occurred while loading shapes: ")
}

func TestSaveThenLoad(t *testing.T) {
	s, n := newTestSession(t)
	s.PointerDown(5, 5)
	s.PointerMove(40, 50)
	s.PointerUp(40, 50)
	s.SetKind(state.KindRectangle)
	s.SetColor(state.ColorBlue)
	s.Stamp()
	s.Save()

	s.Clear()
	assert.Equal(t, 0, s.Board.Len())

	s.Load()
	assert.Equal(t, message{"info", "Success", "Shapes loaded successfully!"}, n.last())

	shapes := s.Board.Shapes()
	require.Len(t, shapes, 2)
	assert.Equal(t, state.NewLine(5, 5, 40, 50, state.ColorRed).Coords, shapes[0].Coords)
	assert.Equal(t, state.ColorRed, shapes[0].Stroke())
	assert.Equal(t, [4]float64{50, 50, 250, 150}, shapes[1].Coords)
	assert.Equal(t, state.ColorBlue, shapes[1].Outline)
}

type closeBuffer struct {
	bytes.Buffer
	closed bool
	err    error
}

func (b *closeBuffer) Close() error {
	b.closed = true
	return b.err
}

func TestExport(t *testing.T) {
	s, n := newTestSession(t)
	s.Stamp()

	var out closeBuffer
	s.Export(&out, export.FormatPDF)

	assert.True(t, out.closed)
	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("%PDF-")))
	assert.Equal(t, "info", n.last().level)
}

func TestExportCloseError(t *testing.T) {
	s, n := newTestSession(t)
	out := &closeBuffer{err: errors.New("disk full")}
	s.Export(out, export.FormatPNG)

	got := n.last()
	assert.Equal(t, "error", got.level)
	assert.Contains(t, got.text, "disk full")
}
