// Package session holds one drawing session: the board, the draw controller,
// the save file and the notifier that reports results to the user.
package session

import (
	"errors"
	"fmt"
	"io"

	"ShapeBoard/internal/draw"
	"ShapeBoard/internal/export"
	"ShapeBoard/internal/persist"
	"ShapeBoard/internal/state"

	"go.uber.org/zap"
)

// Notifier shows modal messages to the user.
type Notifier interface {
	Info(title, message string)
	Error(title, message string)
}

// Session is the application state shared by every UI control.
// Its methods never return errors; failures are reported through the Notifier.
type Session struct {
	Board    *state.Board
	Draw     *draw.Controller
	store    *persist.Store
	notifier Notifier
	logger   *zap.Logger

	exportWidth, exportHeight int
}

// Options configures a new Session.
type Options struct {
	SaveFile     string
	PointRadius  float64
	Kind         state.Kind
	Color        state.Color
	ExportWidth  int
	ExportHeight int
	Logger       *zap.Logger
}

// New creates a session with an empty board.
func New(opts Options, notifier Notifier) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Color == state.ColorNone {
		opts.Color = state.ColorBlack
	}
	board := state.NewBoard(logger.Named("board"))
	s := &Session{
		Board: board,
		Draw: draw.NewController(board,
			draw.WithLogger(logger.Named("draw")),
			draw.WithPointRadius(opts.PointRadius),
			draw.WithSelection(opts.Kind, opts.Color)),
		store:        persist.NewStore(opts.SaveFile, logger.Named("persist")),
		notifier:     notifier,
		logger:       logger,
		exportWidth:  opts.ExportWidth,
		exportHeight: opts.ExportHeight,
	}
	return s
}

// SetNotifier replaces the notifier, e.g. once the window exists.
func (s *Session) SetNotifier(n Notifier) { s.notifier = n }

// SaveFile returns the path Save and Load use.
func (s *Session) SaveFile() string { return s.store.Path }

func (s *Session) PointerDown(x, y float64) { s.Draw.PointerDown(x, y) }
func (s *Session) PointerMove(x, y float64) { s.Draw.PointerMove(x, y) }
func (s *Session) PointerUp(x, y float64)   { s.Draw.PointerUp(x, y) }
func (s *Session) SetKind(k state.Kind)     { s.Draw.SetKind(k) }
func (s *Session) SetColor(c state.Color)   { s.Draw.SetColor(c) }

// Stamp handles the Draw button.
func (s *Session) Stamp() {
	if !s.Draw.Stamp() {
		s.logger.Debug("draw button did nothing", zap.Stringer("kind", s.Draw.Kind()))
	}
}

// Clear handles the Clear button. There is no confirmation.
func (s *Session) Clear() {
	s.Draw.Clear()
	s.logger.Info("canvas cleared")
}

// Save writes the board to the save file.
func (s *Session) Save() {
	if err := s.store.Save(s.Board); err != nil {
		s.logger.Error("save failed", zap.Error(err))
		s.notifyError(fmt.Sprintf("An error occurred while saving shapes: %v", err))
		return
	}
	s.notifyInfo("Shapes saved successfully!")
}

// Load replaces the board with the save file's shapes.
func (s *Session) Load() {
	n, err := s.store.Load(s.Board)
	switch {
	case err == nil:
		s.notifyInfo("Shapes loaded successfully!")
	case errors.Is(err, persist.ErrNotFound):
		s.logger.Warn("no save file", zap.String("path", s.store.Path))
		s.notifyError("No saved shapes found!")
	default:
		s.logger.Error("load failed", zap.Error(err), zap.Int("loaded", n))
		s.notifyError(fmt.Sprintf("An error occurred while loading shapes: %v", err))
	}
}

// Export writes the board as an image or PDF to w and closes it.
func (s *Session) Export(w io.WriteCloser, format export.Format) {
	err := export.Write(w, format, s.Board.Shapes(), s.exportWidth, s.exportHeight)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		s.logger.Error("export failed", zap.String("format", string(format)), zap.Error(err))
		s.notifyError(fmt.Sprintf("An error occurred while exporting shapes: %v", err))
		return
	}
	s.logger.Info("board exported", zap.String("format", string(format)), zap.Int("count", s.Board.Len()))
	s.notifyInfo(fmt.Sprintf("Shapes exported as %s.", format))
}

func (s *Session) notifyInfo(msg string) {
	if s.notifier != nil {
		s.notifier.Info("Success", msg)
	}
}

func (s *Session) notifyError(msg string) {
	if s.notifier != nil {
		s.notifier.Error("Error", msg)
	}
}
