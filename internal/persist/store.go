package persist

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"ShapeBoard/internal/state"

	"go.uber.org/zap"
)

// DefaultPath is the save file, relative to the working directory.
const DefaultPath = "saved_shapes.json"

// Store reads and writes one save file.
type Store struct {
	Path   string
	logger *zap.Logger
}

// NewStore returns a Store for path, or DefaultPath when path is empty.
func NewStore(path string, logger *zap.Logger) *Store {
	if path == "" {
		path = DefaultPath
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{Path: path, logger: logger}
}

// Save writes every shape on the board to the file, replacing its contents.
// The board is not modified.
func (s *Store) Save(board *state.Board) error {
	shapes := board.Shapes()
	data, err := Encode(shapes)
	if err != nil {
		return &Error{Kind: IOFailure, Op: "save", Path: s.Path, Err: err}
	}
	if err := writeFile(s.Path, data); err != nil {
		return &Error{Kind: IOFailure, Op: "save", Path: s.Path, Err: err}
	}
	s.logger.Info("shapes saved", zap.String("path", s.Path), zap.Int("count", len(shapes)))
	return nil
}

func writeFile(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	_, err = f.Write(data)
	return err
}

// Load clears the board and fills it from the file, returning how many
// shapes were added. Records with an unknown geometry are skipped. If a
// record is malformed, the shapes loaded before it stay on the board.
func (s *Store) Load(board *state.Board) (int, error) {
	board.Clear()

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, &Error{Kind: FileNotFound, Op: "load", Path: s.Path, Err: fmt.Errorf("%w: %w", ErrNotFound, err)}
		}
		return 0, &Error{Kind: IOFailure, Op: "load", Path: s.Path, Err: err}
	}

	records, decodeErr := Decode(data)
	added := 0
	for i, r := range records {
		shape, ok, err := r.Shape()
		if err != nil {
			return added, &Error{Kind: ParseFailure, Op: "load", Path: s.Path, Err: fmt.Errorf("record %d: %w", i, err)}
		}
		if !ok {
			s.logger.Debug("skipping unknown geometry", zap.Int("record", i), zap.String("geometry", string(r.Geometry)))
			continue
		}
		board.Add(shape)
		added++
	}
	if decodeErr != nil {
		return added, &Error{Kind: ParseFailure, Op: "load", Path: s.Path, Err: decodeErr}
	}

	s.logger.Info("shapes loaded", zap.String("path", s.Path), zap.Int("count", added))
	return added, nil
}
