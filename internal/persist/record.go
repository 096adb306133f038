package persist

import (
	"encoding/json"
	"fmt"

	"ShapeBoard/internal/state"
)

// Record is one saved shape, stored as the JSON array
// [coords, fill, outline, geometry].
type Record struct {
	Coords   []float64
	Fill     string
	Outline  string
	Geometry state.Geometry
}

// RecordOf converts a board shape to its saved form.
func RecordOf(s state.Shape) Record {
	return Record{
		Coords:   append([]float64(nil), s.Coords[:]...),
		Fill:     s.Fill.Name(),
		Outline:  s.Outline.Name(),
		Geometry: s.Geometry,
	}
}

func (r Record) MarshalJSON() ([]byte, error) {
	coords := r.Coords
	if coords == nil {
		coords = []float64{}
	}
	return json.Marshal([]any{coords, r.Fill, r.Outline, string(r.Geometry)})
}

func (r *Record) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("record is not an array: %w", err)
	}
	if len(fields) != 4 {
		return fmt.Errorf("record has %d fields, want 4", len(fields))
	}
	var out Record
	if err := json.Unmarshal(fields[0], &out.Coords); err != nil {
		return fmt.Errorf("coords: %w", err)
	}
	if err := json.Unmarshal(fields[1], &out.Fill); err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	if err := json.Unmarshal(fields[2], &out.Outline); err != nil {
		return fmt.Errorf("outline: %w", err)
	}
	var geometry string
	if err := json.Unmarshal(fields[3], &geometry); err != nil {
		return fmt.Errorf("geometry: %w", err)
	}
	out.Geometry = state.Geometry(geometry)
	*r = out
	return nil
}

// Shape rebuilds the board shape for r. ok is false for geometries this
// version does not know, which callers skip.
//
// A line takes its color from the fill slot; ovals and rectangles from the
// outline slot. Save writes lines the same way, so files round-trip.
func (r Record) Shape() (s state.Shape, ok bool, err error) {
	switch r.Geometry {
	case state.GeometryLine, state.GeometryOval, state.GeometryRectangle:
	default:
		return state.Shape{}, false, nil
	}

	if len(r.Coords) != 4 {
		return state.Shape{}, false, fmt.Errorf("%s has %d coords, want 4", r.Geometry, len(r.Coords))
	}
	x1, y1, x2, y2 := r.Coords[0], r.Coords[1], r.Coords[2], r.Coords[3]

	switch r.Geometry {
	case state.GeometryLine:
		c, err := state.ParseColor(r.Fill)
		if err != nil {
			return state.Shape{}, false, err
		}
		return state.NewLine(x1, y1, x2, y2, c), true, nil
	case state.GeometryOval:
		c, err := state.ParseColor(r.Outline)
		if err != nil {
			return state.Shape{}, false, err
		}
		return state.NewOval(x1, y1, x2, y2, c), true, nil
	default:
		c, err := state.ParseColor(r.Outline)
		if err != nil {
			return state.Shape{}, false, err
		}
		return state.NewRectangle(x1, y1, x2, y2, c), true, nil
	}
}
