// Package persist saves board shapes to a JSON file and loads them back.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"

	"ShapeBoard/internal/state"
)

// Encode serializes shapes in board order.
func Encode(shapes []state.Shape) ([]byte, error) {
	records := make([]Record, 0, len(shapes))
	for _, s := range shapes {
		records = append(records, RecordOf(s))
	}
	return json.Marshal(records)
}

// Decode parses a saved document. When a record is malformed the records
// before it are returned along with the error.
func Decode(data []byte) ([]Record, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("document is not a list of shapes")
	}
	records := make([]Record, 0, len(raw))
	for i, msg := range raw {
		var r Record
		if err := json.Unmarshal(msg, &r); err != nil {
			return records, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, r)
	}
	return records, nil
}
