package persist

import (
	"encoding/json"
	"testing"

	"ShapeBoard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeWireFormat(t *testing.T) {
	shapes := []state.Shape{
		state.NewLine(10, 10, 200, 200, state.ColorRed),
		state.NewOval(100, 100, 300, 300, state.ColorGreen),
		state.NewRectangle(50, 50, 250, 150, state.ColorBlue),
		state.NewShape(state.KindPoint, state.ColorRed, 0, 0, 5, 5, state.DefaultPointRadius),
	}
	data, err := Encode(shapes)
	require.NoError(t, err)

	want := `[
		[[10,10,200,200],"red","","line"],
		[[100,100,300,300],"","green","oval"],
		[[50,50,250,150],"","blue","rectangle"],
		[[3,3,7,7],"red","black","oval"]
	]`
	assert.JSONEq(t, want, string(data))
}

func TestEncodeEmptyBoard(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestDecodeAcceptsFloatsAndCase(t *testing.T) {
	records, err := Decode([]byte(`[[[10.0, 10.5, 200.0, 200.0], "Black", "", "line"]]`))
	require.NoError(t, err)
	require.Len(t, records, 1)

	s, ok, err := records[0].Shape()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, [4]float64{10, 10.5, 200, 200}, s.Coords)
	assert.Equal(t, state.ColorBlack, s.Fill)
}

func TestDecodeReturnsRecordsBeforeBadOne(t *testing.T) {
	records, err := Decode([]byte(`[
		[[1,1,2,2], "", "red", "oval"],
		[[1,1,2,2], "", "red"],
		[[3,3,4,4], "", "red", "oval"]
	]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")
	assert.Len(t, records, 1)
}

func TestDecodeRejectsNonArray(t *testing.T) {
	_, err := Decode([]byte(`{"shapes": []}`))
	assert.Error(t, err)
}

func TestRecordShapeSlots(t *testing.T) {
	line := Record{Coords: []float64{0, 0, 1, 1}, Fill: "blue", Outline: "red", Geometry: state.GeometryLine}
	s, ok, err := line.Shape()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, state.ColorBlue, s.Stroke(), "line color comes from the fill slot")

	oval := Record{Coords: []float64{0, 0, 1, 1}, Fill: "blue", Outline: "red", Geometry: state.GeometryOval}
	s, ok, err = oval.Shape()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, state.ColorRed, s.Outline)
	assert.Equal(t, state.ColorNone, s.Fill, "oval fill is not restored")
}

func TestRecordShapeUnknownGeometry(t *testing.T) {
	r := Record{Coords: []float64{1, 2, 3, 4, 5, 6}, Geometry: "polygon"}
	_, ok, err := r.Shape()
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestRecordShapeBadCoords(t *testing.T) {
	r := Record{Coords: []float64{1, 2}, Outline: "red", Geometry: state.GeometryRectangle}
	_, _, err := r.Shape()
	assert.Error(t, err)
}

func TestRecordMarshalNeverNull(t *testing.T) {
	data, err := json.Marshal(Record{Geometry: state.GeometryOval})
	require.NoError(t, err)
	assert.JSONEq(t, `[[],"","","oval"]`, string(data))
}

func TestDecodeRejectsNull(t *testing.T) {
	_, err := Decode([]byte(" null "))
	assert.Error(t, err)

	records, err := Decode([]byte("[]"))
	require.NoError(t, err)
	assert.Empty(t, records)
}
