package export

import (
	"image"
	"image/color"
	"io"

	"ShapeBoard/internal/state"

	"github.com/fogleman/gg"
)

const strokeWidth = 1.5

// Render paints shapes in order onto a white image of at least width x height.
func Render(shapes []state.Shape, width, height int) image.Image {
	return paint(shapes, width, height).Image()
}

// WritePNG renders shapes and encodes the image to w.
func WritePNG(w io.Writer, shapes []state.Shape, width, height int) error {
	return paint(shapes, width, height).EncodePNG(w)
}

func paint(shapes []state.Shape, width, height int) *gg.Context {
	w, h := pageSize(shapes, width, height)
	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetLineWidth(strokeWidth)

	for _, s := range shapes {
		drawShapePNG(dc, s)
	}
	return dc
}

func drawShapePNG(dc *gg.Context, s state.Shape) {
	minX, minY, maxX, maxY := s.Box()
	switch s.Geometry {
	case state.GeometryLine:
		if c := s.Fill.RGBA(); c != nil {
			dc.DrawLine(s.Coords[0], s.Coords[1], s.Coords[2], s.Coords[3])
			dc.SetColor(c)
			dc.Stroke()
		}
		return
	case state.GeometryOval:
		dc.DrawEllipse((minX+maxX)/2, (minY+maxY)/2, (maxX-minX)/2, (maxY-minY)/2)
	case state.GeometryRectangle:
		dc.DrawRectangle(minX, minY, maxX-minX, maxY-minY)
	default:
		return
	}

	if c := s.Fill.RGBA(); c != nil {
		dc.SetColor(c)
		dc.FillPreserve()
	}
	if c := s.Outline.RGBA(); c != nil {
		dc.SetColor(c)
		dc.Stroke()
	} else {
		dc.ClearPath()
	}
}
