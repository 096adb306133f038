package export

import (
	"io"

	"ShapeBoard/internal/state"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF writes shapes as vector drawing on a single page. One canvas
// pixel maps to one point.
func WritePDF(w io.Writer, shapes []state.Shape, width, height int) error {
	pw, ph := pageSize(shapes, width, height)
	// Portrait keeps Wd/Ht as given; "L" would swap them.
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(pw), Ht: float64(ph)},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()
	p.SetLineWidth(strokeWidth)

	for _, s := range shapes {
		drawShapePDF(p, s)
	}
	return p.Output(w)
}

func drawShapePDF(p *gofpdf.Fpdf, s state.Shape) {
	minX, minY, maxX, maxY := s.Box()
	if s.Geometry == state.GeometryLine {
		if s.Fill == state.ColorNone {
			return
		}
		p.SetDrawColor(rgb(s.Fill))
		p.Line(s.Coords[0], s.Coords[1], s.Coords[2], s.Coords[3])
		return
	}

	style := ""
	if s.Fill != state.ColorNone {
		p.SetFillColor(rgb(s.Fill))
		style += "F"
	}
	if s.Outline != state.ColorNone {
		p.SetDrawColor(rgb(s.Outline))
		style += "D"
	}
	if style == "" {
		return
	}

	switch s.Geometry {
	case state.GeometryOval:
		p.Ellipse((minX+maxX)/2, (minY+maxY)/2, (maxX-minX)/2, (maxY-minY)/2, 0, style)
	case state.GeometryRectangle:
		p.Rect(minX, minY, maxX-minX, maxY-minY, style)
	}
}
