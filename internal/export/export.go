// Package export renders board shapes to PNG and PDF.
package export

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strings"

	"ShapeBoard/internal/state"
)

// Format is an export file type.
type Format string

const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "png":
		return FormatPNG, nil
	case "pdf":
		return FormatPDF, nil
	}
	return "", fmt.Errorf("unsupported export type %q (want .png or .pdf)", filepath.Ext(path))
}

// margin is kept between the furthest shape and the page edge.
const margin = 10

// pageSize returns a size of at least minW x minH that also fits every shape.
func pageSize(shapes []state.Shape, minW, minH int) (int, int) {
	w, h := minW, minH
	if area, ok := state.Bounds(shapes, margin); ok {
		if need := int(math.Ceil(area.MaxX())); need > w {
			w = need
		}
		if need := int(math.Ceil(area.MaxY())); need > h {
			h = need
		}
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

func rgb(c state.Color) (r, g, b int) {
	paint := c.RGBA()
	if paint == nil {
		return 0, 0, 0
	}
	n := color.NRGBAModel.Convert(paint).(color.NRGBA)
	return int(n.R), int(n.G), int(n.B)
}

// Write encodes shapes to w in the given format.
func Write(w io.Writer, format Format, shapes []state.Shape, width, height int) error {
	switch format {
	case FormatPNG:
		return WritePNG(w, shapes, width, height)
	case FormatPDF:
		return WritePDF(w, shapes, width, height)
	}
	return fmt.Errorf("unsupported export format %q", format)
}
