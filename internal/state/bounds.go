package state

// Area is an axis-aligned rectangle on the canvas.
type Area struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// MaxX returns the right edge.
func (a Area) MaxX() float64 { return a.X + a.Width }

// MaxY returns the bottom edge.
func (a Area) MaxY() float64 { return a.Y + a.Height }

// Union returns the smallest area covering both a and o.
func (a Area) Union(o Area) Area {
	minX := a.X
	if o.X < minX {
		minX = o.X
	}
	minY := a.Y
	if o.Y < minY {
		minY = o.Y
	}
	maxX := a.MaxX()
	if o.MaxX() > maxX {
		maxX = o.MaxX()
	}
	maxY := a.MaxY()
	if o.MaxY() > maxY {
		maxY = o.MaxY()
	}
	return Area{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Area returns the shape's bounding box.
func (s Shape) Area() Area {
	minX, minY, maxX, maxY := s.Box()
	return Area{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Bounds returns the box covering every shape grown by padding on each side.
// ok is false when there are no shapes.
func Bounds(shapes []Shape, padding float64) (area Area, ok bool) {
	if len(shapes) == 0 {
		return Area{}, false
	}
	area = shapes[0].Area()
	for _, s := range shapes[1:] {
		area = area.Union(s.Area())
	}
	return Area{
		X:      area.X - padding,
		Y:      area.Y - padding,
		Width:  area.Width + 2*padding,
		Height: area.Height + 2*padding,
	}, true
}

// Bounds returns the padded box covering the board's shapes.
func (b *Board) Bounds(padding float64) (Area, bool) {
	return Bounds(b.Shapes(), padding)
}
