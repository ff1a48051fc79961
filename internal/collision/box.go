package collision

// Box represents an axis-aligned rectangular boundary anchored at its
// top-left corner. Both actors, attack hitboxes and strike areas are boxes.
type Box struct {
	X      float64 // Left edge
	Y      float64 // Top edge
	Width  float64
	Height float64
}

// NewBox creates a box from its top-left corner and size.
func NewBox(x, y, width, height float64) Box {
	return Box{X: x, Y: y, Width: width, Height: height}
}

// NewBoxCentered creates a box centered on the given point.
func NewBoxCentered(cx, cy, width, height float64) Box {
	return Box{X: cx - width/2, Y: cy - height/2, Width: width, Height: height}
}

func (b Box) Left() float64   { return b.X }
func (b Box) Right() float64  { return b.X + b.Width }
func (b Box) Top() float64    { return b.Y }
func (b Box) Bottom() float64 { return b.Y + b.Height }

// CenterX returns the horizontal center of the box.
func (b Box) CenterX() float64 { return b.X + b.Width/2 }

// CenterY returns the vertical center of the box.
func (b Box) CenterY() float64 { return b.Y + b.Height/2 }

// Overlaps reports whether the two boxes intersect. Edge-touching boxes do
// not count as overlapping.
func (b Box) Overlaps(other Box) bool {
	return b.Left() < other.Right() &&
		b.Right() > other.Left() &&
		b.Top() < other.Bottom() &&
		b.Bottom() > other.Top()
}

// Shifted returns a copy of the box moved by (dx, dy).
func (b Box) Shifted(dx, dy float64) Box {
	b.X += dx
	b.Y += dy
	return b
}

// ClampHorizontal keeps the box's left and right edges inside [minX, maxX]
// and returns the adjusted box.
func (b Box) ClampHorizontal(minX, maxX float64) Box {
	if b.Left() < minX {
		b.X = minX
	}
	if b.Right() > maxX {
		b.X = maxX - b.Width
	}
	return b
}

// ClampBottom keeps the box's bottom edge at or above groundY and reports
// whether it was resting on the ground.
func (b Box) ClampBottom(groundY float64) (Box, bool) {
	if b.Bottom() >= groundY {
		b.Y = groundY - b.Height
		return b, true
	}
	return b, false
}
