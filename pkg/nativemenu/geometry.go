package nativemenu

// PointF is a position in logical screen units.
type PointF struct {
	X float32
	Y float32
}

// SizeF is a width and height in logical screen units. Negative values are
// allowed and simply propagate through layout arithmetic.
type SizeF struct {
	Width  float32
	Height float32
}

// Add returns p offset by dx, dy.
func (p PointF) Add(dx, dy float32) PointF {
	return PointF{X: p.X + dx, Y: p.Y + dy}
}

// IsEmpty reports whether the point is the origin.
func (p PointF) IsEmpty() bool {
	return p.X == 0 && p.Y == 0
}

// IsEmpty reports whether the size has no area.
func (s SizeF) IsEmpty() bool {
	return s.Width == 0 && s.Height == 0
}

// Square returns a SizeF with equal sides.
func Square(side float32) SizeF {
	return SizeF{Width: side, Height: side}
}
