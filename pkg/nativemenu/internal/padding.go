package internal

// Padding defines spacing on all four sides of a box.
type Padding struct {
	Top    float32
	Right  float32
	Bottom float32
	Left   float32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value float32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Horizontal returns Left + Right.
func (p Padding) Horizontal() float32 {
	return p.Left + p.Right
}

// Vertical returns Top + Bottom.
func (p Padding) Vertical() float32 {
	return p.Top + p.Bottom
}
