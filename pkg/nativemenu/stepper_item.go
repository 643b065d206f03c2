package nativemenu

import (
	"math"
	"strconv"
)

// StepperItem steps a number through [Min, Max]. At a bound it either stops
// or, with Wrap, continues from the other bound.
type StepperItem struct {
	*SlidableItem

	current float64
	value   *ScaledText

	Min       float64
	Max       float64
	Step      float64
	Wrap      bool
	Precision int    // Decimal places shown
	Suffix    string // Appended to the shown value, e.g. "%"

	OnValueChanged func(ValueChangedEvent[float64])
}

func NewStepperItem(title, description string, style Style, min, max, step, initial float64) *StepperItem {
	if max < min {
		min, max = max, min
	}
	if step <= 0 {
		step = 1
	}

	s := &StepperItem{
		SlidableItem: NewSlidableItem(title, description, style),
		value:        NewScaledText(PointF{}, "", style.TitleScale),
		Min:          min,
		Max:          max,
		Step:         step,
	}
	s.current = s.snap(initial)
	s.refreshText()
	return s
}

func (s *StepperItem) Value() float64 {
	return s.current
}

// SetValue clamps v into range, snaps it to the step grid and reports the
// change with DirectionUnknown.
func (s *StepperItem) SetValue(v float64) {
	s.change(s.snap(v), DirectionUnknown)
}

func (s *StepperItem) ValueElement() *ScaledText {
	return s.value
}

func (s *StepperItem) GoLeft() {
	next := s.current - s.Step
	if next < s.Min-s.Step/2 {
		if !s.Wrap {
			return
		}
		next = s.Max
	}
	s.change(s.snap(next), DirectionLeft)
}

func (s *StepperItem) GoRight() {
	next := s.current + s.Step
	if next > s.Max+s.Step/2 {
		if !s.Wrap {
			return
		}
		next = s.Min
	}
	s.change(s.snap(next), DirectionRight)
}

func (s *StepperItem) snap(v float64) float64 {
	v = math.Max(s.Min, math.Min(s.Max, v))
	snapped := s.Min + math.Round((v-s.Min)/s.Step)*s.Step
	return math.Min(s.Max, snapped)
}

func (s *StepperItem) change(next float64, dir ChangeDirection) {
	if next == s.current {
		return
	}
	old := s.current
	s.current = next
	s.refreshText()

	if s.OnValueChanged != nil {
		s.OnValueChanged(ValueChangedEvent[float64]{Old: old, New: next, Direction: dir})
	}
}

func (s *StepperItem) refreshText() {
	s.value.Text = strconv.FormatFloat(s.current, 'f', s.Precision, 64) + s.Suffix
}

func (s *StepperItem) Recalculate(pos PointF, size SizeF, selected bool) {
	s.refreshText()
	s.SlidableItem.Recalculate(pos, size, selected)
	s.placeValue(s.value, pos, selected)
}

func (s *StepperItem) Draw(r Renderer) {
	s.SlidableItem.Draw(r)
	s.value.Draw(r)
}
