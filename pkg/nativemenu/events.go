package nativemenu

// ChangeDirection tells which way a slidable value moved.
type ChangeDirection int

const (
	DirectionUnknown ChangeDirection = iota // Set programmatically
	DirectionLeft                           // GoLeft
	DirectionRight                          // GoRight
)

func (d ChangeDirection) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// ItemChangedEvent is passed to ListItem.OnItemChanged.
type ItemChangedEvent[T any] struct {
	Object    T
	Index     int
	Direction ChangeDirection
}

// ValueChangedEvent is passed to DynamicItem and StepperItem callbacks.
type ValueChangedEvent[T any] struct {
	Old       T
	New       T
	Direction ChangeDirection
}
