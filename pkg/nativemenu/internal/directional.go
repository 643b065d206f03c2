package internal

import (
	"time"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
)

// Direction represents a navigation direction.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// DirectionalInput tracks held directions and produces key-repeat events.
// Menus embed one and call Update every frame.
type DirectionalInput struct {
	held           map[Direction]bool
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewDirectionalInput creates a DirectionalInput with the default timing.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		held:           make(map[Direction]bool, 4),
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
		now:            time.Now,
	}
}

// SetClock replaces the time source.
func (d *DirectionalInput) SetClock(now func() time.Time) {
	d.now = now
	d.lastRepeatTime = now()
}

// DirectionFor maps a virtual button to a direction.
func DirectionFor(button constants.VirtualButton) Direction {
	switch button {
	case constants.VirtualButtonUp:
		return DirectionUp
	case constants.VirtualButtonDown:
		return DirectionDown
	case constants.VirtualButtonLeft:
		return DirectionLeft
	case constants.VirtualButtonRight:
		return DirectionRight
	default:
		return DirectionNone
	}
}

// SetHeld updates the held state for a virtual button.
// Returns true if the button was directional.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	dir := DirectionFor(button)
	if dir == DirectionNone {
		return false
	}

	if held && !d.held[dir] {
		d.lastRepeatTime = d.now()
		d.hasRepeated = false
	}
	d.held[dir] = held
	if !held {
		d.hasRepeated = false
	}
	return true
}

// IsHeld returns true if any direction is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return d.HeldDirection() != DirectionNone
}

// HeldDirection returns the held direction with priority up, down, left, right.
func (d *DirectionalInput) HeldDirection() Direction {
	for _, dir := range []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight} {
		if d.held[dir] {
			return dir
		}
	}
	return DirectionNone
}

// Update returns the direction to repeat this frame, or DirectionNone.
// The first repeat fires after the repeat delay, later ones after the interval.
func (d *DirectionalInput) Update() Direction {
	now := d.now()

	if !d.IsHeld() {
		d.lastRepeatTime = now
		d.hasRepeated = false
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if now.Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = now
		d.hasRepeated = true
		return d.HeldDirection()
	}

	return DirectionNone
}

// Reset clears all held directions and timing state.
func (d *DirectionalInput) Reset() {
	clear(d.held)
	d.hasRepeated = false
	d.lastRepeatTime = d.now()
}

// VirtualButton returns the VirtualButton for a Direction.
func (d Direction) VirtualButton() constants.VirtualButton {
	switch d {
	case DirectionUp:
		return constants.VirtualButtonUp
	case DirectionDown:
		return constants.VirtualButtonDown
	case DirectionLeft:
		return constants.VirtualButtonLeft
	case DirectionRight:
		return constants.VirtualButtonRight
	default:
		return constants.VirtualButtonUnassigned
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}
