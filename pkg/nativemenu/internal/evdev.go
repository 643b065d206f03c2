package internal

import (
	"fmt"
	"sync"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

const evdevBufferSize = 32

// EvdevSource reads d-pad and face buttons straight from a Linux input
// device, for handhelds whose buttons are not exposed through SDL.
type EvdevSource struct {
	device  *evdev.InputDevice
	path    string
	events  chan Event
	running *atomic.Bool
	wg      sync.WaitGroup
}

// OpenEvdevSource opens the device and starts reading it in the background.
func OpenEvdevSource(path string) (*EvdevSource, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open evdev device %s: %w", path, err)
	}

	name, _ := device.Name()
	GetInternalLogger().Debug("Opened evdev device", "path", path, "name", name)

	s := &EvdevSource{
		device:  device,
		path:    path,
		events:  make(chan Event, evdevBufferSize),
		running: atomic.NewBool(true),
	}

	s.wg.Add(1)
	go s.read()

	return s, nil
}

// Events delivers virtual button events. The channel is closed when the
// reader stops.
func (s *EvdevSource) Events() <-chan Event {
	return s.events
}

func (s *EvdevSource) read() {
	defer s.wg.Done()
	defer close(s.events)

	for s.running.Load() {
		ev, err := s.device.ReadOne()
		if err != nil {
			if s.running.Load() {
				GetInternalLogger().Error("evdev read failed", "path", s.path, "error", err)
			}
			return
		}

		for _, out := range TranslateEvdev(ev.Type, ev.Code, ev.Value) {
			select {
			case s.events <- out:
			default:
				GetInternalLogger().Warn("evdev event dropped; consumer too slow", "button", out.Button.GetName())
			}
		}
	}
}

// Close stops the reader and releases the device.
func (s *EvdevSource) Close() error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}
	err := s.device.Close()
	s.wg.Wait()
	return err
}

// TranslateEvdev maps a raw key or hat event. Key autorepeat (value 2) is
// dropped because menus repeat on their own.
func TranslateEvdev(typ evdev.EvType, code evdev.EvCode, value int32) []Event {
	switch typ {
	case evdev.EV_KEY:
		if value != 0 && value != 1 {
			return nil
		}
		button := buttonForEvdevKey(code)
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return []Event{{Button: button, Pressed: value == 1, Source: "evdev"}}

	case evdev.EV_ABS:
		switch code {
		case evdev.ABS_HAT0X:
			return hatAxisEvents(value, constants.VirtualButtonLeft, constants.VirtualButtonRight)
		case evdev.ABS_HAT0Y:
			return hatAxisEvents(value, constants.VirtualButtonUp, constants.VirtualButtonDown)
		}
	}
	return nil
}

// hatAxisEvents turns -1/0/1 into a press of neg or pos, or a release of both.
func hatAxisEvents(value int32, neg, pos constants.VirtualButton) []Event {
	switch {
	case value < 0:
		return []Event{{Button: neg, Pressed: true, Source: "evdev"}}
	case value > 0:
		return []Event{{Button: pos, Pressed: true, Source: "evdev"}}
	default:
		return []Event{
			{Button: neg, Pressed: false, Source: "evdev"},
			{Button: pos, Pressed: false, Source: "evdev"},
		}
	}
}

func buttonForEvdevKey(code evdev.EvCode) constants.VirtualButton {
	switch code {
	case evdev.KEY_UP, evdev.BTN_DPAD_UP:
		return constants.VirtualButtonUp
	case evdev.KEY_DOWN, evdev.BTN_DPAD_DOWN:
		return constants.VirtualButtonDown
	case evdev.KEY_LEFT, evdev.BTN_DPAD_LEFT:
		return constants.VirtualButtonLeft
	case evdev.KEY_RIGHT, evdev.BTN_DPAD_RIGHT:
		return constants.VirtualButtonRight
	case evdev.KEY_ENTER, evdev.BTN_SOUTH:
		return constants.VirtualButtonA
	case evdev.KEY_ESC, evdev.KEY_BACKSPACE, evdev.BTN_EAST:
		return constants.VirtualButtonB
	case evdev.BTN_START:
		return constants.VirtualButtonStart
	case evdev.BTN_SELECT:
		return constants.VirtualButtonSelect
	default:
		return constants.VirtualButtonUnassigned
	}
}
