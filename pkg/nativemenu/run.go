package nativemenu

import (
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Run shows the pool until it closes or the window is closed. Init must
// have succeeded.
func Run(pool *Pool) error {
	window := internal.GetWindow()
	if window == nil {
		return NewInfrastructureError("run", ErrNotInitialized)
	}

	renderer := NewSDLRenderer(window.Renderer, internal.Fonts.Primary)
	defer renderer.Destroy()

	processor := internal.GetInputProcessor()

	var evdevEvents <-chan internal.Event
	if evdevSource != nil {
		evdevEvents = evdevSource.Events()
	}

	pool.Recalculate()

	timeout := int(constants.FrameDuration.Milliseconds())

	for pool.IsOpen() {
		if event := sdl.WaitEventTimeout(timeout); event != nil {
			switch event.(type) {
			case *sdl.QuitEvent:
				internal.GetInternalLogger().Debug("Quit requested")
				pool.Close()
				return nil

			case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent:
				if in := processor.ProcessSDLEvent(event); in != nil {
					pool.HandleButton(in.Button, in.Pressed)
				}
			}
		}

		evdevEvents = drainEvdev(evdevEvents, pool)

		pool.Update()

		if !pool.IsOpen() {
			break
		}

		window.Clear()
		pool.Draw(renderer)
		window.Present()
	}

	return nil
}

// drainEvdev applies pending evdev events without blocking. It returns nil
// once the source has shut down.
func drainEvdev(events <-chan internal.Event, pool *Pool) <-chan internal.Event {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			pool.HandleButton(ev.Button, ev.Pressed)
		default:
			return events
		}
	}
}
