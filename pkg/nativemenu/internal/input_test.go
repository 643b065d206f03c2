package internal

import (
	"testing"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestButtonForKey(t *testing.T) {
	cases := map[sdl.Keycode]constants.VirtualButton{
		sdl.K_UP:        constants.VirtualButtonUp,
		sdl.K_DOWN:      constants.VirtualButtonDown,
		sdl.K_LEFT:      constants.VirtualButtonLeft,
		sdl.K_RIGHT:     constants.VirtualButtonRight,
		sdl.K_RETURN:    constants.VirtualButtonA,
		sdl.K_ESCAPE:    constants.VirtualButtonB,
		sdl.K_BACKSPACE: constants.VirtualButtonB,
		sdl.K_SPACE:     constants.VirtualButtonStart,
		sdl.K_F1:        constants.VirtualButtonUnassigned,
	}
	for key, want := range cases {
		assert.Equal(t, want, ButtonForKey(key), "key %d", key)
	}
}

func TestProcessSDLEvent(t *testing.T) {
	p := &InputProcessor{controllers: map[sdl.JoystickID]*sdl.GameController{}}

	ev := p.ProcessSDLEvent(&sdl.KeyboardEvent{State: sdl.PRESSED, Keysym: sdl.Keysym{Sym: sdl.K_LEFT}})
	if assert.NotNil(t, ev) {
		assert.Equal(t, Event{Button: constants.VirtualButtonLeft, Pressed: true, Source: "keyboard"}, *ev)
	}

	assert.Nil(t, p.ProcessSDLEvent(&sdl.KeyboardEvent{State: sdl.PRESSED, Repeat: 1, Keysym: sdl.Keysym{Sym: sdl.K_LEFT}}),
		"OS key repeat is ignored")

	ev = p.ProcessSDLEvent(&sdl.ControllerButtonEvent{State: sdl.RELEASED, Button: uint8(sdl.CONTROLLER_BUTTON_DPAD_DOWN)})
	if assert.NotNil(t, ev) {
		assert.Equal(t, Event{Button: constants.VirtualButtonDown, Pressed: false, Source: "controller"}, *ev)
	}

	assert.Nil(t, p.ProcessSDLEvent(&sdl.QuitEvent{}))
}

func TestTranslateEvdev(t *testing.T) {
	assert.Equal(t,
		[]Event{{Button: constants.VirtualButtonA, Pressed: true, Source: "evdev"}},
		TranslateEvdev(evdev.EV_KEY, evdev.BTN_SOUTH, 1))

	assert.Equal(t,
		[]Event{{Button: constants.VirtualButtonRight, Pressed: false, Source: "evdev"}},
		TranslateEvdev(evdev.EV_KEY, evdev.BTN_DPAD_RIGHT, 0))

	assert.Nil(t, TranslateEvdev(evdev.EV_KEY, evdev.KEY_UP, 2), "autorepeat is dropped")
	assert.Nil(t, TranslateEvdev(evdev.EV_KEY, evdev.KEY_VOLUMEUP, 1))

	assert.Equal(t,
		[]Event{{Button: constants.VirtualButtonUp, Pressed: true, Source: "evdev"}},
		TranslateEvdev(evdev.EV_ABS, evdev.ABS_HAT0Y, -1))

	assert.Equal(t,
		[]Event{
			{Button: constants.VirtualButtonLeft, Pressed: false, Source: "evdev"},
			{Button: constants.VirtualButtonRight, Pressed: false, Source: "evdev"},
		},
		TranslateEvdev(evdev.EV_ABS, evdev.ABS_HAT0X, 0))

	assert.Nil(t, TranslateEvdev(evdev.EV_ABS, evdev.ABS_X, 100))
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", ParseLogLevel(" Debug ").String())
	assert.Equal(t, "WARN", ParseLogLevel("warning").String())
	assert.Equal(t, "ERROR", ParseLogLevel("error").String())
	assert.Equal(t, "INFO", ParseLogLevel("verbose").String())
}

func TestWindowOptionsFlags(t *testing.T) {
	assert.True(t, WindowOptions{}.IsZero())

	flags := WindowOptions{Resizable: true, Borderless: true}.ToSDLFlags()
	assert.NotZero(t, flags&sdl.WINDOW_SHOWN)
	assert.NotZero(t, flags&sdl.WINDOW_RESIZABLE)
	assert.NotZero(t, flags&sdl.WINDOW_BORDERLESS)
	assert.Zero(t, flags&sdl.WINDOW_FULLSCREEN)

	assert.Zero(t, WindowOptions{Hidden: true}.ToSDLFlags()&sdl.WINDOW_SHOWN)
}
