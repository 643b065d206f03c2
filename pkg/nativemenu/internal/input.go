package internal

import (
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Event is a virtual button transition produced by an input source.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Source  string
}

// InputProcessor maps SDL keyboard and game controller events to virtual
// buttons and owns the opened game controllers.
type InputProcessor struct {
	controllers map[sdl.JoystickID]*sdl.GameController
}

var inputProcessor *InputProcessor

func InitInputProcessor() *InputProcessor {
	inputProcessor = &InputProcessor{controllers: make(map[sdl.JoystickID]*sdl.GameController)}
	inputProcessor.openControllers()
	return inputProcessor
}

func GetInputProcessor() *InputProcessor {
	if inputProcessor == nil {
		inputProcessor = &InputProcessor{controllers: make(map[sdl.JoystickID]*sdl.GameController)}
	}
	return inputProcessor
}

func (p *InputProcessor) openControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		controller := sdl.GameControllerOpen(i)
		if controller == nil {
			GetInternalLogger().Warn("Failed to open game controller", "index", i, "error", sdl.GetError())
			continue
		}
		id := controller.Joystick().InstanceID()
		p.controllers[id] = controller
		GetInternalLogger().Debug("Opened game controller", "index", i, "name", controller.Name())
	}
}

// CloseAllControllers releases every opened game controller.
func (p *InputProcessor) CloseAllControllers() {
	for id, controller := range p.controllers {
		controller.Close()
		delete(p.controllers, id)
	}
}

// ProcessSDLEvent returns the virtual button event for e, or nil when e is
// not an input event the toolkit understands.
func (p *InputProcessor) ProcessSDLEvent(e sdl.Event) *Event {
	switch ev := e.(type) {
	case *sdl.KeyboardEvent:
		if ev.Repeat != 0 {
			return nil
		}
		button := ButtonForKey(ev.Keysym.Sym)
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &Event{Button: button, Pressed: ev.State == sdl.PRESSED, Source: "keyboard"}

	case *sdl.ControllerButtonEvent:
		button := ButtonForControllerButton(ev.Button)
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &Event{Button: button, Pressed: ev.State == sdl.PRESSED, Source: "controller"}
	}

	return nil
}

// ButtonForKey maps keyboard keys: arrows, Return/A, Escape/Backspace/B.
func ButtonForKey(key sdl.Keycode) constants.VirtualButton {
	switch key {
	case sdl.K_UP:
		return constants.VirtualButtonUp
	case sdl.K_DOWN:
		return constants.VirtualButtonDown
	case sdl.K_LEFT:
		return constants.VirtualButtonLeft
	case sdl.K_RIGHT:
		return constants.VirtualButtonRight
	case sdl.K_RETURN, sdl.K_a:
		return constants.VirtualButtonA
	case sdl.K_ESCAPE, sdl.K_BACKSPACE, sdl.K_b:
		return constants.VirtualButtonB
	case sdl.K_SPACE:
		return constants.VirtualButtonStart
	case sdl.K_TAB:
		return constants.VirtualButtonSelect
	default:
		return constants.VirtualButtonUnassigned
	}
}

func ButtonForControllerButton(button uint8) constants.VirtualButton {
	switch int(button) {
	case int(sdl.CONTROLLER_BUTTON_DPAD_UP):
		return constants.VirtualButtonUp
	case int(sdl.CONTROLLER_BUTTON_DPAD_DOWN):
		return constants.VirtualButtonDown
	case int(sdl.CONTROLLER_BUTTON_DPAD_LEFT):
		return constants.VirtualButtonLeft
	case int(sdl.CONTROLLER_BUTTON_DPAD_RIGHT):
		return constants.VirtualButtonRight
	case int(sdl.CONTROLLER_BUTTON_A):
		return constants.VirtualButtonA
	case int(sdl.CONTROLLER_BUTTON_B):
		return constants.VirtualButtonB
	case int(sdl.CONTROLLER_BUTTON_START):
		return constants.VirtualButtonStart
	case int(sdl.CONTROLLER_BUTTON_BACK):
		return constants.VirtualButtonSelect
	default:
		return constants.VirtualButtonUnassigned
	}
}
