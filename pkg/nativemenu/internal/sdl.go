package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// Init brings up SDL video, controllers, SDL_ttf, the window and the font.
func Init(title string, winOpts WindowOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("ttf init: %w", err)
	}

	InitInputProcessor()

	if winOpts.IsZero() {
		winOpts = WindowOptions{Resizable: true}
	}

	w, err := initWindow(title, winOpts)
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return err
	}
	window = w

	if err := initFonts(GetTheme()); err != nil {
		window.closeWindow()
		ttf.Quit()
		sdl.Quit()
		return err
	}

	return nil
}

func SDLCleanup() {
	if window != nil {
		window.closeWindow()
		window = nil
	}
	GetInputProcessor().CloseAllControllers()
	closeFonts()
	ttf.Quit()
	sdl.Quit()
	CloseLogger()
}
