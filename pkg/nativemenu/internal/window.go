package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Window wraps the SDL window and renderer.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	hasVSync        bool
	lastPresentTime uint64
}

func initWindow(title string, winOpts WindowOptions) (*Window, error) {
	width, height := winOpts.Width, winOpts.Height

	if width == 0 || height == 0 {
		displayMode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			GetInternalLogger().Error("Failed to get display mode", "error", err)
			width, height = 1280, 720
		} else {
			width, height = displayMode.W, displayMode.H
		}
	}

	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)

	if constants.IsDevMode() {
		winOpts.Borderless = false
		x, y = 50, 50
		width = envDimension(constants.WindowWidthEnvVar, 1280)
		height = envDimension(constants.WindowHeightEnvVar, 720)
	}

	GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	sdlWindow, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		GetInternalLogger().Warn("Accelerated renderer unavailable; falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			sdlWindow.Destroy()
			return nil, fmt.Errorf("create renderer: %w", err)
		}
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   sdlWindow,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}, nil
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		GetInternalLogger().Warn("Invalid window dimension; using default", "var", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (window *Window) closeWindow() {
	window.Renderer.Destroy()
	window.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

func (window *Window) GetWidth() int32 {
	w, _ := window.Window.GetSize()
	return w
}

func (window *Window) GetHeight() int32 {
	_, h := window.Window.GetSize()
	return h
}

// Clear fills the frame with opaque black.
func (window *Window) Clear() {
	window.Renderer.SetDrawColor(0, 0, 0, 255)
	window.Renderer.Clear()
}

// Present swaps the render buffer and holds ~60fps when VSync is missing.
func (window *Window) Present() {
	window.Renderer.Present()
	if !window.hasVSync {
		frame := uint64(constants.FrameDuration.Milliseconds())
		now := sdl.GetTicks64()
		if elapsed := now - window.lastPresentTime; elapsed < frame {
			sdl.Delay(uint32(frame - elapsed))
		}
		window.lastPresentTime = sdl.GetTicks64()
	}
}
