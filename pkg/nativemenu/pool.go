package nativemenu

import (
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/internal"
)

// poolEntry is a parent menu waiting on the back stack together with the
// row that was selected when its child opened.
type poolEntry struct {
	menu   *Menu
	resume int
}

// Pool shows one menu at a time and keeps the parents of the current menu
// for back navigation.
type Pool struct {
	current *Menu
	stack   []poolEntry

	// OnClosed fires when back is pressed on the root menu or Close is called.
	OnClosed func()
}

func NewPool() *Pool {
	return &Pool{}
}

// Open shows m as the root menu, discarding any history.
func (p *Pool) Open(m *Menu) {
	p.stack = p.stack[:0]
	p.current = m
	if m != nil {
		m.ResetInput()
		m.Recalculate()
	}
}

// Current returns the menu on screen, or nil when closed.
func (p *Pool) Current() *Menu {
	return p.current
}

// IsOpen reports whether a menu is on screen.
func (p *Pool) IsOpen() bool {
	return p.current != nil
}

// Depth returns the number of parents behind the current menu.
func (p *Pool) Depth() int {
	return len(p.stack)
}

// Push opens child on top of the current menu.
func (p *Pool) Push(child *Menu) {
	if child == nil {
		return
	}
	if p.current != nil {
		p.current.ResetInput()
		p.stack = append(p.stack, poolEntry{menu: p.current, resume: p.current.SelectedIndex()})
	}
	p.current = child
	child.ResetInput()
	child.Recalculate()

	internal.GetInternalLogger().Debug("Opened menu", "menu", child.Title(), "depth", len(p.stack))
}

// Back returns to the parent menu, restoring its selection. On the root
// menu it closes the pool. It reports whether a parent was restored.
func (p *Pool) Back() bool {
	if len(p.stack) == 0 {
		p.Close()
		return false
	}

	entry := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]

	if p.current != nil {
		p.current.ResetInput()
	}
	p.current = entry.menu
	p.current.ResetInput()
	if entry.resume >= 0 {
		_ = p.current.SetSelectedIndex(entry.resume)
	}
	p.current.Recalculate()
	return true
}

// Close hides every menu.
func (p *Pool) Close() {
	if p.current == nil {
		return
	}
	p.current.ResetInput()
	p.current = nil
	p.stack = p.stack[:0]

	if p.OnClosed != nil {
		p.OnClosed()
	}
}

// HandleButton forwards input to the current menu and performs the
// navigation it asks for.
func (p *Pool) HandleButton(button constants.VirtualButton, pressed bool) MenuAction {
	if p.current == nil {
		return MenuActionNone
	}
	return p.apply(p.current.HandleButton(button, pressed))
}

// Update forwards key repeats to the current menu.
func (p *Pool) Update() MenuAction {
	if p.current == nil {
		return MenuActionNone
	}
	return p.apply(p.current.Update())
}

func (p *Pool) apply(action MenuAction) MenuAction {
	switch action {
	case MenuActionOpenSubMenu:
		if sub, ok := p.current.SelectedItem().(*SubMenuItem); ok {
			p.Push(sub.Menu())
		}
	case MenuActionBack:
		p.Back()
	}
	return action
}

// Recalculate lays out the current menu.
func (p *Pool) Recalculate() {
	if p.current != nil {
		p.current.Recalculate()
	}
}

// Draw draws the current menu.
func (p *Pool) Draw(r Renderer) {
	if p.current != nil {
		p.current.Draw(r)
	}
}
