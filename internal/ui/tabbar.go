package ui

import "sync"

// TabBar holds whether the tab bar is usable. Screens hide it while an
// action sheet is open so the user cannot switch tabs underneath it.
type TabBar struct {
	mu        sync.Mutex
	hidden    bool
	listeners []func(hidden bool)
}

// NewTabBar creates a visible tab bar state
func NewTabBar() *TabBar {
	return &TabBar{}
}

// Hidden reports whether the tab bar is currently hidden
func (t *TabBar) Hidden() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hidden
}

// Hide hides the tab bar
func (t *TabBar) Hide() { t.set(true) }

// Show shows the tab bar
func (t *TabBar) Show() { t.set(false) }

// OnChange registers fn to run after every visibility change
func (t *TabBar) OnChange(fn func(hidden bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners = append(t.listeners, fn)
}

func (t *TabBar) set(hidden bool) {
	t.mu.Lock()
	if t.hidden == hidden {
		t.mu.Unlock()
		return
	}
	t.hidden = hidden
	listeners := append([]func(bool){}, t.listeners...)
	t.mu.Unlock()

	for _, fn := range listeners {
		fn(hidden)
	}
}
