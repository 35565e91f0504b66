package ui

import "testing"

func TestTabBar(t *testing.T) {
	tb := NewTabBar()
	if tb.Hidden() {
		t.Fatal("new tab bar should be visible")
	}

	var changes []bool
	tb.OnChange(func(hidden bool) { changes = append(changes, hidden) })

	tb.Hide()
	tb.Hide()
	if !tb.Hidden() {
		t.Error("Hidden() = false after Hide(), expected true")
	}

	tb.Show()
	if tb.Hidden() {
		t.Error("Hidden() = true after Show(), expected false")
	}

	if len(changes) != 2 || changes[0] != true || changes[1] != false {
		t.Errorf("listener calls = %v, expected [true false]", changes)
	}
}
