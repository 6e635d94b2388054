// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// This file defines the keyboard bindings for the label form.
// Letter keys are left alone so they reach the text inputs.

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the form.
type KeyMap struct {
	Next   key.Binding // Next field
	Prev   key.Binding // Previous field
	Toggle key.Binding // Flip the protected toggle when it is focused
	Submit key.Binding // Save the label
	Quit   key.Binding // Exit without saving
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab/↓", "next"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab/↑", "previous"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("left", "right", " "),
		key.WithHelp("←/→/space", "toggle"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
}
