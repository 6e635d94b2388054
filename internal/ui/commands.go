// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"label-manager/internal/labels"

	tea "github.com/charmbracelet/bubbletea"
)

// addLabelCmd runs the add pipeline off the UI loop.
func addLabelCmd(opts labels.AddOptions) tea.Cmd {
	return func() tea.Msg {
		res, err := labels.Add(opts)
		return labelAddedMsg{result: res, err: err}
	}
}
