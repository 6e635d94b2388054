// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	cursorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	identifierStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	labelStyle      = lipgloss.NewStyle().Width(14).Foreground(lipgloss.Color("250"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Dim grey help line
)
