// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tui

import (
	"fmt"
	"os"

	"label-manager/internal/config"
	"label-manager/internal/discovery"
	"label-manager/internal/labels"
	"label-manager/internal/logger"
	"label-manager/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// RunTUI opens the add-label form with the configured defaults pre-filled.
func RunTUI() {
	logger.InitLogger(true, false)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warn("Could not load config, using built-in defaults", "error", err)
	}
	defaults := labels.AddOptions{Target: discovery.GetTargetDirectory("")}.ApplyConfig(cfg).WithDefaults()

	m := ui.InitialModel(defaults)
	p := tea.NewProgram(&m)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
