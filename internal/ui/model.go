// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui implements the interactive add-label form with Bubble Tea.
package ui

import (
	"fmt"
	"strings"

	"label-manager/internal/labels"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type model struct {
	state      state
	keymap     KeyMap
	inputs     []textinput.Model
	focusIndex int
	protected  bool
	formError  error
	result     *labels.Result
	width      int
}

// InitialModel returns the form with language, bundle and target pre-filled
// from defaults.
func InitialModel(defaults labels.AddOptions) model {
	m := model{
		state:  stateForm,
		keymap: DefaultKeyMap,
		inputs: createLabelForm(defaults),
	}
	m.applyFocus()
	return m
}

// Result is the saved label, or nil when the form was quit without saving.
func (m *model) Result() *labels.Result {
	return m.result
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case labelAddedMsg:
		if msg.err != nil {
			m.state = stateForm
			m.formError = msg.err
			return m, nil
		}
		m.result = msg.result
		m.state = stateDone
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateDone:
			return m, tea.Quit
		case stateSaving:
			if key.Matches(msg, m.keymap.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}
		return m, m.handleFormKeys(msg)
	}

	return m, m.updateFocusedInput(msg)
}

// handleFormKeys handles key presses while the form is shown.
func (m *model) handleFormKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return tea.Quit
	case key.Matches(msg, m.keymap.Next):
		m.focusIndex = (m.focusIndex + 1) % focusCount
		m.formError = nil
		return m.applyFocus()
	case key.Matches(msg, m.keymap.Prev):
		m.focusIndex = (m.focusIndex - 1 + focusCount) % focusCount
		m.formError = nil
		return m.applyFocus()
	case key.Matches(msg, m.keymap.Submit):
		m.formError = nil
		opts, err := m.buildOptionsFromForm()
		if err != nil {
			m.formError = err
			return nil
		}
		m.state = stateSaving
		return addLabelCmd(opts)
	case m.focusIndex == protectedFocusIndex && key.Matches(msg, m.keymap.Toggle):
		m.protected = !m.protected
		return nil
	}
	return m.updateFocusedInput(msg)
}

// applyFocus blurs every input and focuses the one under focusIndex, if any.
func (m *model) applyFocus() tea.Cmd {
	var cmd tea.Cmd
	for i := range m.inputs {
		m.inputs[i].Blur()
		m.inputs[i].Prompt = "  "
		m.inputs[i].TextStyle = lipgloss.NewStyle()
	}
	if m.focusIndex < inputCount {
		cmd = m.inputs[m.focusIndex].Focus()
		m.inputs[m.focusIndex].Prompt = cursorStyle.Render("> ")
		m.inputs[m.focusIndex].TextStyle = cursorStyle
	}
	return cmd
}

func (m *model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	if m.focusIndex >= inputCount {
		return nil
	}
	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	return cmd
}

func (m *model) View() string {
	switch m.state {
	case stateSaving:
		return statusStyle.Render("Saving label...") + "\n"
	case stateDone:
		return m.renderDoneView()
	default:
		return m.renderFormView()
	}
}

func (m *model) renderFormView() string {
	b := strings.Builder{}
	b.WriteString(titleStyle.Render("Add Custom Label") + "\n\n")

	for i := range m.inputs {
		b.WriteString(labelStyle.Render(fieldTitles[i]) + m.inputs[i].View() + "\n")
	}

	toggleFocus := "  "
	toggleStyle := lipgloss.NewStyle()
	if m.focusIndex == protectedFocusIndex {
		toggleFocus = cursorStyle.Render("> ")
		toggleStyle = cursorStyle
	}
	mark := "[ ]"
	if m.protected {
		mark = "[x]"
	}
	b.WriteString(labelStyle.Render("Protected") + toggleFocus + toggleStyle.Render(mark) + "\n")

	b.WriteString("\n")
	if m.formError != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.formError)) + "\n")
	}

	help := []string{
		m.keymap.Next.Help().Key + ": " + m.keymap.Next.Help().Desc,
		m.keymap.Prev.Help().Key + ": " + m.keymap.Prev.Help().Desc,
		m.keymap.Toggle.Help().Key + ": " + m.keymap.Toggle.Help().Desc,
		m.keymap.Submit.Help().Key + ": " + m.keymap.Submit.Help().Desc,
		m.keymap.Quit.Help().Key + ": " + m.keymap.Quit.Help().Desc,
	}
	b.WriteString(footerStyle.Width(m.width).Render(strings.Join(help, " | ")))
	return b.String()
}

func (m *model) renderDoneView() string {
	return fmt.Sprintf("%s %s to %s\n\n%s\n",
		successStyle.Render("Added"),
		identifierStyle.Render(m.result.Label.FullName),
		identifierStyle.Render(m.result.Path),
		footerStyle.Render("Press any key to exit."))
}
