// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"errors"
	"strings"

	"label-manager/internal/labels"
	"label-manager/internal/metadata"

	"github.com/charmbracelet/bubbles/textinput"
)

var fieldTitles = [inputCount]string{
	textField:        "Text",
	nameField:        "API name",
	descriptionField: "Description",
	categoriesField:  "Categories",
	languageField:    "Language",
	bundleField:      "Bundle",
	targetField:      "Target",
}

// --- Form Creation ---

// createLabelForm builds the inputs, pre-filling language, bundle and target
// from defaults.
func createLabelForm(defaults labels.AddOptions) []textinput.Model {
	inputs := make([]textinput.Model, inputCount)
	var t textinput.Model

	t = textinput.New()
	t.Placeholder = "Text shown to users (required)"
	t.Focus() // Initial focus
	t.CharLimit = 1000
	t.Width = 60
	inputs[textField] = t

	t = textinput.New()
	t.Placeholder = "Derived from text when empty"
	t.Width = 40
	inputs[nameField] = t

	t = textinput.New()
	t.Placeholder = "Derived from text when empty"
	t.Width = 40
	inputs[descriptionField] = t

	t = textinput.New()
	t.Placeholder = "Comma separated (optional)"
	t.CharLimit = 200
	t.Width = 40
	inputs[categoriesField] = t

	t = textinput.New()
	t.Placeholder = metadata.DefaultLanguage
	t.SetValue(defaults.Language)
	t.CharLimit = 10
	t.Width = 10
	inputs[languageField] = t

	t = textinput.New()
	t.Placeholder = metadata.DefaultBundle
	t.SetValue(defaults.Bundle)
	t.CharLimit = 100
	t.Width = 40
	inputs[bundleField] = t

	t = textinput.New()
	t.Placeholder = metadata.DefaultTarget
	t.SetValue(defaults.Target)
	t.CharLimit = 200
	t.Width = 60
	inputs[targetField] = t

	return inputs
}

// --- Form Processing ---

// splitCategories turns "A, B,,C" into [A B C]. No categories gives nil.
func splitCategories(s string) []string {
	var out []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// buildOptionsFromForm reads the inputs into AddOptions. The label text is
// kept exactly as typed; the other fields are trimmed.
func (m *model) buildOptionsFromForm() (labels.AddOptions, error) {
	text := m.inputs[textField].Value()
	if strings.TrimSpace(text) == "" {
		return labels.AddOptions{}, errors.New("text cannot be empty")
	}

	opts := labels.AddOptions{
		Text:        text,
		Name:        strings.TrimSpace(m.inputs[nameField].Value()),
		Description: strings.TrimSpace(m.inputs[descriptionField].Value()),
		Categories:  splitCategories(m.inputs[categoriesField].Value()),
		Language:    strings.TrimSpace(m.inputs[languageField].Value()),
		Bundle:      strings.TrimSpace(m.inputs[bundleField].Value()),
		Target:      strings.TrimSpace(m.inputs[targetField].Value()),
		Protected:   m.protected,
	}
	return opts.WithDefaults(), nil
}
