// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

// state represents the different views of the TUI.
type state int

const (
	stateForm state = iota
	stateSaving
	stateDone
)

// Form field indices. The protected toggle is not a text input, so it only
// exists as a logical focus index after the inputs.
const (
	textField = iota
	nameField
	descriptionField
	categoriesField
	languageField
	bundleField
	targetField
	inputCount

	protectedFocusIndex = inputCount
	focusCount          = inputCount + 1
)
