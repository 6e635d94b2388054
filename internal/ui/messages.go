// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import "label-manager/internal/labels"

// labelAddedMsg carries the result of saving the form.
type labelAddedMsg struct {
	result *labels.Result
	err    error
}
