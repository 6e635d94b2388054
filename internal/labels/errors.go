// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package labels

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateLabel matches any DuplicateLabelError via errors.Is.
	ErrDuplicateLabel = errors.New("duplicate label")

	// ErrTextRequired is returned when a label is added without text.
	ErrTextRequired = errors.New("label text is required")
)

// DuplicateLabelError reports a fullName that already exists in the bundle.
type DuplicateLabelError struct {
	FullName string
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("a label with the fullName %s already exists", e.FullName)
}

func (e *DuplicateLabelError) Is(target error) bool {
	return target == ErrDuplicateLabel
}
