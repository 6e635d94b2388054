// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package labels

import (
	"regexp"
	"strings"

	"label-manager/internal/metadata"
	"label-manager/internal/stopwords"
)

// MaxNameLength caps derived names and descriptions.
const MaxNameLength = 80

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// DeriveName turns free text into a label identifier: stopwords are dropped,
// every character outside [A-Za-z0-9] is stripped and the result is cut to
// MaxNameLength. Text made only of stopwords and punctuation gives "".
func DeriveName(text string) string {
	words := stopwords.Remove(strings.Fields(text))
	name := nonAlphanumeric.ReplaceAllString(strings.Join(words, " "), "")
	if len(name) > MaxNameLength {
		name = name[:MaxNameLength]
	}
	return name
}

// Derive builds the candidate label for opts. Name and description fall back
// to DeriveName(opts.Text) independently, so without overrides they are equal.
func Derive(opts AddOptions) metadata.CustomLabel {
	label := metadata.CustomLabel{
		FullName:         opts.Name,
		Language:         opts.Language,
		Protected:        opts.Protected,
		ShortDescription: opts.Description,
		Value:            opts.Text,
	}
	if label.FullName == "" {
		label.FullName = DeriveName(opts.Text)
	}
	if label.ShortDescription == "" {
		label.ShortDescription = DeriveName(opts.Text)
	}
	if len(opts.Categories) > 0 {
		label.Categories = strings.Join(opts.Categories, ",")
	}
	return label
}

// CheckUnique fails with a *DuplicateLabelError when candidate's fullName is
// already taken. The comparison is exact and case-sensitive.
func CheckUnique(existing []metadata.CustomLabel, candidate metadata.CustomLabel) error {
	for _, l := range existing {
		if l.FullName == candidate.FullName {
			return &DuplicateLabelError{FullName: candidate.FullName}
		}
	}
	return nil
}
