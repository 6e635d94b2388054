// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package stopwords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemove(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  []string
	}{
		{"keeps content words", []string{"Save", "the", "record"}, []string{"Save", "record"}},
		{"case insensitive", []string{"The", "AND", "Account"}, []string{"Account"}},
		{"single letters and digits", []string{"a", "1", "Plan", "B"}, []string{"Plan"}},
		{"punctuation attached is not a stopword", []string{"the,", "end"}, []string{"the,", "end"}},
		{"all stopwords", []string{"the", "a", "an"}, []string{}},
		{"empty input", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Remove(tt.words))
		})
	}
}

func TestRemoveDoesNotModifyInput(t *testing.T) {
	in := []string{"the", "quick", "fox"}
	_ = Remove(in)
	assert.Equal(t, []string{"the", "quick", "fox"}, in)
}
