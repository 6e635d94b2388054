// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package stopwords filters common English words out of a word sequence.
package stopwords

import "strings"

// english is the classic English list: short function words plus single
// letters, digits and the "$" and "_" tokens.
var english = []string{
	"about", "after", "all", "also", "am", "an", "and", "another", "any", "are",
	"as", "at", "be", "because", "been", "before", "being", "between", "both",
	"but", "by", "came", "can", "come", "could", "did", "do", "each", "for",
	"from", "get", "got", "has", "had", "he", "have", "her", "here", "him",
	"himself", "his", "how", "if", "in", "into", "is", "it", "like", "make",
	"many", "me", "might", "more", "most", "much", "must", "my", "never", "now",
	"of", "on", "only", "or", "other", "our", "out", "over", "said", "same",
	"see", "should", "since", "some", "still", "such", "take", "than", "that",
	"the", "their", "them", "then", "there", "these", "they", "this", "those",
	"through", "to", "too", "under", "up", "very", "was", "way", "we", "well",
	"were", "what", "where", "which", "while", "who", "with", "would", "you",
	"your",
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o",
	"p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	"$", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "_",
}

var englishSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(english))
	for _, w := range english {
		set[w] = struct{}{}
	}
	return set
}()

// IsStopword reports whether word is on the list, ignoring case.
func IsStopword(word string) bool {
	_, ok := englishSet[strings.ToLower(word)]
	return ok
}

// Remove returns the words that are not stopwords, in their original order
// and casing. The input slice is not modified.
func Remove(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if IsStopword(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}
