// Package phoneme provides grapheme-cluster indexed string operations.
//
// Terms store Sanskrit text in an SLP1-like transliteration where most
// phonemes are a single codepoint, but accents, anusvāra and it-markers
// can combine into a single user-perceived character. Indexing such text
// byte-by-byte or even rune-by-rune can split a phoneme from its
// combining marks; indexing by grapheme cluster never does. This mirrors
// how the upstream chunkifier already walks text one grapheme at a time
// via uniseg rather than by byte offset.
package phoneme

import (
	"github.com/rivo/uniseg"
)

// Split breaks s into its grapheme clusters, each cluster being one phoneme
// (plus any combining accent/anusvāra marks that ride on it).
func Split(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	remaining := s
	state := -1
	for len(remaining) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(remaining, state)
		if cluster == "" {
			break
		}
		out = append(out, cluster)
		remaining = rest
		state = newState
	}
	return out
}

// Len returns the number of phonemes (grapheme clusters) in s.
func Len(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// At returns the n-th phoneme of s (0-indexed) and true, or "" and false if
// n is out of range.
func At(s string, n int) (string, bool) {
	clusters := Split(s)
	if n < 0 || n >= len(clusters) {
		return "", false
	}
	return clusters[n], true
}

// Last returns the final phoneme of s, or "" if s is empty.
func Last(s string) string {
	clusters := Split(s)
	if len(clusters) == 0 {
		return ""
	}
	return clusters[len(clusters)-1]
}

// Penultimate returns the second-to-last phoneme of s, or "" if s has fewer
// than two phonemes.
func Penultimate(s string) string {
	clusters := Split(s)
	if len(clusters) < 2 {
		return ""
	}
	return clusters[len(clusters)-2]
}

// ReplaceRange replaces the phonemes in the inclusive range [start, end] of s
// with replacement, returning the resulting string. If the range is out of
// bounds it returns s unchanged and false.
func ReplaceRange(s string, start, end int, replacement string) (string, bool) {
	clusters := Split(s)
	if start < 0 || end < start || end >= len(clusters) {
		return s, false
	}
	var out []string
	out = append(out, clusters[:start]...)
	if replacement != "" {
		out = append(out, replacement)
	}
	out = append(out, clusters[end+1:]...)
	result := ""
	for _, c := range out {
		result += c
	}
	return result, true
}

// SetAt replaces the n-th phoneme of s with replacement. It no-ops (returns
// s unchanged, false) if n is out of range.
func SetAt(s string, n int, replacement string) (string, bool) {
	return ReplaceRange(s, n, n, replacement)
}

// SetPenultimate replaces the second-to-last phoneme of s with replacement.
// A range shorter than two phonemes is a silent no-op: there is no penult
// to replace.
func SetPenultimate(s string, replacement string) (string, bool) {
	n := Len(s)
	if n < 2 {
		return s, false
	}
	return SetAt(s, n-2, replacement)
}
