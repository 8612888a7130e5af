package core

import (
	"strings"

	"github.com/sanskrit-grammar/prakriya/internal/phoneme"
	"github.com/sanskrit-grammar/prakriya/tag"
)

// TermView is a read-only window over a contiguous, inclusive [start, end]
// slice of a Prakriyā's Terms. It never owns Terms and never mutates them;
// its lifetime is bounded by the Prakriyā it borrows from. Constructing a
// TermView with out-of-bounds indices fails (returns ok=false) rather than
// panicking, since callers routinely probe indices that may not exist yet.
type TermView struct {
	terms []*Term
	start int
	end   int
}

// NewTermView constructs a TermView over the inclusive range [start, end]
// of terms. It fails if the range is empty or out of bounds.
func NewTermView(terms []*Term, start, end int) (TermView, bool) {
	if start < 0 || end < start || end >= len(terms) {
		return TermView{}, false
	}
	return TermView{terms: terms, start: start, end: end}, true
}

// ViewFrom constructs a TermView spanning from start to the end of terms.
func ViewFrom(terms []*Term, start int) (TermView, bool) {
	if start < 0 || start >= len(terms) {
		return TermView{}, false
	}
	return TermView{terms: terms, start: start, end: len(terms) - 1}, true
}

// ViewTo constructs a TermView spanning from the start of terms to end.
func ViewTo(terms []*Term, end int) (TermView, bool) {
	if end < 0 || end >= len(terms) {
		return TermView{}, false
	}
	return TermView{terms: terms, start: 0, end: end}, true
}

// Start returns the view's inclusive start index.
func (v TermView) Start() int { return v.start }

// End returns the view's inclusive end index.
func (v TermView) End() int { return v.end }

// Len returns the number of Terms in the view.
func (v TermView) Len() int {
	if v.terms == nil {
		return 0
	}
	return v.end - v.start + 1
}

// terms slice borrowed by this view, in order.
func (v TermView) slice() []*Term {
	if v.terms == nil {
		return nil
	}
	return v.terms[v.start : v.end+1]
}

// Text returns the concatenated text of every Term in the view.
func (v TermView) Text() string {
	var b strings.Builder
	for _, t := range v.slice() {
		b.WriteString(t.Text())
	}
	return b.String()
}

// FirstNonEmpty returns the first non-empty Term in the view and its
// absolute index, or ok=false if every Term in the view is empty.
func (v TermView) FirstNonEmpty() (*Term, int, bool) {
	for i := v.start; i <= v.end; i++ {
		if !v.terms[i].IsEmpty() {
			return v.terms[i], i, true
		}
	}
	return nil, 0, false
}

// LastNonEmpty returns the last non-empty Term in the view and its
// absolute index, or ok=false if every Term in the view is empty.
func (v TermView) LastNonEmpty() (*Term, int, bool) {
	for i := v.end; i >= v.start; i-- {
		if !v.terms[i].IsEmpty() {
			return v.terms[i], i, true
		}
	}
	return nil, 0, false
}

// LastSound returns the final phoneme of the view's combined text.
func (v TermView) LastSound() string {
	return phoneme.Last(v.Text())
}

// PenultimateSound returns the second-to-last phoneme of the view's
// combined text.
func (v TermView) PenultimateSound() string {
	return phoneme.Penultimate(v.Text())
}

// HasTag reports whether any Term in the view carries t.
func (v TermView) HasTag(t tag.Tag) bool {
	for _, term := range v.slice() {
		if term.HasTag(t) {
			return true
		}
	}
	return false
}
