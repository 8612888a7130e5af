package core

import (
	"fmt"

	"github.com/sanskrit-grammar/prakriya/internal/phoneme"
	"github.com/sanskrit-grammar/prakriya/tag"
)

// Term is a single annotated morph of a derivation: a short mutable string
// of Sanskrit phonemes plus the tag set that classifies it, and a small
// amount of historical bookkeeping rule bodies rely on (sthānivat, gaṇa,
// antargaṇa). A Term's text may be empty — that is how lopa is modelled.
//
// Terms are never shared between Prakriyās; a Prakriyā exclusively owns
// the Terms in its list.
type Term struct {
	text           string
	textWithSvaras string
	tags           tag.Set

	sthanivat *string
	gana      string
	antargana string

	// changeMarker is a provenance bit. Nothing in this package reads or
	// writes it, and Clone does not copy it: Prakriya.step derives
	// WasChanged by comparing each snapshot with the previous Step.
	changeMarker bool
}

// NewTerm builds a Term with the given text and no tags.
func NewTerm(text string) *Term {
	return &Term{text: text}
}

// Text returns the Term's unaccented text.
func (t *Term) Text() string {
	return t.text
}

// TextWithSvaras returns the accented form if one was set, otherwise the
// unaccented text.
func (t *Term) TextWithSvaras() string {
	if t.textWithSvaras != "" {
		return t.textWithSvaras
	}
	return t.text
}

// SetTextWithSvaras sets the accented form of the Term's text.
func (t *Term) SetTextWithSvaras(s string) {
	t.textWithSvaras = s
}

// SetText overwrites the Term's text outright.
func (t *Term) SetText(s string) {
	t.text = s
}

// Extend appends s to the Term's text.
func (t *Term) Extend(s string) {
	t.text += s
}

// Len returns the number of phonemes in the Term's text.
func (t *Term) Len() int {
	return phoneme.Len(t.text)
}

// ReplaceRange replaces the inclusive phoneme range [start, end] of the
// Term's text with replacement. Out-of-range indices are a caller
// contract violation: bounds discipline is the Prakriyā's responsibility,
// and the Term itself asserts rather than silently tolerating it.
func (t *Term) ReplaceRange(start, end int, replacement string) {
	newText, ok := phoneme.ReplaceRange(t.text, start, end, replacement)
	if !ok {
		panic(fmt.Sprintf("term: replace range [%d,%d] out of bounds for %q", start, end, t.text))
	}
	t.text = newText
}

// LastSound returns the Term's final phoneme, or "" if the Term is empty.
func (t *Term) LastSound() string {
	return phoneme.Last(t.text)
}

// PenultimateSound returns the Term's second-to-last phoneme, or "" if the
// Term has fewer than two phonemes.
func (t *Term) PenultimateSound() string {
	return phoneme.Penultimate(t.text)
}

// AddTag sets t2 on the Term.
func (t *Term) AddTag(t2 tag.Tag) {
	t.tags.Add(t2)
}

// AddTags sets every tag in tags2 on the Term.
func (t *Term) AddTags(tags2 ...tag.Tag) {
	t.tags.AddAll(tags2...)
}

// RemoveTag clears t2 on the Term.
func (t *Term) RemoveTag(t2 tag.Tag) {
	t.tags.Remove(t2)
}

// HasTag reports whether the Term carries t2.
func (t *Term) HasTag(t2 tag.Tag) bool {
	return t.tags.Has(t2)
}

// HasAnyTag reports whether the Term carries any tag in tags2.
func (t *Term) HasAnyTag(tags2 ...tag.Tag) bool {
	return t.tags.Any(tags2...)
}

// Tags returns the Term's full tag set.
func (t *Term) Tags() tag.Set {
	return t.tags
}

// IsEmpty reports whether the Term's text is empty (a lopa placeholder).
func (t *Term) IsEmpty() bool {
	return t.text == ""
}

// IsPada reports whether the Term directly carries the pada samjñā.
// This is the local, single-Term test; the pada-at-index derived
// predicate that also accounts for following lopa'd Terms lives on
// Prakriyā (see Prakriya.isPadaAt).
func (t *Term) IsPada() bool {
	return t.tags.Has(tag.Pada)
}

// IsPratipadikaOrNyapu reports whether the Term is a prātipadika or ends
// in the nyāp samjñā.
func (t *Term) IsPratipadikaOrNyapu() bool {
	return t.tags.Has(tag.Pratipadika) || t.tags.Has(tag.Nyap)
}

// IsDhatu reports whether the Term is a dhātu.
func (t *Term) IsDhatu() bool {
	return t.tags.Has(tag.Dhatu)
}

// SaveSthanivat snapshots the Term's current text so that later rules can
// apply the sthānivat principle ("a substitute behaves like its original").
func (t *Term) SaveSthanivat() {
	snapshot := t.text
	t.sthanivat = &snapshot
}

// Sthanivat returns the saved sthānivat snapshot, if any.
func (t *Term) Sthanivat() (string, bool) {
	if t.sthanivat == nil {
		return "", false
	}
	return *t.sthanivat, true
}

// Gana returns the Term's gaṇa label (for dhātu-origin Terms).
func (t *Term) Gana() string {
	return t.gana
}

// SetGana sets the Term's gaṇa label.
func (t *Term) SetGana(g string) {
	t.gana = g
}

// Antargana returns the Term's antargaṇa label.
func (t *Term) Antargana() string {
	return t.antargana
}

// SetAntargana sets the Term's antargaṇa label.
func (t *Term) SetAntargana(a string) {
	t.antargana = a
}

// Clone returns a deep-enough copy of the Term: a new Term that shares no
// mutable state with t. Used when a rule body needs to derive a new Term
// from an existing one (e.g. a substitute term) without aliasing it.
func (t *Term) Clone() *Term {
	clone := &Term{
		text:           t.text,
		textWithSvaras: t.textWithSvaras,
		tags:           t.tags,
		gana:           t.gana,
		antargana:      t.antargana,
	}
	if t.sthanivat != nil {
		s := *t.sthanivat
		clone.sthanivat = &s
	}
	return clone
}
