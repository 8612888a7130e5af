// Package core implements the Prakriyā machine: the mutable derivation
// state, the Term/TermView abstractions it operates over, and the
// rule-application protocol (run/run_at/optionally) that rule bodies use
// to mutate it while recording a provenance trail.
package core

import (
	"strings"

	"github.com/sanskrit-grammar/prakriya/internal/phoneme"
	"github.com/sanskrit-grammar/prakriya/rule"
	"github.com/sanskrit-grammar/prakriya/tag"
)

// Prakriya is the mutable derivation state: an ordered list of Terms, a
// prakriyā-level tag set, an optional artha and lakāra, the config that
// seeded this derivation, the rule-choice log it produced, and the
// history of Steps (if logging was enabled). A Prakriya exclusively owns
// its Terms and its History; TermViews and external iteration only ever
// borrow from it.
type Prakriya struct {
	terms  []*Term
	tags   tag.Set
	artha  *Artha
	lakara *Lakara
	config Config

	choiceLog []rule.Choice
	history   []Step
}

// New returns an empty Prakriya with default configuration.
func New() *Prakriya {
	return &Prakriya{}
}

// WithConfig returns an empty Prakriya seeded by cfg, whose RuleChoices
// (if any) will be replayed as rule bodies invoke Optionally.
func WithConfig(cfg Config) *Prakriya {
	return &Prakriya{config: cfg}
}

// Config returns the Prakriya's configuration.
func (p *Prakriya) Config() Config {
	return p.config
}

// ---- (b) Read-only access ----

// Len returns the number of Terms in the Prakriya.
func (p *Prakriya) Len() int {
	return len(p.terms)
}

// Get returns the i-th Term, or ok=false if i is out of range.
func (p *Prakriya) Get(i int) (*Term, bool) {
	if i < 0 || i >= len(p.terms) {
		return nil, false
	}
	return p.terms[i], true
}

// GetIf returns the i-th Term if it exists and satisfies pred.
func (p *Prakriya) GetIf(i int, pred func(*Term) bool) (*Term, bool) {
	t, ok := p.Get(i)
	if !ok || !pred(t) {
		return nil, false
	}
	return t, true
}

// First returns the first Term (and its index) satisfying pred.
func (p *Prakriya) First(pred func(*Term) bool) (*Term, int, bool) {
	for i, t := range p.terms {
		if pred(t) {
			return t, i, true
		}
	}
	return nil, 0, false
}

// Last returns the last Term (and its index) satisfying pred.
func (p *Prakriya) Last(pred func(*Term) bool) (*Term, int, bool) {
	for i := len(p.terms) - 1; i >= 0; i-- {
		if pred(p.terms[i]) {
			return p.terms[i], i, true
		}
	}
	return nil, 0, false
}

// NextWhere returns the first Term after index i satisfying pred.
func (p *Prakriya) NextWhere(i int, pred func(*Term) bool) (*Term, int, bool) {
	for j := i + 1; j < len(p.terms); j++ {
		if pred(p.terms[j]) {
			return p.terms[j], j, true
		}
	}
	return nil, 0, false
}

// PrevWhere returns the last Term before index i satisfying pred.
func (p *Prakriya) PrevWhere(i int, pred func(*Term) bool) (*Term, int, bool) {
	for j := i - 1; j >= 0; j-- {
		if pred(p.terms[j]) {
			return p.terms[j], j, true
		}
	}
	return nil, 0, false
}

// FirstContainingOffset returns the Term (and its index) whose span in the
// Prakriya's combined text contains character offset n.
func (p *Prakriya) FirstContainingOffset(n int) (*Term, int, bool) {
	if n < 0 {
		return nil, 0, false
	}
	offset := 0
	for i, t := range p.terms {
		length := t.Len()
		if n < offset+length {
			return t, i, true
		}
		offset += length
	}
	return nil, 0, false
}

// HasTag reports whether the prakriyā-level tag set carries t.
func (p *Prakriya) HasTag(t tag.Tag) bool {
	return p.tags.Has(t)
}

// Any reports whether the prakriyā-level tag set carries any of tags.
func (p *Prakriya) Any(tags ...tag.Tag) bool {
	return p.tags.Any(tags...)
}

// Text returns the concatenation of every Term's text, in order. Under
// UseSvaras, the accented form is used but its bare "\" accent marker
// (the SLP1-adjacent svara notation, not itself a phoneme) is stripped,
// matching the source's `text_with_svaras().replace('\\', "")`.
func (p *Prakriya) Text() string {
	var b strings.Builder
	for _, t := range p.terms {
		if p.config.UseSvaras {
			b.WriteString(strings.ReplaceAll(t.TextWithSvaras(), "\\", ""))
		} else {
			b.WriteString(t.Text())
		}
	}
	return b.String()
}

// ---- (c) Term mutation ----

// Set runs op on the i-th Term without touching history. It reports
// whether the Term existed.
func (p *Prakriya) Set(i int, op func(*Term)) bool {
	t, ok := p.Get(i)
	if !ok {
		return false
	}
	op(t)
	return true
}

// InsertBefore inserts t2 immediately before index i.
func (p *Prakriya) InsertBefore(i int, t2 *Term) bool {
	if i < 0 || i > len(p.terms) {
		return false
	}
	p.terms = append(p.terms, nil)
	copy(p.terms[i+1:], p.terms[i:])
	p.terms[i] = t2
	return true
}

// InsertAfter inserts t2 immediately after index i.
func (p *Prakriya) InsertAfter(i int, t2 *Term) bool {
	return p.InsertBefore(i+1, t2)
}

// Push appends t2 to the end of the term list.
func (p *Prakriya) Push(t2 *Term) {
	p.terms = append(p.terms, t2)
}

// Extend appends every Term in ts to the end of the term list.
func (p *Prakriya) Extend(ts ...*Term) {
	p.terms = append(p.terms, ts...)
}

// SetCharAt replaces the n-th phoneme of the Prakriya's combined text,
// threading through Terms to find the one that owns offset n. It reports
// whether n was in range.
func (p *Prakriya) SetCharAt(n int, s string) bool {
	t, idx, ok := p.FirstContainingOffset(n)
	if !ok {
		return false
	}
	local := n - p.offsetOf(idx)
	t.ReplaceRange(local, local, s)
	return true
}

// SetUpadhaWithinRange replaces the penultimate phoneme of the
// concatenation of terms[start..=end] with s, threading through Terms to
// find the one that owns that offset. A range whose combined text has
// fewer than two phonemes is a silent no-op (this is an explicit design choice,
// resolved this way: preserve the source's silent no-op rather than
// erroring).
func (p *Prakriya) SetUpadhaWithinRange(start, end int, s string) bool {
	if start < 0 || end < start || end >= len(p.terms) {
		return false
	}
	var b strings.Builder
	for i := start; i <= end; i++ {
		b.WriteString(p.terms[i].Text())
	}
	combined := b.String()
	total := phoneme.Len(combined)
	if total < 2 {
		return false
	}
	offset := total - 2
	return p.setCharAtWithin(start, end, offset, s)
}

// setCharAtWithin replaces the phoneme at the given offset within the
// concatenation of terms[start..=end].
func (p *Prakriya) setCharAtWithin(start, end, offset int, s string) bool {
	walked := 0
	for i := start; i <= end; i++ {
		length := p.terms[i].Len()
		if offset < walked+length {
			local := offset - walked
			p.terms[i].ReplaceRange(local, local, s)
			return true
		}
		walked += length
	}
	return false
}

// offsetOf returns the phoneme offset at which terms[idx] begins in the
// Prakriya's combined text.
func (p *Prakriya) offsetOf(idx int) int {
	offset := 0
	for i := 0; i < idx; i++ {
		offset += p.terms[i].Len()
	}
	return offset
}

// ---- (d) Prakriyā-level tags & attributes ----

// AddTag sets t on the prakriyā-level tag set.
func (p *Prakriya) AddTag(t tag.Tag) {
	p.tags.Add(t)
}

// RemoveTag clears t on the prakriyā-level tag set.
func (p *Prakriya) RemoveTag(t tag.Tag) {
	p.tags.Remove(t)
}

// AddTags sets every tag in ts on the prakriyā-level tag set.
func (p *Prakriya) AddTags(ts []tag.Tag) {
	p.tags.AddAll(ts...)
}

// SetArtha sets the declared semantic condition for this derivation.
func (p *Prakriya) SetArtha(a Artha) {
	p.artha = &a
}

// HasArtha reports whether an artha has been declared.
func (p *Prakriya) HasArtha() bool {
	return p.artha != nil
}

// GetArtha returns the declared artha, if any.
func (p *Prakriya) GetArtha() (Artha, bool) {
	if p.artha == nil {
		return 0, false
	}
	return *p.artha, true
}

// SetLakara sets the tense/mood category for this derivation.
func (p *Prakriya) SetLakara(l Lakara) {
	p.lakara = &l
}

// HasLakara reports whether a lakāra has been set.
func (p *Prakriya) HasLakara() bool {
	return p.lakara != nil
}

// GetLakara returns the set lakāra, if any.
func (p *Prakriya) GetLakara() (Lakara, bool) {
	if p.lakara == nil {
		return 0, false
	}
	return *p.lakara, true
}

// ---- (e) Views ----

// isPadaAt reports whether terms[i] counts as a pada: either it directly
// carries the pada samjñā, or every Term strictly after it up to the next
// non-empty Term is empty and that next non-empty Term carries the pada
// samjñā. This keeps a lopa'd Term from hiding the
// pada status of the meaningful Term that follows it.
func (p *Prakriya) isPadaAt(i int) bool {
	if i < 0 || i >= len(p.terms) {
		return false
	}
	if p.terms[i].IsPada() {
		return true
	}
	for j := i + 1; j < len(p.terms); j++ {
		if p.terms[j].IsEmpty() {
			continue
		}
		return p.terms[j].IsPada()
	}
	return false
}

// Pada returns a TermView ending at iEnd iff terms[iEnd] counts as a pada
// (see isPadaAt).
func (p *Prakriya) Pada(iEnd int) (TermView, bool) {
	if !p.isPadaAt(iEnd) {
		return TermView{}, false
	}
	return ViewTo(p.terms, iEnd)
}

// NyapuPratipadika returns a TermView ending at iEnd iff terms[iEnd] is a
// prātipadika-or-nyāpu-ending Term.
func (p *Prakriya) NyapuPratipadika(iEnd int) (TermView, bool) {
	t, ok := p.Get(iEnd)
	if !ok || !t.IsPratipadikaOrNyapu() {
		return TermView{}, false
	}
	return ViewTo(p.terms, iEnd)
}

// Pratyaya returns a TermView spanning from iStart to the end of the term
// list.
func (p *Prakriya) Pratyaya(iStart int) (TermView, bool) {
	return ViewFrom(p.terms, iStart)
}

// CustomView returns a TermView over the inclusive range [start, end].
func (p *Prakriya) CustomView(start, end int) (TermView, bool) {
	return NewTermView(p.terms, start, end)
}

// ---- History & rule choices ----

// History returns the recorded derivation Steps, or nil if logging was
// disabled.
func (p *Prakriya) History() []Step {
	return p.history
}

// RuleChoices returns the ordered log of Accept/Decline entries recorded
// by Optionally calls during this derivation.
func (p *Prakriya) RuleChoices() []rule.Choice {
	return p.choiceLog
}

// snapshot captures every Term's observable state for a Step, stripping
// the FlagIttva scratch flag (a documented hack: some rule bodies use
// it as a diagnostic during derivation, but it must never leak into
// recorded history).
func (p *Prakriya) snapshot() []StepTerm {
	out := make([]StepTerm, len(p.terms))
	for i, t := range p.terms {
		text := t.Text()
		if p.config.UseSvaras {
			text = t.TextWithSvaras()
		}
		tags := t.Tags()
		tags.Remove(tag.FlagIttva)
		out[i] = StepTerm{Text: text, Tags: tags}
	}
	return out
}

// step builds and appends a Step for rule r, if logging is enabled. The
// no-logging fast path below is what makes Text() identical with and
// without log_steps (the logging-transparency invariant): nothing here
// ever affects terms or tags.
func (p *Prakriya) step(r rule.Rule) {
	if !p.config.LogSteps {
		return
	}
	snap := p.snapshot()

	if len(p.history) == 0 {
		for i := range snap {
			snap[i].WasChanged = true
		}
		p.history = append(p.history, Step{Rule: r, Terms: snap})
		return
	}

	prev := p.history[len(p.history)-1].Terms
	overlap := len(prev)
	if len(snap) < overlap {
		overlap = len(snap)
	}
	anyOverlapChanged := false
	for i := 0; i < overlap; i++ {
		if snap[i].Text != prev[i].Text || !snap[i].Tags.Equal(prev[i].Tags) {
			snap[i].WasChanged = true
			anyOverlapChanged = true
		}
	}
	// An insertion: one more Term than the previous step, with no diff
	// found among the overlapping prefix. Attribute the change to the
	// trailing new Term. This heuristic is approximate by design:
	// callers should not assert was_changed positions too tightly around
	// insertions.
	if len(snap) == len(prev)+1 && !anyOverlapChanged {
		snap[len(snap)-1].WasChanged = true
	}

	p.history = append(p.history, Step{Rule: r, Terms: snap})
}
