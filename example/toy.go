// Package example is a small, self-contained toy grammar used to exercise
// the enumerator end-to-end. It is not a rendering of any real sūtra; it
// exists purely to give Enumerator a rule body to drive.
package example

import (
	"github.com/sanskrit-grammar/prakriya/core"
	"github.com/sanskrit-grammar/prakriya/rule"
)

// vowelMerge is the toy optional rule: a stem ending in short "a" may
// merge with a following short "a" into a single long "A".
var vowelMerge = rule.S("toy-vowel-merge")

// vowelMergeCleanup drops the now-redundant leading vowel of the second
// term once a merge has been accepted. It always applies when its
// precondition holds, so it is run unconditionally rather than offered
// through Optionally.
var vowelMergeCleanup = rule.S("toy-vowel-merge-cleanup")

// Derive builds a two-Term derivation — a stem ("rAma") joined to a
// particle ("atra") — with an optional sandhi-like vowel merge at the
// junction. Declining the merge yields "rAmaatra"; accepting it yields
// "rAmAtra". This mirrors the shape of an optional rule producing two
// accepted surface forms, scaled down to something that needs no rule
// library to run.
func Derive(cfg core.Config) *core.Prakriya {
	p := core.WithConfig(cfg)
	p.Push(core.NewTerm("rAma"))
	p.Push(core.NewTerm("atra"))

	p.OptionalRunAt(vowelMerge, 0, func(t *core.Term) {
		t.ReplaceRange(t.Len()-1, t.Len()-1, "A")
	})

	if stem, ok := p.Get(0); ok && stem.LastSound() == "A" {
		p.RunAt(vowelMergeCleanup, 1, func(t *core.Term) {
			t.ReplaceRange(0, 0, "")
		})
	}

	return p
}
