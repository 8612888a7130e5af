package core

import (
	"github.com/sanskrit-grammar/prakriya/rule"
	"github.com/sanskrit-grammar/prakriya/tag"
)

// StepTerm is a snapshot of one Term's observable state at a given Step,
// plus whether it differed from the same position in the previous Step.
type StepTerm struct {
	Text       string
	Tags       tag.Set
	WasChanged bool
}

// Step is one entry in a Prakriyā's derivation history: the Rule that
// fired, plus a snapshot of every Term as it stood immediately afterward.
type Step struct {
	Rule  rule.Rule
	Terms []StepTerm
}
