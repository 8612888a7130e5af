package core

import (
	"github.com/sanskrit-grammar/prakriya/internal/plog"
	"github.com/sanskrit-grammar/prakriya/rule"
	"github.com/sanskrit-grammar/prakriya/tag"
)

// Run executes the mutation closure f, then unconditionally records r in
// the history — even if f made no observable change, because the
// Aṣṭādhyāyī treats "the rule was applicable but wrought no change" as
// still a derivation step worth naming. Always returns true.
func (p *Prakriya) Run(r rule.Rule, f func(*Prakriya)) bool {
	f(p)
	p.step(r)
	plog.Log.Trace().Stringer("rule", r).Msg("run")
	return true
}

// RunAt is a convenience for per-Term mutation: if Term i exists, it runs
// f and records the step; otherwise it returns false silently without
// recording anything.
func (p *Prakriya) RunAt(r rule.Rule, i int, f func(*Term)) bool {
	t, ok := p.Get(i)
	if !ok {
		return false
	}
	f(t)
	p.step(r)
	plog.Log.Trace().Stringer("rule", r).Int("index", i).Msg("run_at")
	return true
}

// AddTagAt is a convenience for the common samjñā-assignment pattern.
func (p *Prakriya) AddTagAt(r rule.Rule, i int, t tag.Tag) bool {
	return p.RunAt(r, i, func(term *Term) { term.AddTag(t) })
}

// resolveChoice looks up r in the configured rule-choice log and returns
// the first matching entry, never consuming it: every offer of r on this
// path observes that same earliest entry (earliest match wins). found is
// false if no entry for r was ever given, signalling "default to accept".
func (p *Prakriya) resolveChoice(r rule.Rule) (accepted bool, found bool) {
	for _, c := range p.config.RuleChoices {
		if c.Rule != r {
			continue
		}
		return c.Accepted, true
	}
	return false, false
}

// Optionally is the optional-rule protocol at the heart of the enumerator.
// It looks up r in the configured rule-choice log and takes the first
// matching entry (earliest match wins) — never consuming it, so every
// offer of r on this path observes that same entry and takes the same
// branch:
//
//   - an Accept(r) entry found there logs Accept(r), calls f, returns true;
//   - a Decline(r) entry found there logs Decline(r), does not call f,
//     returns false;
//   - if r has not yet been decided on this path, it defaults to accept:
//     logs Accept(r), calls f, returns true.
//
// Default-to-accept is what makes the enumerator work: forcing a
// Decline(r) entry for a particular rule carves out that branch for every
// offer of r on this path, and retrying with the complementary seed
// enumerates the other branch.
func (p *Prakriya) Optionally(r rule.Rule, f func(rule.Rule, *Prakriya)) bool {
	if accepted, found := p.resolveChoice(r); found {
		if accepted {
			p.choiceLog = append(p.choiceLog, rule.Accept(r))
			f(r, p)
			return true
		}
		p.choiceLog = append(p.choiceLog, rule.Decline(r))
		return false
	}
	p.choiceLog = append(p.choiceLog, rule.Accept(r))
	f(r, p)
	return true
}

// OptionalRun composes Optionally with Run.
func (p *Prakriya) OptionalRun(r rule.Rule, f func(*Prakriya)) bool {
	return p.Optionally(r, func(rr rule.Rule, pp *Prakriya) {
		pp.Run(rr, f)
	})
}

// OptionalRunAt composes Optionally with RunAt.
func (p *Prakriya) OptionalRunAt(r rule.Rule, i int, f func(*Term)) bool {
	return p.Optionally(r, func(rr rule.Rule, pp *Prakriya) {
		pp.RunAt(rr, i, f)
	})
}

// OptionalAddTagAt composes Optionally with AddTagAt.
func (p *Prakriya) OptionalAddTagAt(r rule.Rule, i int, t tag.Tag) bool {
	return p.Optionally(r, func(rr rule.Rule, pp *Prakriya) {
		pp.AddTagAt(rr, i, t)
	})
}
