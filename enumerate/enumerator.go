// Package enumerate drives a derivation repeatedly across the tree of
// accept/decline choices at every optional rule, collecting the
// deduplicated set of final surface forms.
package enumerate

import (
	"strings"
	"sync"

	"github.com/sanskrit-grammar/prakriya/core"
	"github.com/sanskrit-grammar/prakriya/internal/plog"
	"github.com/sanskrit-grammar/prakriya/rule"
)

// defaultMaxDerivations is the sanity cap applied when Enumerator.MaxDerivations
// is left at its zero value.
const defaultMaxDerivations = 10000

// DeriveFunc runs one complete derivation from cfg and returns the
// resulting Prakriyā. Rule bodies are supplied by the caller; the
// enumerator only drives the choice-log exploration around them.
type DeriveFunc func(cfg core.Config) *core.Prakriya

// Enumerator explores the tree of Accept/Decline forks produced by a
// DeriveFunc and collects the surface forms it reaches.
type Enumerator struct {
	// Derive runs a single derivation for a given seed Config.
	Derive DeriveFunc

	// MaxDerivations caps the total number of derivations run, guarding
	// against runaway enumeration from a buggy rule body. Zero means
	// defaultMaxDerivations.
	MaxDerivations int

	// Workers, when greater than 1, drains the fork queue across a bounded
	// goroutine pool instead of a single sequential loop. Each derivation
	// still owns its Prakriyā exclusively; only the shared visited-set and
	// result map are synchronized.
	Workers int
}

// New returns an Enumerator driven by derive, with sequential exploration
// and the default derivation cap.
func New(derive DeriveFunc) *Enumerator {
	return &Enumerator{Derive: derive}
}

// Result is the outcome of a full enumeration pass.
type Result struct {
	// Forms maps each distinct surface text to one Prakriyā that produced
	// it (the first one the enumerator reached).
	Forms map[string]*core.Prakriya

	// DerivationCount is the total number of derivations actually run.
	DerivationCount int

	// Truncated is true if MaxDerivations was hit before the fork tree was
	// fully explored; Forms then holds a partial (but internally
	// consistent) result.
	Truncated bool
}

// signature gives a stable string key for a choice-log prefix, used to
// avoid re-enumerating a seed already queued or visited.
func signature(log []rule.Choice) string {
	var b strings.Builder
	for _, c := range log {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// forkPrefixes returns, for every Accept(r) entry in log, the choice-log
// prefix that instead declines r at that point — the sibling branch not
// yet explored.
func forkPrefixes(log []rule.Choice) [][]rule.Choice {
	var out [][]rule.Choice
	for i, c := range log {
		if !c.Accepted {
			continue
		}
		prefix := make([]rule.Choice, i, i+1)
		copy(prefix, log[:i])
		prefix = append(prefix, rule.Decline(c.Rule))
		out = append(out, prefix)
	}
	return out
}

// Run executes the enumeration: derive with an empty choice log, fork at
// every Accept seen, and repeat until no new seed remains or the
// derivation cap is hit.
func (e *Enumerator) Run() Result {
	if e.Workers > 1 {
		return e.runParallel()
	}
	return e.runSequential()
}

func (e *Enumerator) runSequential() Result {
	limit := e.MaxDerivations
	if limit <= 0 {
		limit = defaultMaxDerivations
	}

	forms := make(map[string]*core.Prakriya)
	seen := make(map[string]bool)
	queue := [][]rule.Choice{nil}
	count := 0
	truncated := false

	for len(queue) > 0 {
		seed := queue[0]
		queue = queue[1:]

		sig := signature(seed)
		if seen[sig] {
			continue
		}
		seen[sig] = true

		if count >= limit {
			truncated = true
			break
		}
		p := e.Derive(core.Config{RuleChoices: seed})
		count++

		text := p.Text()
		if _, ok := forms[text]; !ok {
			forms[text] = p
		}

		for _, prefix := range forkPrefixes(p.RuleChoices()) {
			if !seen[signature(prefix)] {
				queue = append(queue, prefix)
			}
		}
	}

	plog.Log.Debug().Int("derivations", count).Int("forms", len(forms)).Bool("truncated", truncated).Msg("enumerate")
	return Result{Forms: forms, DerivationCount: count, Truncated: truncated}
}

// runParallel mirrors runSequential but drains the fork queue across a
// bounded pool of Workers goroutines. A mutex guards the shared
// seen/forms/count state; each derivation itself still runs on exactly
// one goroutine against its own Prakriyā.
func (e *Enumerator) runParallel() Result {
	limit := e.MaxDerivations
	if limit <= 0 {
		limit = defaultMaxDerivations
	}

	var mu sync.Mutex
	forms := make(map[string]*core.Prakriya)
	seen := make(map[string]bool)
	count := 0
	truncated := false

	// Buffered generously: a seed is marked seen only when a worker takes
	// it, so the same signature can be queued more than once before then.
	// Repeats are dropped when dequeued, but nothing bounds the queue here.
	pending := make(chan []rule.Choice, 65536)
	pending <- nil

	var wg sync.WaitGroup

	submit := func(prefix []rule.Choice) {
		wg.Add(1)
		pending <- prefix
	}

	worker := func() {
		for seed := range pending {
			mu.Lock()
			sig := signature(seed)
			if seen[sig] {
				mu.Unlock()
				wg.Done()
				continue
			}
			seen[sig] = true
			if count >= limit {
				truncated = true
				mu.Unlock()
				wg.Done()
				continue
			}
			count++
			mu.Unlock()

			p := e.Derive(core.Config{RuleChoices: seed})
			text := p.Text()
			forks := forkPrefixes(p.RuleChoices())

			mu.Lock()
			if _, ok := forms[text]; !ok {
				forms[text] = p
			}
			var toSubmit [][]rule.Choice
			for _, prefix := range forks {
				if !seen[signature(prefix)] {
					toSubmit = append(toSubmit, prefix)
				}
			}
			mu.Unlock()

			for _, prefix := range toSubmit {
				submit(prefix)
			}
			wg.Done()
		}
	}

	wg.Add(1) // balances the initial nil seed pushed above
	n := e.Workers
	for i := 0; i < n; i++ {
		go worker()
	}
	wg.Wait()
	close(pending)

	plog.Log.Debug().Int("derivations", count).Int("forms", len(forms)).Bool("truncated", truncated).Int("workers", n).Msg("enumerate_parallel")
	return Result{Forms: forms, DerivationCount: count, Truncated: truncated}
}

// Texts returns the set of surface forms as a map from text to true, with
// no order, convenient for set comparisons in tests.
func (r Result) Texts() map[string]bool {
	out := make(map[string]bool, len(r.Forms))
	for text := range r.Forms {
		out[text] = true
	}
	return out
}
