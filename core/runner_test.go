package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sanskrit-grammar/prakriya/rule"
	"github.com/sanskrit-grammar/prakriya/tag"
)

func TestRun_AlwaysRecordsStep(t *testing.T) {
	p := WithConfig(Config{LogSteps: true})
	p.Push(NewTerm("BU"))

	ok := p.Run(rule.S("1.1.1"), func(pp *Prakriya) {
		// no-op mutation: the rule "applied" but changed nothing
	})
	assert.True(t, ok)
	assert.Len(t, p.History(), 1)
	assert.Equal(t, rule.S("1.1.1"), p.History()[0].Rule)
}

func TestRun_NoLogging_HistoryEmpty(t *testing.T) {
	p := WithConfig(Config{LogSteps: false})
	p.Push(NewTerm("BU"))
	p.Run(rule.S("1.1.1"), func(pp *Prakriya) {
		pp.Set(0, func(t *Term) { t.SetText("Bavati") })
	})
	assert.Empty(t, p.History())
	assert.Equal(t, "Bavati", p.Text())
}

func TestRunAt_MissingIndexReturnsFalse(t *testing.T) {
	p := WithConfig(Config{LogSteps: true})
	ok := p.RunAt(rule.S("3.1.68"), 5, func(t *Term) { t.SetText("x") })
	assert.False(t, ok)
	assert.Empty(t, p.History())
}

func TestAddTagAt(t *testing.T) {
	p := WithConfig(Config{LogSteps: true})
	p.Push(NewTerm("gam"))
	ok := p.AddTagAt(rule.S("1.3.1"), 0, tag.Dhatu)
	assert.True(t, ok)
	term, _ := p.Get(0)
	assert.True(t, term.HasTag(tag.Dhatu))
}

func TestOptionally_DefaultAccept(t *testing.T) {
	p := WithConfig(Config{LogSteps: true})
	p.Push(NewTerm("a"))

	called := false
	ok := p.Optionally(rule.S("6.1.77"), func(r rule.Rule, pp *Prakriya) {
		called = true
		pp.Run(r, func(pp2 *Prakriya) {})
	})
	assert.True(t, ok)
	assert.True(t, called)
	assert.Equal(t, []rule.Choice{rule.Accept(rule.S("6.1.77"))}, p.RuleChoices())
}

func TestOptionally_SeededDecline(t *testing.T) {
	r := rule.S("6.1.77")
	p := WithConfig(Config{RuleChoices: []rule.Choice{rule.Decline(r)}})

	called := false
	ok := p.Optionally(r, func(rr rule.Rule, pp *Prakriya) {
		called = true
	})
	assert.False(t, ok)
	assert.False(t, called)
	assert.Equal(t, []rule.Choice{rule.Decline(r)}, p.RuleChoices())
}

func TestOptionally_SeededAccept(t *testing.T) {
	r := rule.S("6.1.77")
	p := WithConfig(Config{RuleChoices: []rule.Choice{rule.Accept(r)}})

	called := false
	ok := p.Optionally(r, func(rr rule.Rule, pp *Prakriya) {
		called = true
	})
	assert.True(t, ok)
	assert.True(t, called)
}

func TestOptionally_TwiceSamePath_SameBranch(t *testing.T) {
	r := rule.S("6.1.77")
	p := WithConfig(Config{})

	first := p.Optionally(r, func(rr rule.Rule, pp *Prakriya) {})
	second := p.Optionally(r, func(rr rule.Rule, pp *Prakriya) {})
	assert.Equal(t, first, second)
}

func TestOptionally_SeededDecline_SecondOccurrenceSameBranch(t *testing.T) {
	r := rule.S("6.1.77")
	p := WithConfig(Config{RuleChoices: []rule.Choice{
		rule.Decline(r),
	}})

	first := p.Optionally(r, func(rr rule.Rule, pp *Prakriya) {})
	second := p.Optionally(r, func(rr rule.Rule, pp *Prakriya) {})

	assert.False(t, first)
	assert.False(t, second)
	assert.Equal(t, []rule.Choice{rule.Decline(r), rule.Decline(r)}, p.RuleChoices())
}

func TestOptionally_SeededAccept_SecondOccurrenceSameBranch(t *testing.T) {
	r := rule.S("6.1.77")
	p := WithConfig(Config{RuleChoices: []rule.Choice{
		rule.Accept(r),
	}})

	first := p.Optionally(r, func(rr rule.Rule, pp *Prakriya) {})
	second := p.Optionally(r, func(rr rule.Rule, pp *Prakriya) {})

	assert.True(t, first)
	assert.True(t, second)
	assert.Equal(t, []rule.Choice{rule.Accept(r), rule.Accept(r)}, p.RuleChoices())
}

func TestOptionalRunAt(t *testing.T) {
	r := rule.S("6.4.1")
	p := WithConfig(Config{LogSteps: true})
	p.Push(NewTerm("Bid"))

	ok := p.OptionalRunAt(r, 0, func(t *Term) { t.SetText("Bind") })
	assert.True(t, ok)
	term, _ := p.Get(0)
	assert.Equal(t, "Bind", term.Text())
}

func TestOptionalAddTagAt(t *testing.T) {
	r := rule.S("1.2.3")
	p := WithConfig(Config{})
	p.Push(NewTerm("kf"))

	ok := p.OptionalAddTagAt(r, 0, tag.Krt)
	assert.True(t, ok)
	term, _ := p.Get(0)
	assert.True(t, term.HasTag(tag.Krt))
}

func TestHistory_WasChanged_FirstStepAllTrue(t *testing.T) {
	p := WithConfig(Config{LogSteps: true})
	p.Push(NewTerm("a"))
	p.Push(NewTerm("b"))
	p.Run(rule.S("1.1.1"), func(pp *Prakriya) {})

	step := p.History()[0]
	for _, st := range step.Terms {
		assert.True(t, st.WasChanged)
	}
}

func TestHistory_WasChanged_OnlyChangedPositions(t *testing.T) {
	p := WithConfig(Config{LogSteps: true})
	p.Push(NewTerm("a"))
	p.Push(NewTerm("b"))
	p.Run(rule.S("1.1.1"), func(pp *Prakriya) {})
	p.Run(rule.S("1.1.2"), func(pp *Prakriya) {
		pp.Set(1, func(t *Term) { t.SetText("c") })
	})

	step := p.History()[1]
	assert.False(t, step.Terms[0].WasChanged)
	assert.True(t, step.Terms[1].WasChanged)
}

func TestHistory_InsertionMarksTrailingTermChanged(t *testing.T) {
	p := WithConfig(Config{LogSteps: true})
	p.Push(NewTerm("a"))
	p.Run(rule.S("1.1.1"), func(pp *Prakriya) {})
	p.Run(rule.S("1.1.2"), func(pp *Prakriya) {
		pp.Push(NewTerm("b"))
	})

	step := p.History()[1]
	assert.False(t, step.Terms[0].WasChanged)
	assert.True(t, step.Terms[1].WasChanged)
}

func TestHistory_FlagIttvaIsScrubbed(t *testing.T) {
	p := WithConfig(Config{LogSteps: true})
	p.Push(NewTerm("a"))
	term, _ := p.Get(0)
	term.AddTag(tag.FlagIttva)

	p.Run(rule.S("1.1.1"), func(pp *Prakriya) {})

	step := p.History()[0]
	assert.False(t, step.Terms[0].Tags.Has(tag.FlagIttva))
	// the live Term itself is untouched -- only the snapshot is scrubbed
	assert.True(t, term.HasTag(tag.FlagIttva))
}

func TestLoggingTransparency(t *testing.T) {
	build := func(logSteps bool) string {
		p := WithConfig(Config{LogSteps: logSteps})
		p.Push(NewTerm("BU"))
		p.Run(rule.S("3.4.78"), func(pp *Prakriya) {
			pp.Set(0, func(t *Term) { t.SetText("Bavati") })
		})
		return p.Text()
	}
	assert.Equal(t, build(true), build(false))
}

func TestChoiceReplayDeterminism(t *testing.T) {
	derive := func(seed []rule.Choice) (string, []rule.Choice) {
		p := WithConfig(Config{RuleChoices: seed, LogSteps: true})
		p.Push(NewTerm("pac"))
		p.OptionalRunAt(rule.S("3.1.68"), 0, func(t *Term) { t.Extend("ati") })
		return p.Text(), p.RuleChoices()
	}

	text1, choices := derive(nil)
	text2, choices2 := derive(choices)

	assert.Equal(t, text1, text2)
	assert.Equal(t, choices, choices2)
}
