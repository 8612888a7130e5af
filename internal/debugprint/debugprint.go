// Package debugprint renders a Prakriyā's derivation trail for a human
// reading a terminal: a numbered line per Step followed by one line per
// Term (changed Terms colored), plus the final rule-choice log.
package debugprint

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/k0kubun/pp"

	"github.com/sanskrit-grammar/prakriya/core"
)

// History prints every recorded Step of p: a numbered line naming the
// rule that fired, then one line per Term with its text, changed Terms
// highlighted.
func History(p *core.Prakriya) {
	for i, step := range p.History() {
		fmt.Printf("%2d. %s\n", i+1, step.Rule)
		for _, st := range step.Terms {
			if st.WasChanged {
				color.Yellow.Println("    " + st.Text)
			} else {
				fmt.Println("    " + st.Text)
			}
		}
	}
	if len(p.History()) == 0 {
		color.Gray.Println("(history logging was disabled for this derivation)")
	}
}

// Choices prints the rule-choice log, coloring accepted entries green and
// declined entries red.
func Choices(p *core.Prakriya) {
	for _, c := range p.RuleChoices() {
		if c.Accepted {
			color.Green.Println("accept  " + c.Rule.String())
		} else {
			color.Red.Println("decline " + c.Rule.String())
		}
	}
}

// Dump pretty-prints the full Prakriyā state for debugging.
func Dump(p *core.Prakriya) {
	pp.Println(p.Config())
	History(p)
	Choices(p)
}
