// Package rule identifies the source of a derivation step: a sūtra of the
// Aṣṭādhyāyī, a vārttika, a dhātupāṭha/uṇādipāṭha entry, and so on, plus the
// accept/decline vocabulary the rule runner uses to record optional-rule
// choices.
package rule

import "fmt"

// Source names the text a Rule was drawn from. Two rules with the same ID
// but a different Source are distinct rules.
type Source uint8

const (
	Ashtadhyayi Source = iota
	Varttika
	Dhatupatha
	Unadipatha
	Linganushasana
	Phit
	Kashika
	Kaumudi
)

func (s Source) String() string {
	switch s {
	case Ashtadhyayi:
		return "Ashtadhyayi"
	case Varttika:
		return "Varttika"
	case Dhatupatha:
		return "Dhatupatha"
	case Unadipatha:
		return "Unadipatha"
	case Linganushasana:
		return "Linganushasana"
	case Phit:
		return "Phit"
	case Kashika:
		return "Kashika"
	case Kaumudi:
		return "Kaumudi"
	default:
		return "Unknown"
	}
}

// Rule is a tagged reference to the rule that produced a derivation step.
type Rule struct {
	Source Source
	ID     string
}

// New builds a Rule from an explicit Source and ID.
func New(source Source, id string) Rule {
	return Rule{Source: source, ID: id}
}

// S promotes a bare sūtra-reference string to an Ashtadhyayi Rule — the
// Go equivalent of the source's "a bare string literal is implicitly an
// Ashtadhyayi rule" convenience, made explicit since Go has no implicit
// conversions.
func S(id string) Rule {
	return Rule{Source: Ashtadhyayi, ID: id}
}

// Varttikam builds a Varttika rule reference.
func Varttikam(id string) Rule { return Rule{Source: Varttika, ID: id} }

// Dhatu builds a Dhatupatha rule reference ("gana.index").
func Dhatu(id string) Rule { return Rule{Source: Dhatupatha, ID: id} }

// Unadi builds an Unadipatha rule reference ("gana.index").
func Unadi(id string) Rule { return Rule{Source: Unadipatha, ID: id} }

// Linga builds a Linganushasana rule reference (a positional integer id).
func Linga(id string) Rule { return Rule{Source: Linganushasana, ID: id} }

// PhitSutra builds a Phit rule reference (a positional integer id).
func PhitSutra(id string) Rule { return Rule{Source: Phit, ID: id} }

// Kashikavrtti builds a Kashika rule reference (the sūtra being commented on).
func Kashikavrtti(id string) Rule { return Rule{Source: Kashika, ID: id} }

// SiddhantaKaumudi builds a Kaumudi rule reference.
func SiddhantaKaumudi(id string) Rule { return Rule{Source: Kaumudi, ID: id} }

func (r Rule) String() string {
	return fmt.Sprintf("%s(%s)", r.Source, r.ID)
}

// Choice is one entry in a Prakriyā's rule-choice log: either Accept(Rule)
// or Decline(Rule). The ordered vector of Choices fully determines the
// path a derivation took through its optional rules.
type Choice struct {
	Rule     Rule
	Accepted bool
}

// Accept builds an accepted Choice for r.
func Accept(r Rule) Choice {
	return Choice{Rule: r, Accepted: true}
}

// Decline builds a declined Choice for r.
func Decline(r Rule) Choice {
	return Choice{Rule: r, Accepted: false}
}

func (c Choice) String() string {
	if c.Accepted {
		return fmt.Sprintf("Accept(%s)", c.Rule)
	}
	return fmt.Sprintf("Decline(%s)", c.Rule)
}
