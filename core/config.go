package core

import (
	"gopkg.in/yaml.v2"

	"github.com/sanskrit-grammar/prakriya/rule"
)

// Config carries the options that seed and shape a single derivation.
type Config struct {
	// RuleChoices is the seed rule-choice log to replay: for a given rule,
	// the first matching entry wins and every call to Prakriya.Optionally
	// for that rule on this path observes it (earliest match wins; entries
	// are never consumed). Replaying the same seed on the same input
	// reproduces the same output (the determinism invariant).
	RuleChoices []rule.Choice `yaml:"rule_choices"`

	// LogSteps enables history recording. Disabling it must never change
	// the derived text (the logging-transparency invariant) — it only
	// skips building the Step snapshots.
	LogSteps bool `yaml:"log_steps"`

	// IsChandasi permits Vedic-only rules to apply.
	IsChandasi bool `yaml:"is_chandasi"`

	// UseSvaras produces accented surface text where available.
	UseSvaras bool `yaml:"use_svaras"`

	// NlpMode relaxes certain constraints meant only for human-facing
	// output (e.g. strict classical-usage filtering).
	NlpMode bool `yaml:"nlp_mode"`
}

// yamlConfig mirrors Config's field set under yaml tags without exposing
// the exported struct's own (un)marshalers to a recursive call.
type yamlConfig struct {
	RuleChoices []rule.Choice `yaml:"rule_choices"`
	LogSteps    bool          `yaml:"log_steps"`
	IsChandasi  bool          `yaml:"is_chandasi"`
	UseSvaras   bool          `yaml:"use_svaras"`
	NlpMode     bool          `yaml:"nlp_mode"`
}

// ConfigFromYAML parses a Config (typically a captured rule-choice log
// fixture) from YAML.
func ConfigFromYAML(data []byte) (Config, error) {
	var y yamlConfig
	if err := yaml.Unmarshal(data, &y); err != nil {
		return Config{}, err
	}
	return Config(y), nil
}

// ToYAML serializes cfg, most commonly to capture a derivation's observed
// rule-choice log so it can be replayed verbatim from a test fixture.
func (cfg Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(yamlConfig(cfg))
}
