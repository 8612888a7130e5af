package rule

import "fmt"

// yamlRule is the on-disk shape of a Rule: the Source spelled out by name
// rather than its numeric iota, so fixtures stay legible and stable across
// reorderings of the Source enum.
type yamlRule struct {
	Source string `yaml:"source"`
	ID     string `yaml:"id"`
}

var sourceByName = map[string]Source{
	Ashtadhyayi.String():    Ashtadhyayi,
	Varttika.String():       Varttika,
	Dhatupatha.String():     Dhatupatha,
	Unadipatha.String():     Unadipatha,
	Linganushasana.String(): Linganushasana,
	Phit.String():           Phit,
	Kashika.String():        Kashika,
	Kaumudi.String():        Kaumudi,
}

// MarshalYAML implements yaml.Marshaler.
func (r Rule) MarshalYAML() (interface{}, error) {
	return yamlRule{Source: r.Source.String(), ID: r.ID}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Rule) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var y yamlRule
	if err := unmarshal(&y); err != nil {
		return err
	}
	src, ok := sourceByName[y.Source]
	if !ok {
		return fmt.Errorf("rule: unrecognized source %q", y.Source)
	}
	r.Source = src
	r.ID = y.ID
	return nil
}

// yamlChoice is the on-disk shape of a Choice.
type yamlChoice struct {
	Rule     Rule `yaml:"rule"`
	Accepted bool `yaml:"accepted"`
}

// MarshalYAML implements yaml.Marshaler.
func (c Choice) MarshalYAML() (interface{}, error) {
	return yamlChoice{Rule: c.Rule, Accepted: c.Accepted}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Choice) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var y yamlChoice
	if err := unmarshal(&y); err != nil {
		return err
	}
	c.Rule = y.Rule
	c.Accepted = y.Accepted
	return nil
}
