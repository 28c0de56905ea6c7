package ilp

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ilpload/facts"
)

// TargetPlaceholder names the inferred target predicate in a TemplateConfig.
const TargetPlaceholder = "$target"

// RuleTemplate bounds the clauses generated for one rule slot: how many
// existentially quantified variables a clause may introduce and whether its
// body may use intensional predicates.
type RuleTemplate struct {
	Existential int  `yaml:"existential" json:"existential"`
	Intensional bool `yaml:"intensional" json:"intensional"`
}

type RuleSlots struct {
	First  RuleTemplate
	Second *RuleTemplate
}

type ProgramTemplate struct {
	Auxiliary []facts.Signature
	Rules     map[facts.Signature]RuleSlots
	Steps     int
}

type RuleConfig struct {
	Predicate string        `yaml:"predicate"`
	First     RuleTemplate  `yaml:"first"`
	Second    *RuleTemplate `yaml:"second,omitempty"`
}

// TemplateConfig is a program template that has not been bound to a target yet.
type TemplateConfig struct {
	Auxiliary []string     `yaml:"auxiliary"`
	Rules     []RuleConfig `yaml:"rules"`
	Steps     int          `yaml:"steps"`
}

func DefaultTemplate() TemplateConfig {
	return TemplateConfig{
		Auxiliary: []string{"pred/2"},
		Rules: []RuleConfig{
			{
				Predicate: TargetPlaceholder,
				First:     RuleTemplate{Existential: 0, Intensional: false},
				Second:    &RuleTemplate{Existential: 1, Intensional: true},
			},
			{
				Predicate: "pred/2",
				First:     RuleTemplate{Existential: 1, Intensional: false},
			},
		},
		Steps: 6,
	}
}

func LoadTemplate(path string) (TemplateConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TemplateConfig{}, fmt.Errorf("load template: %w", err)
	}
	return ParseTemplate(data)
}

func ParseTemplate(data []byte) (TemplateConfig, error) {
	var cfg TemplateConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TemplateConfig{}, fmt.Errorf("%w: %w", ErrInvalidTemplate, err)
	}
	return cfg, nil
}

// Build binds the config to a target and checks it.
func (c TemplateConfig) Build(target facts.Signature) (*ProgramTemplate, error) {
	if c.Steps < 1 {
		return nil, fmt.Errorf("%w: steps must be positive, got %d", ErrInvalidTemplate, c.Steps)
	}
	t := &ProgramTemplate{
		Auxiliary: make([]facts.Signature, 0, len(c.Auxiliary)),
		Rules:     make(map[facts.Signature]RuleSlots, len(c.Rules)),
		Steps:     c.Steps,
	}
	known := map[facts.Signature]bool{target: true}
	named := make(map[string]bool, len(c.Rules))
	for _, s := range c.Auxiliary {
		sig, err := facts.ParseSignature(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTemplate, err)
		}
		t.Auxiliary = append(t.Auxiliary, sig)
		known[sig] = true
	}
	for _, r := range c.Rules {
		sig, key := target, TargetPlaceholder
		if r.Predicate != TargetPlaceholder {
			var err error
			if sig, err = facts.ParseSignature(r.Predicate); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidTemplate, err)
			}
			key = sig.String()
		}
		if !known[sig] {
			return nil, fmt.Errorf("%w: rules for %s, which is neither the target nor auxiliary", ErrInvalidTemplate, sig)
		}
		if named[key] {
			return nil, fmt.Errorf("%w: duplicate rules for %s", ErrInvalidTemplate, key)
		}
		named[key] = true
		if r.First.Existential < 0 || (r.Second != nil && r.Second.Existential < 0) {
			return nil, fmt.Errorf("%w: negative existential count for %s", ErrInvalidTemplate, sig)
		}
		slots := RuleSlots{First: r.First}
		if r.Second != nil {
			second := *r.Second
			slots.Second = &second
		}
		// The target may coincide with an auxiliary; the later rule wins.
		t.Rules[sig] = slots
	}
	return t, nil
}

func (c TemplateConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
