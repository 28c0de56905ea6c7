package render

import (
	"slices"
	"strings"

	"ilpload/facts"
	"ilpload/ilp"
)

// Document is a serializable view of a problem and its template. Constants
// are sorted so that output is stable.
type Document struct {
	Name        string            `json:"name" yaml:"name"`
	Target      string            `json:"target" yaml:"target"`
	Extensional []string          `json:"extensional" yaml:"extensional"`
	Constants   []string          `json:"constants" yaml:"constants"`
	Background  []string          `json:"background" yaml:"background"`
	Positive    []string          `json:"positive" yaml:"positive"`
	Negative    []string          `json:"negative" yaml:"negative"`
	Template    *TemplateDocument `json:"template,omitempty" yaml:"template,omitempty"`
}

type TemplateDocument struct {
	Auxiliary []string       `json:"auxiliary" yaml:"auxiliary"`
	Steps     int            `json:"steps" yaml:"steps"`
	Rules     []RuleDocument `json:"rules" yaml:"rules"`
}

type RuleDocument struct {
	Predicate string            `json:"predicate" yaml:"predicate"`
	First     ilp.RuleTemplate  `json:"first" yaml:"first"`
	Second    *ilp.RuleTemplate `json:"second,omitempty" yaml:"second,omitempty"`
}

func NewDocument(p *ilp.Problem, t *ilp.ProgramTemplate) *Document {
	doc := &Document{
		Name:        p.Name,
		Target:      p.Language.Target.String(),
		Extensional: signatureStrings(p.Language.Extensional),
		Constants:   atomStrings(facts.SortConstants(p.Language.Constants)),
		Background:  atomStrings(p.Background),
		Positive:    atomStrings(p.Positive),
		Negative:    atomStrings(p.Negative),
	}
	if t != nil {
		doc.Template = newTemplateDocument(p.Language.Target, t)
	}
	return doc
}

// Rules are listed target first, then auxiliaries in declaration order.
func newTemplateDocument(target facts.Signature, t *ilp.ProgramTemplate) *TemplateDocument {
	td := &TemplateDocument{
		Auxiliary: signatureStrings(t.Auxiliary),
		Steps:     t.Steps,
		Rules:     make([]RuleDocument, 0, len(t.Rules)),
	}
	order := append([]facts.Signature{target}, t.Auxiliary...)
	var rest []facts.Signature
	for sig := range t.Rules {
		if !slices.Contains(order, sig) {
			rest = append(rest, sig)
		}
	}
	slices.SortFunc(rest, func(a, b facts.Signature) int {
		return strings.Compare(a.String(), b.String())
	})
	order = append(order, rest...)
	emitted := make(map[facts.Signature]bool, len(order))
	for _, sig := range order {
		slots, ok := t.Rules[sig]
		if !ok || emitted[sig] {
			continue
		}
		emitted[sig] = true
		td.Rules = append(td.Rules, RuleDocument{Predicate: sig.String(), First: slots.First, Second: slots.Second})
	}
	return td
}

func signatureStrings(sigs []facts.Signature) []string {
	out := make([]string, len(sigs))
	for i, s := range sigs {
		out[i] = s.String()
	}
	return out
}

func atomStrings[T ~string](atoms []T) []string {
	out := make([]string, len(atoms))
	for i, a := range atoms {
		out[i] = string(a)
	}
	return out
}
