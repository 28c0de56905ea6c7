package ilp

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"
)

type builtinProblem struct {
	bk, pos, neg string
	template     TemplateConfig
	closedWorld  bool
}

var builtins = map[string]func() builtinProblem{
	"even":        evenProblem,
	"predecessor": predecessorProblem,
}

func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Builtin returns one of the bundled problems by name.
func Builtin(name string, logger *zap.Logger) (*Problem, *ProgramTemplate, error) {
	def, ok := builtins[name]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownProblem, name, strings.Join(BuiltinNames(), ", "))
	}
	b := def()
	a := NewAssembler(WithTemplate(b.template), WithLogger(logger))
	p, t, err := a.AssembleText(name, b.bk, b.pos, b.neg)
	if err != nil {
		return nil, nil, err
	}
	if b.closedWorld {
		p.Negative = CompleteNegatives(p.Language, p.Positive)
	}
	return p, t, nil
}

// numerals writes zero(0) and succ(i,i+1) for i < n.
func numerals(n int) string {
	var sb strings.Builder
	sb.WriteString("zero(0).\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "succ(%d,%d).\n", i, i+1)
	}
	return sb.String()
}

func evenProblem() builtinProblem {
	var pos, neg strings.Builder
	for i := 0; i <= 10; i++ {
		if i%2 == 0 {
			fmt.Fprintf(&pos, "even(%d).\n", i)
		} else {
			fmt.Fprintf(&neg, "even(%d).\n", i)
		}
	}
	return builtinProblem{
		bk:       numerals(10),
		pos:      pos.String(),
		neg:      neg.String(),
		template: DefaultTemplate(),
	}
}

func predecessorProblem() builtinProblem {
	var pos strings.Builder
	for i := 0; i < 9; i++ {
		fmt.Fprintf(&pos, "predecessor(%d,%d).\n", i+1, i)
	}
	return builtinProblem{
		bk:  numerals(9),
		pos: pos.String(),
		template: TemplateConfig{
			Rules: []RuleConfig{{Predicate: TargetPlaceholder}},
			Steps: 1,
		},
		closedWorld: true,
	}
}
