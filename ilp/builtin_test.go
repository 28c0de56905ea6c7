package ilp

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ilpload/facts"
)

func TestBuiltinNames(t *testing.T) {
	assert.Equal(t, []string{"even", "predecessor"}, BuiltinNames())
}

func TestBuiltinEven(t *testing.T) {
	p, tmpl, err := Builtin("even", zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "even/1", p.Language.Target.String())
	assert.Equal(t, sigs("zero/1", "succ/2"), p.Language.Extensional)
	assert.Equal(t, 11, p.Language.Constants.Cardinality())
	assert.Len(t, p.Background, 11)
	assert.Equal(t, facts.GroundAtom("succ(9,10)"), p.Background[10])
	assert.Equal(t, []facts.GroundAtom{"even(0)", "even(2)", "even(4)", "even(6)", "even(8)", "even(10)"}, p.Positive)
	assert.Equal(t, []facts.GroundAtom{"even(1)", "even(3)", "even(5)", "even(7)", "even(9)"}, p.Negative)
	assert.Equal(t, 6, tmpl.Steps)
	assert.Equal(t, sigs("pred/2"), tmpl.Auxiliary)
}

func TestBuiltinPredecessor(t *testing.T) {
	p, tmpl, err := Builtin("predecessor", nil)
	require.NoError(t, err)

	assert.Equal(t, "predecessor/2", p.Language.Target.String())
	assert.Equal(t, 10, p.Language.Constants.Cardinality())
	assert.Len(t, p.Background, 10)
	assert.Len(t, p.Positive, 9)
	assert.Len(t, p.Negative, 100-9)
	assert.Equal(t, facts.GroundAtom("predecessor(0,0)"), p.Negative[0])
	assert.NotContains(t, p.Negative, facts.GroundAtom("predecessor(1,0)"))

	assert.Empty(t, tmpl.Auxiliary)
	assert.Equal(t, 1, tmpl.Steps)
	assert.Equal(t, map[facts.Signature]RuleSlots{
		facts.MustSignature("predecessor/2"): {First: RuleTemplate{Existential: 0, Intensional: false}},
	}, tmpl.Rules)
}

func TestBuiltinUnknown(t *testing.T) {
	_, _, err := Builtin("odd", nil)
	assert.ErrorIs(t, err, ErrUnknownProblem)
}

func TestCompleteNegatives(t *testing.T) {
	lm := LanguageModel{
		Target:    facts.MustSignature("lt/2"),
		Constants: mapset.NewSet[facts.Constant]("2", "1", "a"),
	}
	got := CompleteNegatives(lm, []facts.GroundAtom{"lt(1,2)"})
	assert.Equal(t, []facts.GroundAtom{
		"lt(1,1)", "lt(1,a)",
		"lt(2,1)", "lt(2,2)", "lt(2,a)",
		"lt(a,1)", "lt(a,2)", "lt(a,a)",
	}, got)

	lm.Constants = mapset.NewSet[facts.Constant]()
	assert.Empty(t, CompleteNegatives(lm, nil))
}

func TestConstantComponents(t *testing.T) {
	p, _, err := NewAssembler().AssembleText("islands",
		"edge(a,b).\nedge(b,c).\nedge(x,y).\nnode(z).",
		"path(a,c).",
		"path(a,q).")
	require.NoError(t, err)

	components, err := ConstantComponents(p)
	require.NoError(t, err)
	assert.Equal(t, [][]facts.Constant{{"a", "b", "c"}, {"q"}, {"x", "y"}, {"z"}}, components)
}
