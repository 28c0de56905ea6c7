package prolog_tool

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ilpload/facts"
	"ilpload/ilp"
)

const evenHypothesis = `
even(X) :- zero(X).
even(X) :- succ(Y, X), succ(Z, Y), even(Z).
`

func evaluate(t *testing.T, problem, hypothesis string) *Coverage {
	t.Helper()
	p, tmpl, err := ilp.Builtin(problem, nil)
	require.NoError(t, err)
	checker, err := NewChecker(p, tmpl, hypothesis, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cov, err := checker.Evaluate(ctx)
	require.NoError(t, err)
	return cov
}

func TestEvenHypothesis(t *testing.T) {
	cov := evaluate(t, "even", evenHypothesis)
	assert.True(t, cov.Complete())
	assert.True(t, cov.Consistent())
	assert.Len(t, cov.Covered, 6)
	assert.Len(t, cov.Rejected, 5)
}

func TestIncompleteHypothesis(t *testing.T) {
	cov := evaluate(t, "even", "even(X) :- zero(X).")
	assert.False(t, cov.Complete())
	assert.True(t, cov.Consistent())
	assert.Equal(t, []facts.GroundAtom{"even(0)"}, cov.Covered)
	assert.Len(t, cov.Uncovered, 5)
}

func TestInconsistentHypothesis(t *testing.T) {
	cov := evaluate(t, "even", "even(X) :- succ(_, X).\neven(X) :- zero(X).")
	assert.True(t, cov.Complete())
	assert.False(t, cov.Consistent())
	assert.Len(t, cov.FalsePositives, 5)
}

func TestEmptyHypothesis(t *testing.T) {
	cov := evaluate(t, "even", "")
	assert.Empty(t, cov.Covered)
	assert.Len(t, cov.Rejected, 5)
}

func TestPredecessorHypothesis(t *testing.T) {
	cov := evaluate(t, "predecessor", "predecessor(X, Y) :- succ(Y, X).")
	assert.True(t, cov.Complete())
	assert.True(t, cov.Consistent())
	assert.Len(t, cov.Rejected, 91)
}

func TestQuotedConstants(t *testing.T) {
	p, tmpl, err := ilp.NewAssembler().AssembleText("people",
		"parent(Ann,bob).\nparent(bob,Cy).",
		"grandparent(Ann,Cy).",
		"grandparent(bob,Ann).")
	require.NoError(t, err)

	checker, err := NewChecker(p, tmpl, "grandparent(X,Z) :- parent(X,Y), parent(Y,Z).", nil)
	require.NoError(t, err)
	ok, err := checker.Covers(context.Background(), "grandparent(Ann,Cy)")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = checker.Covers(context.Background(), "grandparent(bob,Ann)")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInvalidHypothesis(t *testing.T) {
	p, tmpl, err := ilp.Builtin("even", nil)
	require.NoError(t, err)
	_, err = NewChecker(p, tmpl, "even(X) :- ", nil)
	assert.Error(t, err)
}
