package prolog_tool

import (
	"context"
	"fmt"

	"github.com/ichiban/prolog"
	"go.uber.org/zap"

	"ilpload/facts"
	"ilpload/ilp"
	"ilpload/render"
)

// Checker answers whether a hypothesis program, together with a problem's
// background knowledge, entails the problem's examples.
type Checker struct {
	prolog  *prolog.Interpreter
	problem *ilp.Problem
	logger  *zap.Logger
}

type Coverage struct {
	Covered        []facts.GroundAtom // positives entailed
	Uncovered      []facts.GroundAtom // positives not entailed
	FalsePositives []facts.GroundAtom // negatives entailed
	Rejected       []facts.GroundAtom // negatives not entailed
}

func (c *Coverage) Complete() bool {
	return len(c.Uncovered) == 0
}

func (c *Coverage) Consistent() bool {
	return len(c.FalsePositives) == 0
}

// NewChecker consults the background of p and the hypothesis clauses into a
// fresh interpreter.
func NewChecker(p *ilp.Problem, t *ilp.ProgramTemplate, hypothesis string, logger *zap.Logger) (*Checker, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	program, err := render.Program(p, t, hypothesis)
	if err != nil {
		return nil, err
	}
	interpreter := prolog.New(nil, nil)
	if err := interpreter.Exec(program); err != nil {
		return nil, fmt.Errorf("consult %s: %w", p.Name, err)
	}
	logger.Debug("consulted program", zap.String("problem", p.Name), zap.Int("bytes", len(program)))
	return &Checker{prolog: interpreter, problem: p, logger: logger}, nil
}

func (c *Checker) Covers(ctx context.Context, atom facts.GroundAtom) (covered bool, err error) {
	query, err := render.PrologAtom(atom)
	if err != nil {
		return false, err
	}
	solutions, err := c.prolog.QueryContext(ctx, query+".")
	if err != nil {
		return false, fmt.Errorf("query %s: %w", atom, err)
	}
	defer func() {
		if cerr := solutions.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	covered = solutions.Next()
	if err := solutions.Err(); err != nil {
		return false, fmt.Errorf("query %s: %w", atom, err)
	}
	return covered, nil
}

func (c *Checker) Evaluate(ctx context.Context) (*Coverage, error) {
	cov := &Coverage{}
	for _, atom := range c.problem.Positive {
		ok, err := c.Covers(ctx, atom)
		if err != nil {
			return nil, err
		}
		if ok {
			cov.Covered = append(cov.Covered, atom)
		} else {
			cov.Uncovered = append(cov.Uncovered, atom)
		}
	}
	for _, atom := range c.problem.Negative {
		ok, err := c.Covers(ctx, atom)
		if err != nil {
			return nil, err
		}
		if ok {
			cov.FalsePositives = append(cov.FalsePositives, atom)
		} else {
			cov.Rejected = append(cov.Rejected, atom)
		}
	}
	c.logger.Debug("evaluated hypothesis",
		zap.String("problem", c.problem.Name),
		zap.Int("covered", len(cov.Covered)),
		zap.Int("uncovered", len(cov.Uncovered)),
		zap.Int("false_positives", len(cov.FalsePositives)),
	)
	return cov, nil
}
