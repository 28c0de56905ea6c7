package ilp

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"ilpload/facts"
)

const (
	BackgroundFile = "bk.pl"
	PositiveFile   = "pos.pl"
	NegativeFile   = "neg.pl"
)

type Assembler struct {
	template TemplateConfig
	logger   *zap.Logger
}

type Option func(*Assembler)

func WithLogger(logger *zap.Logger) Option {
	return func(a *Assembler) {
		if logger != nil {
			a.logger = logger
		}
	}
}

func WithTemplate(cfg TemplateConfig) Option {
	return func(a *Assembler) {
		a.template = cfg
	}
}

func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{
		template: DefaultTemplate(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AssembleDir loads bk.pl, pos.pl and neg.pl from dir. The problem is named after dir.
func (a *Assembler) AssembleDir(dir string) (*Problem, *ProgramTemplate, error) {
	return a.AssembleFiles(
		filepath.Base(filepath.Clean(dir)),
		filepath.Join(dir, BackgroundFile),
		filepath.Join(dir, PositiveFile),
		filepath.Join(dir, NegativeFile),
	)
}

func (a *Assembler) AssembleFiles(name, bkPath, posPath, negPath string) (*Problem, *ProgramTemplate, error) {
	parser := facts.NewParser()
	var groups [3][]facts.Predicate
	for i, path := range []string{bkPath, posPath, negPath} {
		preds, err := parser.ParseFile(path)
		if err != nil {
			return nil, nil, err
		}
		a.logger.Debug("parsed fact file", zap.String("path", path), zap.Int("facts", len(preds)))
		groups[i] = preds
	}
	return a.Assemble(name, groups[0], groups[1], groups[2])
}

// AssembleText is AssembleFiles for fact texts already in memory.
func (a *Assembler) AssembleText(name, bk, pos, neg string) (*Problem, *ProgramTemplate, error) {
	parser := facts.NewParser()
	var groups [3][]facts.Predicate
	for i, src := range [3][2]string{{BackgroundFile, bk}, {PositiveFile, pos}, {NegativeFile, neg}} {
		preds, err := parser.ParseString(src[0], src[1])
		if err != nil {
			return nil, nil, err
		}
		groups[i] = preds
	}
	return a.Assemble(name, groups[0], groups[1], groups[2])
}

// Assemble builds a problem from parsed background knowledge and examples.
// The target is the signature of the first positive example.
func (a *Assembler) Assemble(name string, bk, pos, neg []facts.Predicate) (*Problem, *ProgramTemplate, error) {
	if len(pos) == 0 {
		return nil, nil, fmt.Errorf("problem %s: %w", name, ErrEmptyExamples)
	}
	target := pos[0].Signature()
	tmpl, err := a.template.Build(target)
	if err != nil {
		return nil, nil, fmt.Errorf("problem %s: %w", name, err)
	}

	// Extensional predicates are not filtered against the target or auxiliaries.
	lm := LanguageModel{
		Target:      target,
		Extensional: uniqueSignatures(bk),
		Constants:   facts.CollectConstants(bk, pos, neg),
	}
	p := &Problem{
		Name:       name,
		Language:   lm,
		Background: uniqueAtoms(facts.GroundAtoms(bk)),
		Positive:   uniqueAtoms(facts.GroundAtoms(pos)),
		Negative:   uniqueAtoms(facts.GroundAtoms(neg)),
	}
	a.logger.Debug("assembled problem",
		zap.String("name", name),
		zap.Stringer("target", target),
		zap.Int("extensional", len(lm.Extensional)),
		zap.Int("constants", lm.Constants.Cardinality()),
		zap.Int("background", len(p.Background)),
		zap.Int("positive", len(p.Positive)),
		zap.Int("negative", len(p.Negative)),
	)
	return p, tmpl, nil
}
