package ilp

import (
	"errors"

	mapset "github.com/deckarep/golang-set/v2"

	"ilpload/facts"
)

var (
	ErrEmptyExamples   = errors.New("no positive examples")
	ErrUnknownProblem  = errors.New("unknown problem")
	ErrInvalidTemplate = errors.New("invalid program template")
)

// LanguageModel is the vocabulary of a problem.
type LanguageModel struct {
	Target      facts.Signature
	Extensional []facts.Signature
	Constants   mapset.Set[facts.Constant]
}

// Problem is one learning task. Ground-atom collections hold no duplicates
// and keep the order in which atoms were first seen.
type Problem struct {
	Name       string
	Language   LanguageModel
	Background []facts.GroundAtom
	Positive   []facts.GroundAtom
	Negative   []facts.GroundAtom
}

func uniqueAtoms(atoms []facts.GroundAtom) []facts.GroundAtom {
	seen := mapset.NewSet[facts.GroundAtom]()
	unique := make([]facts.GroundAtom, 0, len(atoms))
	for _, a := range atoms {
		if seen.Add(a) {
			unique = append(unique, a)
		}
	}
	return unique
}

func uniqueSignatures(preds []facts.Predicate) []facts.Signature {
	seen := mapset.NewSet[facts.Signature]()
	sigs := make([]facts.Signature, 0)
	for _, p := range preds {
		sig := p.Signature()
		if seen.Add(sig) {
			sigs = append(sigs, sig)
		}
	}
	return sigs
}
