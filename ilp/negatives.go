package ilp

import (
	mapset "github.com/deckarep/golang-set/v2"

	"ilpload/facts"
)

// CompleteNegatives applies the closed-world assumption to the target: every
// ground atom of the target over the constant pool that is not a positive
// example is a negative one.
func CompleteNegatives(lm LanguageModel, positive []facts.GroundAtom) []facts.GroundAtom {
	constants := facts.SortConstants(lm.Constants)
	arity := lm.Target.Arity
	if len(constants) == 0 || arity < 1 {
		return nil
	}
	pos := mapset.NewSet(positive...)
	negatives := make([]facts.GroundAtom, 0)

	idx := make([]int, arity)
	args := make([]string, arity)
	for {
		for i, j := range idx {
			args[i] = string(constants[j])
		}
		atom := facts.Predicate{Name: lm.Target.Name, Args: args}.GroundAtom()
		if !pos.Contains(atom) {
			negatives = append(negatives, atom)
		}
		k := arity - 1
		for k >= 0 {
			idx[k]++
			if idx[k] < len(constants) {
				break
			}
			idx[k] = 0
			k--
		}
		if k < 0 {
			return negatives
		}
	}
}
