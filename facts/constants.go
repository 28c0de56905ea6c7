package facts

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Constant is a ground argument token. Two constants are equal when their text is.
type Constant string

// Numeric reports whether c was lexed as a number rather than a symbol.
func (c Constant) Numeric() bool {
	return strings.ContainsAny(string(c), "0123456789")
}

// CollectConstants returns every distinct argument across all groups.
func CollectConstants(groups ...[]Predicate) mapset.Set[Constant] {
	constants := mapset.NewSet[Constant]()
	for _, preds := range groups {
		for _, p := range preds {
			for _, arg := range p.Args {
				constants.Add(Constant(arg))
			}
		}
	}
	return constants
}

// SortConstants orders numeric constants by value, then symbolic ones by text.
func SortConstants(constants mapset.Set[Constant]) []Constant {
	sorted := constants.ToSlice()
	slices.SortFunc(sorted, compareConstants)
	return sorted
}

func compareConstants(a, b Constant) int {
	an, bn := a.Numeric(), b.Numeric()
	switch {
	case an && bn:
		// Tokens such as 1..2 are numbers to the lexer but have no value;
		// they sort after the ones that do.
		av, aerr := strconv.ParseFloat(string(a), 64)
		bv, berr := strconv.ParseFloat(string(b), 64)
		switch {
		case aerr == nil && berr == nil:
			if c := cmp.Compare(av, bv); c != 0 {
				return c
			}
		case aerr == nil:
			return -1
		case berr == nil:
			return 1
		}
	case an:
		return -1
	case bn:
		return 1
	}
	return cmp.Compare(a, b)
}
