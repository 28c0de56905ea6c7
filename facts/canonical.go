package facts

import (
	"fmt"
	"strconv"
	"strings"
)

// Signature identifies the shape of a predicate independent of its arguments.
type Signature struct {
	Name  string
	Arity int
}

func (s Signature) String() string {
	return s.Name + "/" + strconv.Itoa(s.Arity)
}

func ParseSignature(s string) (Signature, error) {
	i := strings.LastIndexByte(s, '/')
	if i <= 0 {
		return Signature{}, fmt.Errorf("signature %q: missing name/arity", s)
	}
	arity, err := strconv.Atoi(s[i+1:])
	if err != nil || arity < 1 {
		return Signature{}, fmt.Errorf("signature %q: invalid arity", s)
	}
	return Signature{Name: s[:i], Arity: arity}, nil
}

func MustSignature(s string) Signature {
	sig, err := ParseSignature(s)
	if err != nil {
		panic(err)
	}
	return sig
}

// GroundAtom is the canonical text of a fact without its trailing period.
type GroundAtom string

func (p Predicate) Signature() Signature {
	return Signature{Name: p.Name, Arity: p.Arity()}
}

func (p Predicate) GroundAtom() GroundAtom {
	return GroundAtom(p.Name + "(" + strings.Join(p.Args, ",") + ")")
}

func GroundAtoms(preds []Predicate) []GroundAtom {
	atoms := make([]GroundAtom, len(preds))
	for i, p := range preds {
		atoms[i] = p.GroundAtom()
	}
	return atoms
}
