package ilp

import (
	"ilpload/facts"
	"ilpload/graph"
)

// ConstantComponents groups the constant pool by background connectivity:
// two constants are connected when they appear together in a background fact.
// Constants that only occur in examples end up in singleton components.
func ConstantComponents(p *Problem) ([][]facts.Constant, error) {
	constants := facts.SortConstants(p.Language.Constants)
	index := make(map[facts.Constant]int, len(constants))
	for i, c := range constants {
		index[c] = i
	}

	g := graph.NewGraph(len(constants))
	parser := facts.NewParser()
	for _, atom := range p.Background {
		pred, err := parser.ParseGroundAtom(string(atom))
		if err != nil {
			return nil, err
		}
		for i := 1; i < len(pred.Args); i++ {
			u, uok := index[facts.Constant(pred.Args[i-1])]
			v, vok := index[facts.Constant(pred.Args[i])]
			if uok && vok {
				g.AddEdge(u, v)
			}
		}
	}

	components := make([][]facts.Constant, 0)
	for _, ids := range g.Components() {
		group := make([]facts.Constant, len(ids))
		for i, id := range ids {
			group[i] = constants[id]
		}
		components = append(components, group)
	}
	return components, nil
}
