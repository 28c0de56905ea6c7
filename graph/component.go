package graph

import "slices"

// Graph is an undirected graph over the vertices 0..n-1.
type Graph struct {
	adj [][]int
}

func NewGraph(n int) *Graph {
	return &Graph{make([][]int, n)}
}

func (g *Graph) Len() int {
	return len(g.adj)
}

func (g *Graph) AddEdge(u, v int) {
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
}

// Components returns the connected components, each sorted, ordered by their
// smallest vertex. Isolated vertices form singleton components.
func (g *Graph) Components() [][]int {
	n := len(g.adj)
	visited := make([]bool, n)
	components := make([][]int, 0)

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		visited[start] = true
		component := []int{}
		stack := []int{start}
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			component = append(component, v)
			for _, w := range g.adj[v] {
				if !visited[w] {
					visited[w] = true
					stack = append(stack, w)
				}
			}
		}
		slices.Sort(component)
		components = append(components, component)
	}
	return components
}
