package aoc

import (
	"slices"

	"golang.org/x/exp/maps"
)

// Graph is a weighted graph. Edges added with AddEdge are stored in both
// directions; AddArc stores a single direction.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func (g *Graph[K]) RemoveEdge(a, b K) {
	delete(g.Edges[a], b)
	delete(g.Edges[b], a)
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

func (g *Graph[K]) AddEdge(a, b K, dist int) {
	g.AddArc(a, b, dist)
	g.AddArc(b, a, dist)
}

// AddArc adds a directed edge from a to b.
func (g *Graph[K]) AddArc(a, b K, dist int) {
	InitMap(&g.Edges)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.AddNode(a)
	g.AddNode(b)
}

// Collapse collapses the graph by removing any nodes with only two edges and
// merging the two edges into one. Nodes in keep are never removed. When the
// merged edge already exists, the longer of the two is kept.
//
// Collapse assumes an undirected graph.
func (g *Graph[K]) Collapse(keep ...K) {
	for {
		trimmed := false
		for k1, e := range g.Edges {
			if g.Degree(k1) != 2 || slices.Contains(keep, k1) {
				continue
			}
			ends := maps.Keys(e)
			k2, k3 := ends[0], ends[1]
			d := e[k2] + e[k3]

			g.RemoveEdge(k2, k1)
			g.RemoveEdge(k3, k1)
			delete(g.Edges, k1)
			delete(g.Nodes, k1)
			if old, ok := g.Edges[k2][k3]; !ok || old < d {
				g.AddEdge(k2, k3, d)
			}
			trimmed = true
		}
		if !trimmed {
			break
		}
	}
}

// LongestPath returns the length of the longest simple path from start
// to end. It reports false if end cannot be reached.
//
// The search is exhaustive, so it is only practical on small graphs such
// as collapsed grids. If end has a single neighbor, reaching that neighbor
// commits the path to end.
func (g Graph[K]) LongestPath(start, end K) (rp int, ok bool) {
	if _, ok := g.Nodes[start]; !ok {
		return 0, false
	}
	keys := maps.Keys(g.Nodes)
	ids := make(map[K]int, len(keys))
	for i, k := range keys {
		ids[k] = i
	}
	type arc struct{ to, dist int }
	adj := make([][]arc, len(keys))
	for k, e := range g.Edges {
		for k2, d := range e {
			adj[ids[k]] = append(adj[ids[k]], arc{ids[k2], d})
		}
	}

	target, ok := ids[end]
	if !ok {
		return 0, false
	}
	last := -1 // the only node leading into end, if there is exactly one
	var into []int
	for i, as := range adj {
		for _, a := range as {
			if a.to == target {
				into = append(into, i)
			}
		}
	}
	if len(into) == 1 {
		last = into[0]
	}

	visited := make([]uint64, (len(keys)+63)/64)
	best := -1
	var walk func(n, dist int)
	walk = func(n, dist int) {
		if n == target {
			best = max(best, dist)
			return
		}
		visited[n/64] |= 1 << (n % 64)
		for _, a := range adj[n] {
			if n == last && a.to != target {
				continue
			}
			if visited[a.to/64]&(1<<(a.to%64)) != 0 {
				continue
			}
			walk(a.to, dist+a.dist)
		}
		visited[n/64] &^= 1 << (n % 64)
	}
	walk(ids[start], 0)
	if best < 0 {
		return 0, false
	}
	return best, true
}

// Degree returns the number of edges leaving a.
func (g *Graph[K]) Degree(a K) int {
	return len(g.Edges[a])
}

// InitMap allocates *m if it is nil.
func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}
