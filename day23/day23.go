// Package day23 finds the longest scenic hike through the forest.
package day23

import (
	"errors"
	"io"
	"strings"

	aoc "github.com/attilahorvath/advent-of-code-2023"
)

var (
	ErrNoEndpoints = errors.New("day23: want exactly one path tile in the top and bottom rows")
	ErrNoHike      = errors.New("day23: no hike reaches the bottom row")
)

var slopes = map[byte]aoc.Direction{
	'^': aoc.Up,
	'>': aoc.Right,
	'v': aoc.Down,
	'<': aoc.Left,
}

func forest(c byte) bool { return c == '#' }

// Trails is the hiking map, with its entry in the top row and its exit in
// the bottom row.
type Trails struct {
	grid        aoc.Grid[byte]
	entry, exit aoc.Pt
}

func ParseTrails(r io.Reader) (*Trails, error) {
	g, err := aoc.ReadGrid(r)
	if err != nil {
		return nil, err
	}
	find := func(y int) (aoc.Pt, error) {
		row := string(g[y])
		x := strings.IndexByte(row, '.')
		if x < 0 || strings.Count(row, ".") != 1 {
			return aoc.Pt{}, ErrNoEndpoints
		}
		return aoc.Pt{X: x, Y: y}, nil
	}
	t := &Trails{grid: g}
	if t.entry, err = find(0); err != nil {
		return nil, err
	}
	if t.exit, err = find(len(g) - 1); err != nil {
		return nil, err
	}
	return t, nil
}

// open returns the directions a hiker standing on p can step in.
func (t *Trails) open(p aoc.Pt, slippery bool) []aoc.Direction {
	var out []aoc.Direction
	slope, onSlope := slopes[t.grid.At(p)]
	for _, d := range aoc.Directions {
		if slippery && onSlope && d != slope {
			continue
		}
		if v, ok := t.grid.AtOk(p.Add(d.Delta())); ok && !forest(v) {
			out = append(out, d)
		}
	}
	return out
}

// junction reports whether p is a hike endpoint or a fork in the trail.
func (t *Trails) junction(p aoc.Pt) bool {
	return p == t.entry || p == t.exit || len(t.open(p, false)) > 2
}

// slipperyGraph returns the directed graph of the junctions, with an arc
// for every trail between two junctions that can be walked without going
// up a slope.
func (t *Trails) slipperyGraph() aoc.Graph[aoc.Pt] {
	var g aoc.Graph[aoc.Pt]
	g.AddNode(t.entry)
	seen := map[aoc.Pt]bool{t.entry: true}
	q := aoc.NewQueue(t.entry)
	q.While(func(from aoc.Pt) bool {
		for _, d := range t.open(from, true) {
			prev, cur, steps := from, from.Add(d.Delta()), 1
			for !t.junction(cur) {
				var next []aoc.Pt
				for _, d := range t.open(cur, true) {
					if p := cur.Add(d.Delta()); p != prev {
						next = append(next, p)
					}
				}
				if len(next) != 1 {
					break
				}
				prev, cur = cur, next[0]
				steps++
			}
			if !t.junction(cur) {
				continue
			}
			if old, ok := g.Edges[from][cur]; !ok || old < steps {
				g.AddArc(from, cur, steps)
			}
			if !seen[cur] {
				seen[cur] = true
				q.Push(cur)
			}
		}
		return true
	})
	return g
}

// LongestHike returns the length of the longest hike from the entry to the
// exit that never visits a tile twice. When slippery, slopes may only be
// walked down.
func (t *Trails) LongestHike(slippery bool) (int, error) {
	var g aoc.Graph[aoc.Pt]
	if slippery {
		g = t.slipperyGraph()
	} else {
		g = t.grid.ToGraph(t.entry, false, forest, t.exit)
	}
	n, ok := g.LongestPath(t.entry, t.exit)
	if !ok {
		return 0, ErrNoHike
	}
	return n, nil
}

// LongestHikeSteps parses the map and returns its longest hike.
func LongestHikeSteps(r io.Reader, slippery bool) (int, error) {
	t, err := ParseTrails(r)
	if err != nil {
		return 0, err
	}
	return t.LongestHike(slippery)
}
