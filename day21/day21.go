// Package day21 counts the garden plots the elf can reach on an
// infinitely repeating map.
package day21

import (
	"errors"
	"fmt"
	"io"
	"slices"

	aoc "github.com/attilahorvath/advent-of-code-2023"
)

var (
	ErrNoStart      = errors.New("day21: no start position")
	ErrTooManySteps = errors.New("day21: too many steps to walk and map is not extrapolatable")
)

// maxExactSteps is the largest step count walked out in full.
const maxExactSteps = 4096

// Garden is a map of plots '.' and rocks '#', repeated in every direction.
type Garden struct {
	grid  aoc.Grid[byte]
	size  aoc.Pt
	start aoc.Pt
}

func ParseGarden(r io.Reader) (*Garden, error) {
	g, err := aoc.ReadGrid(r)
	if err != nil {
		return nil, err
	}
	start, ok := aoc.Find(g, 'S')
	if !ok {
		return nil, ErrNoStart
	}
	return &Garden{grid: g, size: g.Size(), start: start}, nil
}

func (g *Garden) rock(p aoc.Pt) bool {
	return g.grid.At(aoc.StandardizePt(p, g.size)) == '#'
}

// layers returns, for each distance up to maxDist, the number of plots
// whose shortest walk from the start has that length.
//
// The plots are a bipartite graph, so the plots one step further out are
// the neighbours of the current layer that are in neither it nor the
// previous one.
func (g *Garden) layers(maxDist int) []int {
	counts := []int{1}
	prev := map[aoc.Pt]bool{}
	cur := map[aoc.Pt]bool{g.start: true}
	for d := 0; d < maxDist; d++ {
		next := make(map[aoc.Pt]bool, len(cur)+4)
		for p := range cur {
			p.ForImmediateNeighbors(func(n aoc.Pt) bool {
				if !prev[n] && !cur[n] && !g.rock(n) {
					next[n] = true
				}
				return true
			})
		}
		counts = append(counts, len(next))
		prev, cur = cur, next
	}
	return counts
}

// reachable returns the number of plots reachable in exactly steps steps
// given the layer counts. A plot is reachable if its distance is at most
// steps and of the same parity, since the walk can step back and forth.
func reachable(layers []int, steps int) int {
	n := 0
	for d := steps % 2; d <= steps; d += 2 {
		n += layers[d]
	}
	return n
}

// Reachable returns the number of plots reachable in exactly steps steps
// by walking out every step.
func (g *Garden) Reachable(steps int) int {
	return reachable(g.layers(steps), steps)
}

// extrapolatable reports whether the map is square with the start at its
// centre and the start's row and column free of rocks. On such maps the
// reachable count grows quadratically with each full map width walked.
func (g *Garden) extrapolatable() bool {
	w := g.size.X
	if g.size.Y != w || w%2 == 0 || g.start != (aoc.Pt{X: w / 2, Y: w / 2}) {
		return false
	}
	for i := 0; i < w; i++ {
		if g.grid[g.start.Y][i] == '#' || g.grid[i][g.start.X] == '#' {
			return false
		}
	}
	return true
}

// Extrapolate returns the number of plots reachable in exactly steps
// steps by fitting a quadratic to the counts after steps%W, steps%W+W and
// steps%W+2W steps, for a map of width W. It fails if the counts for the
// next two widths do not fit the same quadratic.
func (g *Garden) Extrapolate(steps int) (int, error) {
	if !g.extrapolatable() {
		return 0, ErrTooManySteps
	}
	w := g.size.X
	n0 := steps % w
	layers := g.layers(n0 + 4*w)
	f := make([]int, 5)
	for k := range f {
		f[k] = reachable(layers, n0+k*w)
	}
	// Third differences of a quadratic vanish.
	d := slices.Clone(f)
	for round := 0; round < 3; round++ {
		for i := 0; i < len(d)-1; i++ {
			d[i] = d[i+1] - d[i]
		}
		d = d[:len(d)-1]
	}
	if d[0] != 0 || d[1] != 0 {
		return 0, fmt.Errorf("%w: counts per map width are not quadratic", ErrTooManySteps)
	}
	n := steps / w
	return f[0] + n*(f[1]-f[0]) + n*(n-1)/2*(f[2]-2*f[1]+f[0]), nil
}

// CountReachableGardenPlots returns the number of plots reachable from S
// in exactly steps steps. Step counts beyond what can be walked out are
// extrapolated.
func CountReachableGardenPlots(r io.Reader, steps int) (int, error) {
	if steps < 0 {
		return 0, fmt.Errorf("day21: negative step count %d", steps)
	}
	g, err := ParseGarden(r)
	if err != nil {
		return 0, err
	}
	if steps <= maxExactSteps {
		return g.Reachable(steps), nil
	}
	return g.Extrapolate(steps)
}
