// Package day10 traces the pipe loop through S.
package day10

import (
	"errors"
	"io"

	aoc "github.com/attilahorvath/advent-of-code-2023"
)

var (
	ErrNoStart = errors.New("day10: no start tile")
	ErrNoLoop  = errors.New("day10: start is not on a loop")
)

// pipes maps each pipe tile to the two directions it connects.
var pipes = map[byte][2]aoc.Direction{
	'|': {aoc.Up, aoc.Down},
	'-': {aoc.Right, aoc.Left},
	'L': {aoc.Up, aoc.Right},
	'J': {aoc.Up, aoc.Left},
	'7': {aoc.Down, aoc.Left},
	'F': {aoc.Right, aoc.Down},
}

func connects(tile byte, d aoc.Direction) bool {
	c, ok := pipes[tile]
	return ok && (c[0] == d || c[1] == d)
}

// Map is a pipe grid with the start tile replaced by the pipe that closes
// its loop.
type Map struct {
	grid   aoc.Grid[byte]
	start  aoc.Pt
	loop   []aoc.Pt
	onLoop []bool
}

// BuildMap reads the grid and resolves the loop through S.
func BuildMap(r io.Reader) (*Map, error) {
	g, err := aoc.ReadGrid(r)
	if err != nil {
		return nil, err
	}
	start, ok := aoc.Find(g, 'S')
	if !ok {
		return nil, ErrNoStart
	}
	m := &Map{grid: g, start: start}

	// The start tile connects to the neighbours that connect back to it.
	var open []aoc.Direction
	for _, d := range aoc.Directions {
		if v, ok := g.AtOk(start.Add(d.Delta())); ok && connects(v, d.Reverse()) {
			open = append(open, d)
		}
	}
	for i := 0; i < len(open); i++ {
		for j := i + 1; j < len(open); j++ {
			for tile, c := range pipes {
				if !(c[0] == open[i] && c[1] == open[j]) && !(c[0] == open[j] && c[1] == open[i]) {
					continue
				}
				g.Set(start, tile)
				if m.trace() {
					return m, nil
				}
			}
		}
	}
	return nil, ErrNoLoop
}

// trace walks the loop from the start tile and reports whether it closes.
func (m *Map) trace() bool {
	size := m.grid.Size()
	m.loop = m.loop[:0]
	m.onLoop = make([]bool, size.X*size.Y)

	p := m.start
	d := pipes[m.grid.At(p)][0]
	for {
		m.loop = append(m.loop, p)
		m.onLoop[m.grid.Index(p)] = true
		next := p.Add(d.Delta())
		v, ok := m.grid.AtOk(next)
		if !ok || !connects(v, d.Reverse()) {
			return false
		}
		if next == m.start {
			return true
		}
		if m.onLoop[m.grid.Index(next)] {
			return false
		}
		c := pipes[v]
		if c[0] == d.Reverse() {
			d = c[1]
		} else {
			d = c[0]
		}
		p = next
	}
}

// Loop returns the loop tiles in walking order, starting at S.
func (m *Map) Loop() []aoc.Pt {
	return append([]aoc.Pt(nil), m.loop...)
}

// StepsToFurthest returns the number of steps along the loop to the tile
// farthest from the start.
func (m *Map) StepsToFurthest() int {
	return len(m.loop) / 2
}

// EnclosedTiles counts the tiles inside the loop.
//
// Each row is scanned left to right, and the inside flag flips on every
// loop tile with a connection upwards. That makes F-J and L-7 runs count
// as one crossing, and F-7 and L-J runs as none.
func (m *Map) EnclosedTiles() int {
	size := m.grid.Size()
	n := 0
	for y := 0; y < size.Y; y++ {
		inside := false
		for x := 0; x < size.X; x++ {
			p := aoc.Pt{X: x, Y: y}
			if m.onLoop[m.grid.Index(p)] {
				if connects(m.grid.At(p), aoc.Up) {
					inside = !inside
				}
				continue
			}
			if inside {
				n++
			}
		}
	}
	return n
}

// String returns the grid with the start tile resolved.
func (m *Map) String() string {
	return m.grid.String()
}
