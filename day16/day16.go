// Package day16 traces light beams through a contraption of mirrors and
// splitters.
package day16

import (
	"io"

	aoc "github.com/attilahorvath/advent-of-code-2023"
)

// next returns the directions a beam heading d leaves a tile in.
func next(tile byte, d aoc.Direction) []aoc.Direction {
	switch tile {
	case '/':
		return []aoc.Direction{d.Turn(!d.Horizontal())}
	case '\\':
		return []aoc.Direction{d.Turn(d.Horizontal())}
	case '|':
		if d.Horizontal() {
			return []aoc.Direction{aoc.Up, aoc.Down}
		}
	case '-':
		if !d.Horizontal() {
			return []aoc.Direction{aoc.Left, aoc.Right}
		}
	}
	return []aoc.Direction{d}
}

// Energize returns the number of tiles a beam entering at start visits.
func Energize(g aoc.Grid[byte], start aoc.Path) int {
	size := g.Size()
	// One bit per direction a beam already passed through each tile in.
	seen := make([]uint8, size.X*size.Y)
	n := 0
	q := aoc.NewQueue(start)
	q.While(func(p aoc.Path) bool {
		if !g.In(p.Pt) {
			return true
		}
		i := g.Index(p.Pt)
		bit := uint8(1) << p.Dir
		if seen[i]&bit != 0 {
			return true
		}
		if seen[i] == 0 {
			n++
		}
		seen[i] |= bit
		for _, d := range next(g.At(p.Pt), p.Dir) {
			if np, ok := g.Move(aoc.Path{Pt: p.Pt, Dir: d}); ok {
				q.Push(np)
			}
		}
		return true
	})
	return n
}

// EnergizedTiles counts the energized tiles for a beam entering the top
// left tile heading right. With findMax, it returns the highest count over
// every beam entering from an edge instead.
func EnergizedTiles(r io.Reader, findMax bool) (int, error) {
	g, err := aoc.ReadGrid(r)
	if err != nil {
		return 0, err
	}
	if !findMax {
		return Energize(g, aoc.Path{Pt: aoc.Pt{}, Dir: aoc.Right}), nil
	}
	best := 0
	for _, p := range g.EdgePaths() {
		best = max(best, Energize(g, p))
	}
	return best, nil
}
