// Package day17 finds the crucible route with the least heat loss.
package day17

import (
	"cmp"
	"errors"
	"fmt"
	"io"

	aoc "github.com/attilahorvath/advent-of-code-2023"
)

var (
	ErrInvalidRun = errors.New("day17: invalid run limits")
	ErrNoPath     = errors.New("day17: factory unreachable")
)

// state is a block together with the axis of the move that reached it.
type state struct {
	P          aoc.Pt
	Horizontal bool
}

func compareStates(a, b state) int {
	if c := cmp.Compare(a.P.Y, b.P.Y); c != 0 {
		return c
	}
	if c := cmp.Compare(a.P.X, b.P.X); c != 0 {
		return c
	}
	switch {
	case a.Horizontal == b.Horizontal:
		return 0
	case a.Horizontal:
		return 1
	}
	return -1
}

// ParseCity reads the grid of per-block heat loss digits.
func ParseCity(r io.Reader) (aoc.Grid[int], error) {
	var g aoc.Grid[int]
	err := aoc.ForLines(r, func(y int, line string) error {
		row, err := aoc.Digits(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", y+1, err)
		}
		if len(g) > 0 && len(row) != len(g[0]) {
			return aoc.ErrRaggedGrid
		}
		g = append(g, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(g) == 0 || len(g[0]) == 0 {
		return nil, aoc.ErrEmptyGrid
	}
	return g, nil
}

// LeastHeatLoss returns the least heat loss from the top left block to the
// bottom right one, when the crucible must move between minRun and maxRun
// blocks in a straight line before turning, and may not reverse.
func LeastHeatLoss(g aoc.Grid[int], minRun, maxRun int) (int, error) {
	if minRun < 1 || maxRun < minRun {
		return 0, fmt.Errorf("%w: %d..%d", ErrInvalidRun, minRun, maxRun)
	}
	size := g.Size()
	end := aoc.Pt{X: size.X - 1, Y: size.Y - 1}
	best := make(map[state]int)
	pq := aoc.MinQueueFunc(compareStates)
	for _, h := range []bool{false, true} {
		s := state{Horizontal: h}
		best[s] = 0
		pq.PushValue(s, 0)
	}
	for pq.Len() > 0 {
		it := pq.Pop()
		cur, loss := it.V, it.P
		if loss > best[cur] {
			continue
		}
		if cur.P == end {
			return loss, nil
		}
		dirs := [2]aoc.Direction{aoc.Left, aoc.Right}
		if cur.Horizontal {
			dirs = [2]aoc.Direction{aoc.Up, aoc.Down}
		}
		for _, d := range dirs {
			p, total := cur.P, loss
			for k := 1; k <= maxRun; k++ {
				p = p.Add(d.Delta())
				v, ok := g.AtOk(p)
				if !ok {
					break
				}
				total += v
				if k < minRun {
					continue
				}
				next := state{P: p, Horizontal: d.Horizontal()}
				if old, ok := best[next]; ok && old <= total {
					continue
				}
				best[next] = total
				pq.PushValue(next, total)
			}
		}
	}
	return 0, ErrNoPath
}

// MinHeatLoss parses the city map and returns its least heat loss.
func MinHeatLoss(r io.Reader, minRun, maxRun int) (int, error) {
	g, err := ParseCity(r)
	if err != nil {
		return 0, err
	}
	return LeastHeatLoss(g, minRun, maxRun)
}
