// Package day14 tilts the parabolic reflector dish.
package day14

import (
	"io"

	aoc "github.com/attilahorvath/advent-of-code-2023"
	"tailscale.com/util/deephash"
)

// cycleOrder is the order of the tilts in one spin cycle.
var cycleOrder = [...]aoc.Direction{aoc.Up, aoc.Left, aoc.Down, aoc.Right}

// Platform is a grid of round rocks 'O', cube rocks '#' and empty space.
type Platform struct {
	grid aoc.Grid[byte]
}

func BuildPlatform(r io.Reader) (*Platform, error) {
	g, err := aoc.ReadGrid(r)
	if err != nil {
		return nil, err
	}
	return &Platform{grid: g}, nil
}

// lanes returns the first cell of every lane rocks roll along when
// tilting towards d, which is the cell on the edge d points at.
func (p *Platform) lanes(d aoc.Direction) []aoc.Pt {
	size := p.grid.Size()
	var starts []aoc.Pt
	switch d {
	case aoc.Up, aoc.Down:
		y := 0
		if d == aoc.Down {
			y = size.Y - 1
		}
		for x := 0; x < size.X; x++ {
			starts = append(starts, aoc.Pt{X: x, Y: y})
		}
	case aoc.Left, aoc.Right:
		x := 0
		if d == aoc.Right {
			x = size.X - 1
		}
		for y := 0; y < size.Y; y++ {
			starts = append(starts, aoc.Pt{X: x, Y: y})
		}
	}
	return starts
}

// Tilt rolls every round rock towards d until it hits a cube rock, another
// round rock or the edge.
func (p *Platform) Tilt(d aoc.Direction) {
	step := d.Reverse().Delta()
	for _, start := range p.lanes(d) {
		free := start
		for c := start; p.grid.In(c); c = c.Add(step) {
			switch p.grid.At(c) {
			case '#':
				free = c.Add(step)
			case 'O':
				p.grid.Set(c, '.')
				p.grid.Set(free, 'O')
				free = free.Add(step)
			}
		}
	}
}

// Cycle tilts the platform north, west, south, then east.
func (p *Platform) Cycle() {
	for _, d := range cycleOrder {
		p.Tilt(d)
	}
}

// Load returns the total load on the edge d points at. Each round rock
// weighs its distance in rows (or columns) from the opposite edge.
func (p *Platform) Load(d aoc.Direction) int {
	size := p.grid.Size()
	load := 0
	for y, row := range p.grid {
		for x, c := range row {
			if c != 'O' {
				continue
			}
			switch d {
			case aoc.Up:
				load += size.Y - y
			case aoc.Down:
				load += y + 1
			case aoc.Left:
				load += size.X - x
			case aoc.Right:
				load += x + 1
			}
		}
	}
	return load
}

// LoadAfterCycles runs n spin cycles and returns the load on the edge d
// points at. Once the platform repeats an earlier state the remaining
// cycles are skipped.
func (p *Platform) LoadAfterCycles(d aoc.Direction, n int) int {
	seen := map[deephash.Sum][]int{}
	var history []aoc.Grid[byte]
	for i := 0; i < n; i++ {
		h := p.grid.Hash()
		for _, j := range seen[h] {
			if !aoc.GridEqual(history[j], p.grid) {
				continue
			}
			period := i - j
			p.grid = history[j+(n-j)%period].Clone()
			return p.Load(d)
		}
		seen[h] = append(seen[h], i)
		history = append(history, p.grid.Clone())
		p.Cycle()
	}
	return p.Load(d)
}

func (p *Platform) String() string {
	return p.grid.String()
}
