// Package day03 finds the part numbers and gear ratios of an engine
// schematic.
package day03

import (
	"io"

	aoc "github.com/attilahorvath/advent-of-code-2023"
)

// number is a maximal horizontal run of digits.
type number struct {
	value  int
	y      int
	x0, x1 int // inclusive
}

func (n number) forCells(f func(aoc.Pt)) {
	for x := n.x0; x <= n.x1; x++ {
		f(aoc.Pt{X: x, Y: n.y})
	}
}

type schematic struct {
	grid    aoc.Grid[byte]
	numbers []number
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSymbol(c byte) bool {
	return c != '.' && !isDigit(c)
}

func parse(r io.Reader) (*schematic, error) {
	g, err := aoc.ReadGrid(r)
	if err != nil {
		return nil, err
	}
	s := &schematic{grid: g}
	for y, row := range g {
		for x := 0; x < len(row); x++ {
			if !isDigit(row[x]) {
				continue
			}
			n := number{y: y, x0: x}
			for ; x < len(row) && isDigit(row[x]); x++ {
				n.value = n.value*10 + int(row[x]-'0')
			}
			n.x1 = x - 1
			s.numbers = append(s.numbers, n)
		}
	}
	return s, nil
}

// forAdjacent calls f for each cell touching n, diagonals included.
// A cell may be reported more than once.
func (s *schematic) forAdjacent(n number, f func(aoc.Pt, byte)) {
	n.forCells(func(p aoc.Pt) {
		p.ForNeighbors(func(q aoc.Pt) bool {
			if c, ok := s.grid.AtOk(q); ok {
				f(q, c)
			}
			return true
		})
	})
}

// SumPartNumbers sums the numbers adjacent to at least one symbol.
func SumPartNumbers(r io.Reader) (int, error) {
	s, err := parse(r)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, n := range s.numbers {
		part := false
		s.forAdjacent(n, func(_ aoc.Pt, c byte) {
			part = part || isSymbol(c)
		})
		if part {
			sum += n.value
		}
	}
	return sum, nil
}

// SumGearRatios sums, over every '*' adjacent to exactly two numbers, the
// product of those numbers.
func SumGearRatios(r io.Reader) (int, error) {
	s, err := parse(r)
	if err != nil {
		return 0, err
	}
	gears := map[aoc.Pt][]int{} // gear -> indexes into s.numbers
	for i, n := range s.numbers {
		seen := map[aoc.Pt]bool{}
		s.forAdjacent(n, func(p aoc.Pt, c byte) {
			if c == '*' && !seen[p] {
				seen[p] = true
				gears[p] = append(gears[p], i)
			}
		})
	}
	sum := 0
	for _, ns := range gears {
		if len(ns) == 2 {
			sum += s.numbers[ns[0]].value * s.numbers[ns[1]].value
		}
	}
	return sum, nil
}
