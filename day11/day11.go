// Package day11 measures distances between galaxies in an expanding
// universe.
package day11

import (
	"errors"
	"io"

	aoc "github.com/attilahorvath/advent-of-code-2023"
)

var ErrInvalidRate = errors.New("day11: expansion rate must be at least 1")

// expand returns, for each index, its coordinate once every empty line
// before it counts rate times.
func expand(occupied []bool, rate int) []int {
	out := make([]int, len(occupied))
	pos := 0
	for i, ok := range occupied {
		out[i] = pos
		if ok {
			pos++
		} else {
			pos += rate
		}
	}
	return out
}

// SumLengths sums the manhattan distances between all pairs of galaxies,
// where each empty row and column is rate times as wide.
func SumLengths(r io.Reader, rate int) (int, error) {
	if rate < 1 {
		return 0, ErrInvalidRate
	}
	g, err := aoc.ReadGrid(r)
	if err != nil {
		return 0, err
	}
	size := g.Size()
	rows := make([]bool, size.Y)
	cols := make([]bool, size.X)
	var galaxies []aoc.Pt
	for y, row := range g {
		for x, c := range row {
			if c == '#' {
				rows[y] = true
				cols[x] = true
				galaxies = append(galaxies, aoc.Pt{X: x, Y: y})
			}
		}
	}
	ys, xs := expand(rows, rate), expand(cols, rate)
	for i, p := range galaxies {
		galaxies[i] = aoc.Pt{X: xs[p.X], Y: ys[p.Y]}
	}
	total := 0
	for i, a := range galaxies {
		for _, b := range galaxies[i+1:] {
			total += a.MDist(b)
		}
	}
	return total, nil
}
