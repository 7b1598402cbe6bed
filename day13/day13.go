// Package day13 finds the lines of reflection in ash and rock patterns.
package day13

import (
	"errors"
	"fmt"
	"io"

	aoc "github.com/attilahorvath/advent-of-code-2023"
)

var ErrNoReflection = errors.New("day13: no line of reflection")

// mirrorColumn returns the number of columns left of the vertical line
// about which the pattern differs in exactly smudges cells, or 0.
func mirrorColumn(g aoc.Grid[byte], smudges int) int {
	size := g.Size()
	for c := 1; c < size.X; c++ {
		diff := 0
		for d := 0; c-1-d >= 0 && c+d < size.X && diff <= smudges; d++ {
			for _, row := range g {
				if row[c-1-d] != row[c+d] {
					diff++
				}
			}
		}
		if diff == smudges {
			return c
		}
	}
	return 0
}

// Summarize returns the pattern's reflection summary: the columns left of
// a vertical mirror, or 100 times the rows above a horizontal one.
func Summarize(g aoc.Grid[byte], smudges int) (int, error) {
	if c := mirrorColumn(g, smudges); c > 0 {
		return c, nil
	}
	if r := mirrorColumn(g.Transpose(), smudges); r > 0 {
		return 100 * r, nil
	}
	return 0, ErrNoReflection
}

// SumPatterns sums the summaries of all patterns. maxDiff is the number
// of smudged cells each reflection must have.
func SumPatterns(r io.Reader, maxDiff int) (int, error) {
	blocks, err := aoc.Blocks(r)
	if err != nil {
		return 0, err
	}
	total := 0
	for i, b := range blocks {
		g, err := aoc.GridFromLines(b)
		if err != nil {
			return 0, fmt.Errorf("pattern %d: %w", i+1, err)
		}
		v, err := Summarize(g, maxDiff)
		if err != nil {
			return 0, fmt.Errorf("pattern %d: %w", i+1, err)
		}
		total += v
	}
	return total, nil
}
