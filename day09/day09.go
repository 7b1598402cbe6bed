// Package day09 extrapolates OASIS sensor histories.
package day09

import (
	"errors"
	"fmt"
	"io"

	aoc "github.com/attilahorvath/advent-of-code-2023"
)

var ErrInvalidHistory = errors.New("day09: invalid history")

// SumValues extrapolates each history one step and sums the results. With
// backwards, the value before the first reading is extrapolated instead.
func SumValues(r io.Reader, backwards bool) (int, error) {
	total := 0
	err := aoc.ForLines(r, func(y int, line string) error {
		nums, err := aoc.Ints(line)
		if err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrInvalidHistory, y+1, err)
		}
		if len(nums) == 0 {
			return nil
		}
		total += aoc.Extrapolate(nums, !backwards)
		return nil
	})
	return total, err
}
