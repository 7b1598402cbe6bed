// Package day06 counts the ways to win boat races.
package day06

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	aoc "github.com/attilahorvath/advent-of-code-2023"
)

var ErrInvalidRaces = errors.New("day06: invalid race sheet")

type Race struct {
	Time, Distance int
}

// Ways counts the hold times h in [0, Time] with h*(Time-h) > Distance.
//
// The winning holds lie strictly between the roots of
// h^2 - Time*h + Distance = 0. Raising the distance by one half keeps
// integer roots out of the range.
func (r Race) Ways() int {
	hi, lo, ok := aoc.SolveQuad(1, -float64(r.Time), float64(r.Distance)+0.5)
	if !ok {
		return 0
	}
	first := max(0, int(math.Ceil(lo)))
	last := min(r.Time, int(math.Floor(hi)))
	if last < first {
		return 0
	}
	return last - first + 1
}

// ParseRaces reads the "Time:" and "Distance:" lines. With join, the
// numbers on each line are read as a single number, ignoring spaces.
func ParseRaces(r io.Reader, join bool) ([]Race, error) {
	lines, err := aoc.Lines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: want Time and Distance lines", ErrInvalidRaces)
	}
	values := func(line, prefix string) ([]int, error) {
		s, ok := strings.CutPrefix(line, prefix)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRaces, line)
		}
		if join {
			s = strings.ReplaceAll(s, " ", "")
		}
		v, err := aoc.Ints(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRaces, err)
		}
		return v, nil
	}
	times, err := values(lines[0], "Time:")
	if err != nil {
		return nil, err
	}
	dists, err := values(lines[1], "Distance:")
	if err != nil {
		return nil, err
	}
	if len(times) != len(dists) {
		return nil, fmt.Errorf("%w: %d times, %d distances", ErrInvalidRaces, len(times), len(dists))
	}
	races := make([]Race, len(times))
	for i := range races {
		races[i] = Race{times[i], dists[i]}
	}
	return races, nil
}

// TotalWays multiplies the number of ways to win each race.
func TotalWays(r io.Reader, join bool) (int, error) {
	races, err := ParseRaces(r, join)
	if err != nil {
		return 0, err
	}
	total := 1
	for _, race := range races {
		total *= race.Ways()
	}
	return total, nil
}
