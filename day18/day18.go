// Package day18 measures the lagoon dug from a dig plan.
package day18

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	aoc "github.com/attilahorvath/advent-of-code-2023"
)

var ErrInvalidPlan = errors.New("day18: invalid dig plan")

var dirs = map[byte]aoc.Direction{
	'U': aoc.Up,
	'R': aoc.Right,
	'D': aoc.Down,
	'L': aoc.Left,
}

// hexDirs maps the last digit of a color to its direction.
var hexDirs = [...]aoc.Direction{aoc.Right, aoc.Down, aoc.Left, aoc.Up}

// Step is one line of the dig plan.
type Step struct {
	Dir aoc.Direction
	Len int
}

// ParseStep parses "D N (#rrggbb)". With swapped, the step is read from
// the color instead: five hex digits of length, then one digit naming
// the direction, 0 to 3 for R, D, L, U.
func ParseStep(line string, swapped bool) (Step, error) {
	f := strings.Fields(line)
	if len(f) != 3 {
		return Step{}, fmt.Errorf("%w: %q", ErrInvalidPlan, line)
	}
	if !swapped {
		d, ok := dirs[f[0][0]]
		if !ok || len(f[0]) != 1 {
			return Step{}, fmt.Errorf("%w: direction %q", ErrInvalidPlan, f[0])
		}
		n, err := strconv.Atoi(f[1])
		if err != nil {
			return Step{}, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
		}
		return Step{d, n}, nil
	}
	color := strings.TrimSuffix(strings.TrimPrefix(f[2], "("), ")")
	if len(color) != 7 || color[0] != '#' {
		return Step{}, fmt.Errorf("%w: color %q", ErrInvalidPlan, f[2])
	}
	n, err := aoc.ParseHex(color[1:6])
	if err != nil {
		return Step{}, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	d := color[6] - '0'
	if int(d) >= len(hexDirs) {
		return Step{}, fmt.Errorf("%w: color %q", ErrInvalidPlan, f[2])
	}
	return Step{hexDirs[d], int(n)}, nil
}

// TotalLavaHeld returns the number of cubic meters the lagoon holds, its
// trench included.
func TotalLavaHeld(r io.Reader, swapped bool) (int, error) {
	p := aoc.Pt{}
	pts := []aoc.Pt{p}
	err := aoc.ForLines(r, func(_ int, line string) error {
		if line == "" {
			return nil
		}
		s, err := ParseStep(line, swapped)
		if err != nil {
			return err
		}
		p = p.Add(s.Dir.Delta().Scale(s.Len))
		pts = append(pts, p)
		return nil
	})
	if err != nil {
		return 0, err
	}
	if p != (aoc.Pt{}) {
		return 0, fmt.Errorf("%w: trench does not return to the start", ErrInvalidPlan)
	}
	return aoc.PolygonBoundedPoints(pts), nil
}
