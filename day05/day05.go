// Package day05 maps seeds to locations through the layers of an almanac.
package day05

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	aoc "github.com/attilahorvath/advent-of-code-2023"
)

var ErrInvalidAlmanac = errors.New("day05: invalid almanac")

// Interval is the half-open range [Start, Start+Len).
type Interval struct {
	Start, Len int
}

func (iv Interval) End() int {
	return iv.Start + iv.Len
}

// Shift maps [Src, Src+Len) onto [Dst, Dst+Len).
type Shift struct {
	Src, Dst, Len int
}

func (s Shift) srcEnd() int {
	return s.Src + s.Len
}

// Layer is a piecewise mapping. Shifts are sorted by Src and do not
// overlap; values outside every shift map to themselves.
type Layer struct {
	Name   string
	Shifts []Shift
}

// Map sends iv through the layer. The returned intervals have the same
// total length as iv.
func (l Layer) Map(iv Interval) []Interval {
	var out []Interval
	emit := func(start, end int) {
		if end > start {
			out = append(out, Interval{start, end - start})
		}
	}
	cur, end := iv.Start, iv.End()
	i := sort.Search(len(l.Shifts), func(i int) bool {
		return l.Shifts[i].srcEnd() > cur
	})
	for ; i < len(l.Shifts) && cur < end; i++ {
		s := l.Shifts[i]
		if cur < s.Src {
			gap := min(end, s.Src)
			emit(cur, gap)
			cur = gap
			if cur >= end {
				break
			}
		}
		stop := min(end, s.srcEnd())
		emit(cur-s.Src+s.Dst, stop-s.Src+s.Dst)
		cur = stop
	}
	emit(cur, end)
	return out
}

type Almanac struct {
	Seeds  []int
	Layers []Layer
}

func Parse(r io.Reader) (*Almanac, error) {
	blocks, err := aoc.Blocks(r)
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 || len(blocks[0]) != 1 {
		return nil, fmt.Errorf("%w: missing seeds", ErrInvalidAlmanac)
	}
	seeds, ok := strings.CutPrefix(blocks[0][0], "seeds:")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAlmanac, blocks[0][0])
	}
	a := &Almanac{}
	if a.Seeds, err = aoc.Ints(seeds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAlmanac, err)
	}
	for _, b := range blocks[1:] {
		name, ok := strings.CutSuffix(b[0], " map:")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAlmanac, b[0])
		}
		l := Layer{Name: name}
		for _, line := range b[1:] {
			v, err := aoc.Ints(line)
			if err != nil || len(v) != 3 || v[2] < 0 {
				return nil, fmt.Errorf("%w: %q", ErrInvalidAlmanac, line)
			}
			l.Shifts = append(l.Shifts, Shift{Dst: v[0], Src: v[1], Len: v[2]})
		}
		slices.SortFunc(l.Shifts, func(a, b Shift) int {
			return a.Src - b.Src
		})
		for i := 1; i < len(l.Shifts); i++ {
			if l.Shifts[i].Src < l.Shifts[i-1].srcEnd() {
				return nil, fmt.Errorf("%w: overlapping shifts in %s", ErrInvalidAlmanac, name)
			}
		}
		a.Layers = append(a.Layers, l)
	}
	return a, nil
}

// SeedIntervals returns the seeds as intervals: one unit interval per
// seed, or with ranges, one interval per (start, length) pair.
func (a *Almanac) SeedIntervals(ranges bool) ([]Interval, error) {
	var ivs []Interval
	if !ranges {
		for _, s := range a.Seeds {
			ivs = append(ivs, Interval{s, 1})
		}
		return ivs, nil
	}
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of seed range values", ErrInvalidAlmanac)
	}
	for i := 0; i < len(a.Seeds); i += 2 {
		ivs = append(ivs, Interval{a.Seeds[i], a.Seeds[i+1]})
	}
	return ivs, nil
}

// Locations maps ivs through every layer in order.
func (a *Almanac) Locations(ivs []Interval) []Interval {
	for _, l := range a.Layers {
		var next []Interval
		for _, iv := range ivs {
			next = append(next, l.Map(iv)...)
		}
		ivs = next
	}
	return ivs
}

// MinLocation returns the lowest location any seed maps to.
func MinLocation(r io.Reader, seedRanges bool) (int, error) {
	a, err := Parse(r)
	if err != nil {
		return 0, err
	}
	seeds, err := a.SeedIntervals(seedRanges)
	if err != nil {
		return 0, err
	}
	locs := a.Locations(seeds)
	if len(locs) == 0 {
		return 0, fmt.Errorf("%w: no seeds", ErrInvalidAlmanac)
	}
	return slices.MinFunc(locs, func(a, b Interval) int {
		return a.Start - b.Start
	}).Start, nil
}
