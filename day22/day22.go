// Package day22 settles falling sand bricks and works out which ones hold
// the others up.
package day22

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	aoc "github.com/attilahorvath/advent-of-code-2023"
)

var ErrInvalidBrick = errors.New("day22: invalid brick")

// Brick spans the cubes from A to B inclusive, with A <= B on every axis.
type Brick struct {
	A, B aoc.Pt3Int
}

func parsePt3(s string) (aoc.Pt3Int, error) {
	f := strings.Split(s, ",")
	if len(f) != 3 {
		return aoc.Pt3Int{}, fmt.Errorf("%w: %q", ErrInvalidBrick, s)
	}
	var v [3]int
	for i := range v {
		n, err := strconv.Atoi(f[i])
		if err != nil || n < 0 {
			return aoc.Pt3Int{}, fmt.Errorf("%w: %q", ErrInvalidBrick, s)
		}
		v[i] = n
	}
	return aoc.Pt3Int{X: v[0], Y: v[1], Z: v[2]}, nil
}

// ParseBrick parses "x,y,z~x,y,z".
func ParseBrick(line string) (Brick, error) {
	a, b, ok := strings.Cut(line, "~")
	if !ok {
		return Brick{}, fmt.Errorf("%w: %q", ErrInvalidBrick, line)
	}
	pa, err := parsePt3(a)
	if err != nil {
		return Brick{}, err
	}
	pb, err := parsePt3(b)
	if err != nil {
		return Brick{}, err
	}
	br := Brick{
		A: aoc.Pt3Int{X: min(pa.X, pb.X), Y: min(pa.Y, pb.Y), Z: min(pa.Z, pb.Z)},
		B: aoc.Pt3Int{X: max(pa.X, pb.X), Y: max(pa.Y, pb.Y), Z: max(pa.Z, pb.Z)},
	}
	if br.A.Z < 1 {
		return Brick{}, fmt.Errorf("%w: %q is below the ground", ErrInvalidBrick, line)
	}
	return br, nil
}

// Snapshot holds the bricks after they have settled. Bricks are indexed
// in settling order, lowest first.
type Snapshot struct {
	Bricks []Brick
	// supports[b] lists the bricks b rests on, and supportedBy[b] the
	// bricks resting on b. Both are sorted.
	supports    [][]int
	supportedBy [][]int
}

// top is the highest settled cube in a column, and the brick it
// belongs to.
type top struct {
	z, id int
}

// BuildSnapshot reads the bricks and lets them fall until each rests on
// the ground or on another brick.
func BuildSnapshot(r io.Reader) (*Snapshot, error) {
	var bricks []Brick
	err := aoc.ForLines(r, func(_ int, line string) error {
		if line == "" {
			return nil
		}
		b, err := ParseBrick(line)
		if err != nil {
			return err
		}
		bricks = append(bricks, b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(bricks, func(a, b Brick) int {
		return cmp.Compare(a.A.Z, b.A.Z)
	})

	var size aoc.Pt
	for _, b := range bricks {
		size.X = max(size.X, b.B.X+1)
		size.Y = max(size.Y, b.B.Y+1)
	}
	tops := aoc.MakeGrid[top](size.X, size.Y)
	for y := range tops {
		for x := range tops[y] {
			tops[y][x].id = -1
		}
	}

	s := &Snapshot{
		Bricks:      bricks,
		supports:    make([][]int, len(bricks)),
		supportedBy: make([][]int, len(bricks)),
	}
	for i := range bricks {
		b := &bricks[i]
		floor := 0
		for y := b.A.Y; y <= b.B.Y; y++ {
			for x := b.A.X; x <= b.B.X; x++ {
				floor = max(floor, tops[y][x].z)
			}
		}
		var below []int
		for y := b.A.Y; y <= b.B.Y; y++ {
			for x := b.A.X; x <= b.B.X; x++ {
				t := tops[y][x]
				if t.id >= 0 && t.z == floor {
					below = append(below, t.id)
				}
				tops[y][x] = top{z: floor + 1 + b.B.Z - b.A.Z, id: i}
			}
		}
		slices.Sort(below)
		below = slices.Compact(below)
		s.supports[i] = below
		for _, j := range below {
			s.supportedBy[j] = append(s.supportedBy[j], i)
		}
		b.B.Z = floor + 1 + b.B.Z - b.A.Z
		b.A.Z = floor + 1
	}
	return s, nil
}

// SafeToDisintegrate counts the bricks whose removal would not make any
// other brick fall.
func (s *Snapshot) SafeToDisintegrate() int {
	n := 0
	for b := range s.Bricks {
		safe := true
		for _, above := range s.supportedBy[b] {
			if len(s.supports[above]) < 2 {
				safe = false
				break
			}
		}
		if safe {
			n++
		}
	}
	return n
}

// Falling returns the number of other bricks that would fall if brick b
// were removed.
func (s *Snapshot) Falling(b int) int {
	fallen := make([]bool, len(s.Bricks))
	fallen[b] = true
	n := 0
	q := aoc.NewQueue(b)
	q.While(func(cur int) bool {
		for _, above := range s.supportedBy[cur] {
			if fallen[above] {
				continue
			}
			all := true
			for _, below := range s.supports[above] {
				if !fallen[below] {
					all = false
					break
				}
			}
			if all {
				fallen[above] = true
				n++
				q.Push(above)
			}
		}
		return true
	})
	return n
}

// WouldFall sums, over every brick, the number of other bricks that
// would fall if it were removed.
func (s *Snapshot) WouldFall() int {
	total := 0
	for b := range s.Bricks {
		total += s.Falling(b)
	}
	return total
}

// Supports returns the bricks b rests on.
func (s *Snapshot) Supports(b int) []int {
	return s.supports[b]
}
