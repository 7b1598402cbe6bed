package main

import (
	_ "embed"

	aoc "github.com/attilahorvath/advent-of-code-2023"
	"github.com/attilahorvath/advent-of-code-2023/day21"
)

func main() {
	aoc.Run(source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=16

...........
.....###.#.
.###.##..#.
..#.#...#..
....#.#....
.##..S####.
.##..#...#.
.......##..
.##.#.####.
.##..##.##.
...........
*/
func (s solver) D21p1() (any, error) {
	steps := 64
	if s.SampleMode {
		steps = 6
	}
	if err := s.Param("steps", &steps); err != nil {
		return nil, err
	}
	return day21.CountReachableGardenPlots(s.Reader(), steps)
}

func (s solver) D21p2() (any, error) {
	steps := 26501365
	if err := s.Param("far_steps", &steps); err != nil {
		return nil, err
	}
	return day21.CountReachableGardenPlots(s.Reader(), steps)
}
