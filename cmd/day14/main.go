package main

import (
	_ "embed"

	aoc "github.com/attilahorvath/advent-of-code-2023"
	"github.com/attilahorvath/advent-of-code-2023/day14"
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
want=136

O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....
*/
func (s solver) D14p1() (any, error) {
	p, err := day14.BuildPlatform(s.Reader())
	if err != nil {
		return nil, err
	}
	p.Tilt(aoc.Up)
	return p.Load(aoc.Up), nil
}

// want=64
func (s solver) D14p2() (any, error) {
	p, err := day14.BuildPlatform(s.Reader())
	if err != nil {
		return nil, err
	}
	return p.LoadAfterCycles(aoc.Up, 1000000000), nil
}
