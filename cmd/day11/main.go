package main

import (
	_ "embed"

	aoc "github.com/attilahorvath/advent-of-code-2023"
	"github.com/attilahorvath/advent-of-code-2023/day11"
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
want=374

...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....
*/
func (s solver) D11p1() (any, error) {
	return day11.SumLengths(s.Reader(), 2)
}

// want=82000210
func (s solver) D11p2() (any, error) {
	rate := 1000000
	if err := s.Param("rate", &rate); err != nil {
		return nil, err
	}
	return day11.SumLengths(s.Reader(), rate)
}
