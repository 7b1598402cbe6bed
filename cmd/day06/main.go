package main

import (
	_ "embed"

	aoc "github.com/attilahorvath/advent-of-code-2023"
	"github.com/attilahorvath/advent-of-code-2023/day06"
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
want=288

Time:      7  15   30
Distance:  9  40  200
*/
func (s solver) D6p1() (any, error) {
	return day06.TotalWays(s.Reader(), false)
}

// want=71503
func (s solver) D6p2() (any, error) {
	return day06.TotalWays(s.Reader(), true)
}
