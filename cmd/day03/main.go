package main

import (
	_ "embed"

	aoc "github.com/attilahorvath/advent-of-code-2023"
	"github.com/attilahorvath/advent-of-code-2023/day03"
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
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func (s solver) D3p1() (any, error) {
	return day03.SumPartNumbers(s.Reader())
}

// want=467835
func (s solver) D3p2() (any, error) {
	return day03.SumGearRatios(s.Reader())
}
