package main

import (
	_ "embed"

	aoc "github.com/attilahorvath/advent-of-code-2023"
	"github.com/attilahorvath/advent-of-code-2023/day04"
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
want=13

Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
*/
func (s solver) D4p1() (any, error) {
	return day04.SumPoints(s.Reader())
}

// want=30
func (s solver) D4p2() (any, error) {
	return day04.TotalCards(s.Reader())
}
