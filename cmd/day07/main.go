package main

import (
	_ "embed"

	aoc "github.com/attilahorvath/advent-of-code-2023"
	"github.com/attilahorvath/advent-of-code-2023/day07"
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
want=6440

32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
*/
func (s solver) D7p1() (any, error) {
	return day07.TotalWinnings(s.Reader(), false)
}

// want=5905
func (s solver) D7p2() (any, error) {
	return day07.TotalWinnings(s.Reader(), true)
}
