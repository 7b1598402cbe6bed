package main

import (
	_ "embed"

	aoc "github.com/attilahorvath/advent-of-code-2023"
	"github.com/attilahorvath/advent-of-code-2023/day02"
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
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() (any, error) {
	return day02.PossibleGames(s.Reader())
}

// want=2286
func (s solver) D2p2() (any, error) {
	return day02.PowerSets(s.Reader())
}
