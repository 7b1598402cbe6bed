package main

import (
	_ "embed"

	aoc "github.com/attilahorvath/advent-of-code-2023"
	"github.com/attilahorvath/advent-of-code-2023/day01"
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
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() (any, error) {
	return day01.Calibrate(s.Reader(), false)
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() (any, error) {
	return day01.Calibrate(s.Reader(), true)
}
