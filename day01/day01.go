// Package day01 recovers calibration values from lines of text.
package day01

import (
	"io"
	"strings"

	aoc "github.com/attilahorvath/advent-of-code-2023"
)

var words = [...]string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// Calibrate sums, over all lines, the two-digit number formed by the
// first and last digit of the line. With includeWords, spelled out digits
// count too; they may overlap ("oneight" holds 1 and 8). A line without
// digits contributes 0.
func Calibrate(r io.Reader, includeWords bool) (int, error) {
	sum := 0
	err := aoc.ForLines(r, func(_ int, line string) error {
		first, last := -1, 0
		for i := range line {
			d, ok := digitAt(line, i, includeWords)
			if !ok {
				continue
			}
			if first < 0 {
				first = d
			}
			last = d
		}
		if first >= 0 {
			sum += first*10 + last
		}
		return nil
	})
	return sum, err
}

func digitAt(line string, i int, includeWords bool) (int, bool) {
	if d, ok := aoc.Digit(rune(line[i])); ok {
		return d, true
	}
	if !includeWords {
		return 0, false
	}
	for d, w := range words {
		if strings.HasPrefix(line[i:], w) {
			return d, true
		}
	}
	return 0, false
}
