package aoc

import (
	"bufio"
	"io"
)

// maxLine bounds the length of a single input line. Some puzzles put the
// whole input on one line.
const maxLine = 1 << 20

func newScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64<<10), maxLine)
	return s
}

// ForLines calls onLine for each line of input, stopping at the first
// error. The y value is the row number, starting with 0.
func ForLines(r io.Reader, onLine func(y int, line string) error) error {
	s := newScanner(r)
	y := -1
	for s.Scan() {
		y++
		if err := onLine(y, s.Text()); err != nil {
			return err
		}
	}
	return s.Err()
}

// Lines returns all lines of input, without their terminators.
func Lines(r io.Reader) ([]string, error) {
	var lines []string
	err := ForLines(r, func(_ int, line string) error {
		lines = append(lines, line)
		return nil
	})
	return lines, err
}

// Blocks returns the groups of consecutive non-blank lines of input.
// Runs of blank lines separate groups.
func Blocks(r io.Reader) ([][]string, error) {
	var (
		blocks [][]string
		cur    []string
	)
	err := ForLines(r, func(_ int, line string) error {
		if line == "" {
			if cur != nil {
				blocks = append(blocks, cur)
				cur = nil
			}
			return nil
		}
		cur = append(cur, line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if cur != nil {
		blocks = append(blocks, cur)
	}
	return blocks, nil
}
