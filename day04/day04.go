// Package day04 scores scratchcards.
package day04

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	aoc "github.com/attilahorvath/advent-of-code-2023"
)

var ErrInvalidCard = errors.New("day04: invalid card")

type Card struct {
	Winning []int
	Drawn   []int
}

// Matches returns how many drawn numbers are winning numbers.
func (c Card) Matches() int {
	m := 0
	for _, n := range c.Drawn {
		if slices.Contains(c.Winning, n) {
			m++
		}
	}
	return m
}

func ParseCard(line string) (Card, error) {
	var c Card
	_, nums, ok := strings.Cut(line, ":")
	if !ok {
		return c, fmt.Errorf("%w: %q", ErrInvalidCard, line)
	}
	winning, drawn, ok := strings.Cut(nums, "|")
	if !ok {
		return c, fmt.Errorf("%w: %q", ErrInvalidCard, line)
	}
	var err error
	if c.Winning, err = aoc.Ints(winning); err != nil {
		return c, fmt.Errorf("%w: %v", ErrInvalidCard, err)
	}
	if c.Drawn, err = aoc.Ints(drawn); err != nil {
		return c, fmt.Errorf("%w: %v", ErrInvalidCard, err)
	}
	return c, nil
}

func parse(r io.Reader) ([]Card, error) {
	var cards []Card
	err := aoc.ForLines(r, func(_ int, line string) error {
		c, err := ParseCard(line)
		cards = append(cards, c)
		return err
	})
	return cards, err
}

// SumPoints scores each card 2^(m-1) for m > 0 matches and sums the scores.
func SumPoints(r io.Reader) (int, error) {
	cards, err := parse(r)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, c := range cards {
		if m := c.Matches(); m > 0 {
			sum += 1 << (m - 1)
		}
	}
	return sum, nil
}

// TotalCards counts the cards held once every card with m matches has won
// one copy of each of the next m cards, for every copy held.
func TotalCards(r io.Reader) (int, error) {
	cards, err := parse(r)
	if err != nil {
		return 0, err
	}
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	for i, c := range cards {
		m := c.Matches()
		for j := i + 1; j <= i+m && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}
	return aoc.Sum(copies...), nil
}
