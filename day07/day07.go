// Package day07 ranks Camel Cards hands.
package day07

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	aoc "github.com/attilahorvath/advent-of-code-2023"
)

var ErrInvalidHand = errors.New("day07: invalid hand")

const (
	cardOrder      = "23456789TJQKA"
	jokerCardOrder = "J23456789TQKA"
)

// Category is the type of a hand. Stronger categories compare greater.
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

type Hand struct {
	Cards [5]byte
	Bid   int
	// values holds the strength of each card, and cat the hand category,
	// both under the rules the hand was parsed with.
	values [5]int
	cat    Category
}

func (h Hand) Category() Category { return h.cat }

// ParseHand parses "CARDS BID". With jokers, J is the weakest card and
// acts as a wildcard for the category.
func ParseHand(line string, jokers bool) (Hand, error) {
	cards, bid, ok := strings.Cut(line, " ")
	if !ok || len(cards) != 5 {
		return Hand{}, fmt.Errorf("%w: %q", ErrInvalidHand, line)
	}
	var h Hand
	var err error
	h.Bid, err = strconv.Atoi(strings.TrimSpace(bid))
	if err != nil {
		return Hand{}, fmt.Errorf("%w: %q: %v", ErrInvalidHand, line, err)
	}
	order := cardOrder
	if jokers {
		order = jokerCardOrder
	}
	var counts [13]int
	for i := 0; i < 5; i++ {
		v := strings.IndexByte(order, cards[i])
		if v < 0 {
			return Hand{}, fmt.Errorf("%w: unknown card %q", ErrInvalidHand, cards[i])
		}
		h.Cards[i] = cards[i]
		h.values[i] = v
		counts[v]++
	}
	wild := 0
	if jokers {
		// The joker is the weakest card, at index 0.
		wild = counts[0]
		counts[0] = 0
	}
	h.cat = category(counts[:], wild)
	return h, nil
}

// category returns the category for the card counts, with wild cards
// joining the largest group.
func category(counts []int, wild int) Category {
	first, second := 0, 0
	for _, c := range counts {
		if c > first {
			first, second = c, first
		} else if c > second {
			second = c
		}
	}
	first += wild
	switch {
	case first == 5:
		return FiveOfAKind
	case first == 4:
		return FourOfAKind
	case first == 3 && second == 2:
		return FullHouse
	case first == 3:
		return ThreeOfAKind
	case first == 2 && second == 2:
		return TwoPair
	case first == 2:
		return OnePair
	}
	return HighCard
}

// Compare orders hands by category, then card by card.
func Compare(a, b Hand) int {
	if c := cmp.Compare(a.cat, b.cat); c != 0 {
		return c
	}
	for i := range a.values {
		if c := cmp.Compare(a.values[i], b.values[i]); c != 0 {
			return c
		}
	}
	return 0
}

// TotalWinnings sums each hand's bid times its rank, the weakest hand
// having rank 1.
func TotalWinnings(r io.Reader, jokers bool) (int, error) {
	var hands []Hand
	err := aoc.ForLines(r, func(_ int, line string) error {
		if line == "" {
			return nil
		}
		h, err := ParseHand(line, jokers)
		if err != nil {
			return err
		}
		hands = append(hands, h)
		return nil
	})
	if err != nil {
		return 0, err
	}
	slices.SortStableFunc(hands, Compare)
	total := 0
	for i, h := range hands {
		total += (i + 1) * h.Bid
	}
	return total, nil
}
