// Package day02 checks cube games against a bag's contents.
package day02

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	aoc "github.com/attilahorvath/advent-of-code-2023"
)

// ErrInvalidGame is returned for lines that are not of the form
// "Game N: k color, ...; ...".
var ErrInvalidGame = errors.New("day02: invalid game")

// Bag limits for PossibleGames.
const (
	maxRed   = 12
	maxGreen = 13
	maxBlue  = 14
)

// Draw is one handful of cubes. Colors not mentioned are zero.
type Draw struct {
	Red, Green, Blue int
}

func (d Draw) possible() bool {
	return d.Red <= maxRed && d.Green <= maxGreen && d.Blue <= maxBlue
}

type Game struct {
	ID    int
	Draws []Draw
}

func (g Game) possible() bool {
	for _, d := range g.Draws {
		if !d.possible() {
			return false
		}
	}
	return true
}

// power multiplies the largest count seen of each color. Counts start at
// one, so a color never drawn does not zero the product.
func (g Game) power() int {
	m := Draw{1, 1, 1}
	for _, d := range g.Draws {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}
	return m.Red * m.Green * m.Blue
}

func ParseGame(line string) (Game, error) {
	var g Game
	head, sets, ok := strings.Cut(line, ": ")
	if !ok {
		return g, fmt.Errorf("%w: %q", ErrInvalidGame, line)
	}
	id, ok := strings.CutPrefix(head, "Game ")
	if !ok {
		return g, fmt.Errorf("%w: %q", ErrInvalidGame, line)
	}
	var err error
	if g.ID, err = aoc.Int(id); err != nil {
		return g, fmt.Errorf("%w: %q", ErrInvalidGame, line)
	}
	for _, set := range strings.Split(sets, "; ") {
		var d Draw
		for _, cubes := range strings.Split(set, ", ") {
			n, color, ok := strings.Cut(cubes, " ")
			if !ok {
				return g, fmt.Errorf("%w: %q", ErrInvalidGame, cubes)
			}
			count, err := strconv.Atoi(n)
			if err != nil {
				return g, fmt.Errorf("%w: %q", ErrInvalidGame, cubes)
			}
			switch color {
			case "red":
				d.Red = count
			case "green":
				d.Green = count
			case "blue":
				d.Blue = count
			default:
				return g, fmt.Errorf("%w: unknown color %q", ErrInvalidGame, color)
			}
		}
		g.Draws = append(g.Draws, d)
	}
	return g, nil
}

func forGames(r io.Reader, f func(Game)) error {
	return aoc.ForLines(r, func(_ int, line string) error {
		g, err := ParseGame(line)
		if err != nil {
			return err
		}
		f(g)
		return nil
	})
}

// PossibleGames sums the IDs of the games whose every draw fits in a bag
// of 12 red, 13 green and 14 blue cubes.
func PossibleGames(r io.Reader) (int, error) {
	sum := 0
	err := forGames(r, func(g Game) {
		if g.possible() {
			sum += g.ID
		}
	})
	return sum, err
}

// PowerSets sums the power of the minimal bag of each game.
func PowerSets(r io.Reader) (int, error) {
	sum := 0
	err := forGames(r, func(g Game) {
		sum += g.power()
	})
	return sum, err
}
