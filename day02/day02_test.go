package day02

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const games = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green`

func TestPossibleGames(t *testing.T) {
	got, err := PossibleGames(strings.NewReader(games))
	require.NoError(t, err)
	assert.Equal(t, 8, got)
}

func TestPowerSets(t *testing.T) {
	got, err := PowerSets(strings.NewReader(games))
	require.NoError(t, err)
	assert.Equal(t, 2286, got)
}

func TestParseGame(t *testing.T) {
	g, err := ParseGame("Game 12: 2 green; 3 blue, 1 red")
	require.NoError(t, err)
	assert.Equal(t, 12, g.ID)
	assert.Equal(t, []Draw{{Green: 2}, {Red: 1, Blue: 3}}, g.Draws)
	// Red is never drawn, so it counts as one.
	assert.Equal(t, 6, g.power())

	for _, bad := range []string{"Game x: 1 red", "Game 1 1 red", "Game 1: 1 purple", "Game 1: red"} {
		_, err := ParseGame(bad)
		assert.ErrorIs(t, err, ErrInvalidGame, bad)
	}
}
