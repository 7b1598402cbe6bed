package day13

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aoc "github.com/attilahorvath/advent-of-code-2023"
)

const (
	vertical = `#.##..##.
..#.##.#.
##......#
##......#
..#.##.#.
..##..##.
#.#.##.#.`

	horizontal = `#...##..#
#....#..#
..##..###
#####.##.
#####.##.
..##..###
#....#..#`
)

func TestSumPatterns(t *testing.T) {
	in := vertical + "\n\n" + horizontal

	got, err := SumPatterns(strings.NewReader(in), 0)
	require.NoError(t, err)
	assert.Equal(t, 405, got)

	got, err = SumPatterns(strings.NewReader(in), 1)
	require.NoError(t, err)
	assert.Equal(t, 400, got)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		in      string
		smudges int
		want    int
	}{
		{vertical, 0, 5},
		{horizontal, 0, 400},
		{vertical, 1, 300},
		{horizontal, 1, 100},
	}
	for _, tt := range tests {
		g, err := aoc.GridFromLines(strings.Split(tt.in, "\n"))
		require.NoError(t, err)
		got, err := Summarize(g, tt.smudges)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestNoReflection(t *testing.T) {
	_, err := SumPatterns(strings.NewReader("#.\n.."), 0)
	assert.ErrorIs(t, err, ErrNoReflection)
}
