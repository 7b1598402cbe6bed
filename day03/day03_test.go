package day03

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const engine = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..`

func TestSumPartNumbers(t *testing.T) {
	got, err := SumPartNumbers(strings.NewReader(engine))
	require.NoError(t, err)
	require.Equal(t, 4361, got)
}

func TestSumGearRatios(t *testing.T) {
	got, err := SumGearRatios(strings.NewReader(engine))
	require.NoError(t, err)
	require.Equal(t, 467835, got)
}

func TestEdges(t *testing.T) {
	// Numbers touching the right edge and a gear shared diagonally.
	input := "..12\n.*..\n3..."
	got, err := SumPartNumbers(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 15, got)

	got, err = SumGearRatios(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 36, got)
}
