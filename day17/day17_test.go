package day17

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	city = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533`

	ultra = `111111111111
999999999991
999999999991
999999999991
999999999991`
)

func TestMinHeatLoss(t *testing.T) {
	tests := []struct {
		in             string
		minRun, maxRun int
		want           int
	}{
		{city, 1, 3, 102},
		{city, 4, 10, 94},
		{ultra, 4, 10, 71},
		{"5", 1, 3, 0},
	}
	for _, tt := range tests {
		got, err := MinHeatLoss(strings.NewReader(tt.in), tt.minRun, tt.maxRun)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestMinHeatLossMonotone(t *testing.T) {
	g, err := ParseCity(strings.NewReader(city))
	require.NoError(t, err)
	base, err := LeastHeatLoss(g, 1, 3)
	require.NoError(t, err)
	for y := 0; y < len(g); y += 3 {
		for x := 0; x < len(g[y]); x += 2 {
			g[y][x] += 5
			got, err := LeastHeatLoss(g, 1, 3)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, base, "raising (%d, %d)", x, y)
			g[y][x] -= 5
		}
	}
}

func TestMinHeatLossErrors(t *testing.T) {
	_, err := MinHeatLoss(strings.NewReader("123"), 4, 10)
	assert.ErrorIs(t, err, ErrNoPath)

	_, err = MinHeatLoss(strings.NewReader("123"), 3, 2)
	assert.ErrorIs(t, err, ErrInvalidRun)

	_, err = MinHeatLoss(strings.NewReader("12\n3"), 1, 3)
	assert.Error(t, err)

	_, err = MinHeatLoss(strings.NewReader("1x"), 1, 3)
	assert.Error(t, err)
}
