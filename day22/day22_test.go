package day22

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshot = `1,0,1~1,2,1
0,0,2~2,0,2
0,2,3~2,2,3
0,0,4~0,2,4
2,0,5~2,2,5
0,1,6~2,1,6
1,1,8~1,1,9`

func TestSnapshot(t *testing.T) {
	s, err := BuildSnapshot(strings.NewReader(snapshot))
	require.NoError(t, err)
	assert.Equal(t, 5, s.SafeToDisintegrate())
	assert.Equal(t, 7, s.WouldFall())

	// Removing A drops everything else, removing F only drops G.
	assert.Equal(t, 6, s.Falling(0))
	assert.Equal(t, 1, s.Falling(5))
	assert.Equal(t, []int{1, 2}, s.Supports(3))
}

func TestSettledBricksRest(t *testing.T) {
	s, err := BuildSnapshot(strings.NewReader(snapshot + "\n5,5,20~5,5,22\n5,5,12~5,5,12"))
	require.NoError(t, err)
	for i, b := range s.Bricks {
		if b.A.Z == 1 {
			assert.Empty(t, s.Supports(i))
			continue
		}
		require.NotEmpty(t, s.Supports(i), "brick %d floats at %d", i, b.A.Z)
		for _, j := range s.Supports(i) {
			assert.Equal(t, b.A.Z-1, s.Bricks[j].B.Z)
		}
	}
	last := s.Bricks[len(s.Bricks)-1]
	assert.Equal(t, 2, last.A.Z)
	assert.Equal(t, 4, last.B.Z)
}

func TestParseBrick(t *testing.T) {
	b, err := ParseBrick("2,2,5~0,2,5")
	require.NoError(t, err)
	assert.Equal(t, 0, b.A.X)
	assert.Equal(t, 2, b.B.X)

	for _, bad := range []string{"1,2,3", "1,2~1,2,3", "1,2,x~1,2,3", "1,1,0~1,1,1", "-1,0,1~0,0,1"} {
		_, err := ParseBrick(bad)
		assert.ErrorIs(t, err, ErrInvalidBrick, bad)
	}
}
