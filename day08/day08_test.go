package day08

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	direct = `RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)`

	repeated = `LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)`

	ghosts = `LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)`
)

func TestTotalSteps(t *testing.T) {
	tests := []struct {
		in       string
		multiple bool
		want     int
	}{
		{direct, false, 2},
		{repeated, false, 6},
		{ghosts, true, 6},
		{direct, true, 2},
	}
	for _, tt := range tests {
		got, err := TotalSteps(strings.NewReader(tt.in), tt.multiple)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestTotalStepsIgnoresStartOrder(t *testing.T) {
	reordered := `LR

22A = (22B, XXX)
XXX = (XXX, XXX)
22B = (22C, 22C)
11A = (11B, XXX)
22C = (22Z, 22Z)
11B = (XXX, 11Z)
22Z = (22B, 22B)
11Z = (11B, XXX)`
	want, err := TotalSteps(strings.NewReader(ghosts), true)
	require.NoError(t, err)
	got, err := TotalSteps(strings.NewReader(reordered), true)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStepIsDeterministic(t *testing.T) {
	n, err := Parse(strings.NewReader(ghosts))
	require.NoError(t, err)
	assert.Equal(t, []string{"11A", "22A"}, n.Starts())
	for i := 0; i < 10; i++ {
		assert.Equal(t, n.Step("22B", i), n.Step("22B", i))
	}
	assert.Equal(t, "11B", n.Step("11A", 0))
	assert.Equal(t, "XXX", n.Step("11A", 1))
}

func TestTotalStepsErrors(t *testing.T) {
	_, err := TotalSteps(strings.NewReader("L\n\nAAA = (AAA, AAA)"), false)
	assert.ErrorIs(t, err, ErrNoPath)

	_, err = TotalSteps(strings.NewReader("L\n\nBBB = (BBB, BBB)"), false)
	assert.ErrorIs(t, err, ErrInvalidNetwork)

	_, err = TotalSteps(strings.NewReader("L\n\nAAA = (QQQ, AAA)"), false)
	assert.ErrorIs(t, err, ErrInvalidNetwork)

	_, err = TotalSteps(strings.NewReader("LX\n\nAAA = (AAA, AAA)"), false)
	assert.ErrorIs(t, err, ErrInvalidNetwork)
}
