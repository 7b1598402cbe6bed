package day20

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	loop = `broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a`

	output = `broadcaster -> a
%a -> inv, con
&inv -> b
%b -> con
&con -> output`

	// Two flip-flop counters feeding a conjunction in front of rx.
	counters = `broadcaster -> a, p
%a -> b
%b -> c
%c -> hub
%p -> q
%q -> hub
&hub -> rx`
)

func TestCountAllPulses(t *testing.T) {
	got, err := CountAllPulses(strings.NewReader(loop), 1000)
	require.NoError(t, err)
	assert.Equal(t, 32000000, got)

	got, err = CountAllPulses(strings.NewReader(output), 1000)
	require.NoError(t, err)
	assert.Equal(t, 11687500, got)
}

func TestPress(t *testing.T) {
	n, err := BuildNetwork(strings.NewReader(loop))
	require.NoError(t, err)
	low, high := n.Press()
	assert.Equal(t, 8, low)
	assert.Equal(t, 4, high)
}

func TestPressesAreAdditive(t *testing.T) {
	n, err := BuildNetwork(strings.NewReader(output))
	require.NoError(t, err)
	sum := func(presses int) (int, int) {
		low, high := 0, 0
		for i := 0; i < presses; i++ {
			l, h := n.Press()
			low += l
			high += h
		}
		return low, high
	}
	l1, h1 := sum(3)
	l2, h2 := sum(5)
	n.Reset()
	l, h := sum(8)
	assert.Equal(t, l, l1+l2)
	assert.Equal(t, h, h1+h2)
}

func TestFirstHigh(t *testing.T) {
	n, err := BuildNetwork(strings.NewReader(counters))
	require.NoError(t, err)
	for probe, want := range map[string]int{"a": 1, "b": 2, "c": 4, "q": 2} {
		got, err := n.FirstHigh(probe)
		require.NoError(t, err)
		assert.Equal(t, want, got, probe)
	}

	_, err = n.FirstHigh("nope")
	assert.ErrorIs(t, err, ErrInvalidNetwork)
}

func TestCountCycleLength(t *testing.T) {
	got, err := CountCycleLength(strings.NewReader(counters), []string{"c", "q"})
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	_, err = CountCycleLength(strings.NewReader(counters), nil)
	assert.ErrorIs(t, err, ErrInvalidNetwork)
}

func TestFirstHighNever(t *testing.T) {
	if testing.Short() {
		t.Skip("presses the button a million times")
	}
	n, err := BuildNetwork(strings.NewReader("broadcaster -> x\n&x -> y"))
	require.NoError(t, err)
	// x only ever hears a low pulse, so it always sends high. y never
	// sends anything.
	got, err := n.FirstHigh("x")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	_, err = n.FirstHigh("y")
	assert.ErrorIs(t, err, ErrNeverHigh)
}

func TestBuildNetworkErrors(t *testing.T) {
	for _, bad := range []string{
		"%a -> b",
		"broadcaster -> a\n%a -> ",
		"broadcaster -> a\nbroadcaster -> b",
		"broadcaster -> a\n*a -> b",
		" -> a",
		"broadcaster a",
	} {
		_, err := BuildNetwork(strings.NewReader(bad))
		assert.ErrorIs(t, err, ErrInvalidNetwork, bad)
	}
}
