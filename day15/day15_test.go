package day15

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sequence = "rn=1,cm-,qp=3,cm=2,qp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7\n"

func TestHash(t *testing.T) {
	assert.Equal(t, 52, Hash("HASH"))
	assert.Equal(t, 0, Hash("rn"))
	assert.Equal(t, 3, Hash("pc"))
}

func TestSumHashValues(t *testing.T) {
	got, err := SumHashValues(strings.NewReader(sequence))
	require.NoError(t, err)
	assert.Equal(t, 1320, got)
}

func TestFocusingPower(t *testing.T) {
	got, err := FocusingPower(strings.NewReader(sequence))
	require.NoError(t, err)
	assert.Equal(t, 145, got)
}

func TestRemoveMissingLabelIsNoop(t *testing.T) {
	var a, b Boxes
	for _, s := range strings.Split("rn=1,qp=3,cm=2", ",") {
		require.NoError(t, a.Apply(s))
		require.NoError(t, b.Apply(s))
	}
	require.NoError(t, b.Apply("zz-"))
	require.NoError(t, b.Apply("cm-"))
	require.NoError(t, b.Apply("cm=2"))
	assert.Equal(t, a.Power(), b.Power())
}

func TestApplyErrors(t *testing.T) {
	var b Boxes
	for _, bad := range []string{"rn", "=1", "rn=x"} {
		assert.ErrorIs(t, b.Apply(bad), ErrInvalidStep, bad)
	}
}
