package day09

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const histories = `0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45`

func TestSumValues(t *testing.T) {
	got, err := SumValues(strings.NewReader(histories), false)
	require.NoError(t, err)
	assert.Equal(t, 114, got)

	got, err = SumValues(strings.NewReader(histories), true)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestSumValuesNegative(t *testing.T) {
	got, err := SumValues(strings.NewReader("-1 -2 -3\n\n5 5 5\n"), false)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestSumValuesError(t *testing.T) {
	_, err := SumValues(strings.NewReader("1 2 x"), false)
	assert.ErrorIs(t, err, ErrInvalidHistory)
}
