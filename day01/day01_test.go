package day01

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalibrate(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		includeWords bool
		want         int
	}{
		{
			name:  "digits",
			input: "1abc2\npqr3stu8vwx\na1b2c3d4e5f\ntreb7uchet",
			want:  142,
		},
		{
			name:         "words",
			input:        "two1nine\neightwothree\nabcone2threexyz\nxtwone3four\n4nineeightseven2\nzoneight234\n7pqrstsixteen",
			includeWords: true,
			want:         281,
		},
		{
			name:         "overlapping words",
			input:        "oneight",
			includeWords: true,
			want:         18,
		},
		{
			name:         "empty and digitless lines",
			input:        "\nabc\n5",
			includeWords: true,
			want:         55,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calibrate(strings.NewReader(tt.input), tt.includeWords)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
