package main

import (
	"testing"

	aoc "github.com/attilahorvath/advent-of-code-2023"
)

func TestSamples(t *testing.T) {
	if err := aoc.CheckSamples(source, &solver{}); err != nil {
		t.Fatal(err)
	}
}
