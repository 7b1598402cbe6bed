package aoc

import (
	"slices"
	"strings"
	"testing"
)

func TestPolygonArea(t *testing.T) {
	tests := []struct {
		pts      []Pt
		want     int
		interior int
		bounded  int
	}{
		{
			pts: []Pt{
				{X: 0, Y: 0},
				{X: 5, Y: 0},
				{X: 5, Y: 5},
				{X: 0, Y: 5},
				{X: 0, Y: 0},
			},
			want:     25,
			interior: 16,
			bounded:  36,
		},
		{
			// Counter-clockwise L shape.
			pts: []Pt{
				{X: 0, Y: 0},
				{X: 0, Y: 4},
				{X: 4, Y: 4},
				{X: 4, Y: 2},
				{X: 2, Y: 2},
				{X: 2, Y: 0},
				{X: 0, Y: 0},
			},
			want:     12,
			interior: 5,
			bounded:  21,
		},
	}

	for _, tt := range tests {
		if got := PolygonArea(tt.pts); got != tt.want {
			t.Errorf("PolygonArea(%v) = %v, want %v", tt.pts, got, tt.want)
		}
		if got := PolygonInteriorPoints(tt.pts); got != tt.interior {
			t.Errorf("PolygonInteriorPoints(%v) = %v, want %v", tt.pts, got, tt.interior)
		}
		if got := PolygonBoundedPoints(tt.pts); got != tt.bounded {
			t.Errorf("PolygonBoundedPoints(%v) = %v, want %v", tt.pts, got, tt.bounded)
		}
	}
}

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},

		{
			comment: `/*
want=1234

multi-line-input

other-block
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input

other-block
other-line-2
`,
			},
		},
		{
			comment: `// want=42`,
			want: sample{
				want: "42",
			},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("parseSample(%q) = %v, want %v", tt.comment, got, tt.want)
		}
	}
}

func TestExtractSamples(t *testing.T) {
	src := `package main

/*
want=3

1 2
*/
func (s solver) D1p1() (any, error) { return nil, nil }

// want=2
func (s solver) D1p2() (any, error) { return nil, nil }

// Not a sample.
func (s solver) D2p1() (any, error) { return nil, nil }
`
	samples, err := extractSamples([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if got := samples["D1p1"]; got.want != "3" || got.input != "1 2\n" {
		t.Errorf("D1p1 sample = %+v", got)
	}
	if got := samples["D1p2"]; got.want != "2" || got.input != "1 2\n" {
		t.Errorf("D1p2 sample = %+v, want input inherited from D1p1", got)
	}
	if _, ok := samples["D2p1"]; ok {
		t.Errorf("D2p1 has a sample, want none")
	}
}

type sumSolver struct {
	*Puzzle
}

func (s sumSolver) sum() (any, error) {
	nums, err := Ints(string(s.Input()))
	if err != nil {
		return nil, err
	}
	return Sum(nums...), nil
}

/*
want=6

1 2 3
*/
func (s sumSolver) D1p1() (any, error) { return s.sum() }

// want=7
func (s sumSolver) D1p2() (any, error) { return s.sum() }

func TestCheckSamples(t *testing.T) {
	src := `package aoc

/*
want=6

1 2 3
*/
func (s sumSolver) D1p1() (any, error) { return s.sum() }

// want=7
func (s sumSolver) D1p2() (any, error) { return s.sum() }
`
	err := CheckSamples([]byte(src), &sumSolver{})
	if err == nil {
		t.Fatal("CheckSamples succeeded, want a D1p2 mismatch")
	}
	if msg := err.Error(); !strings.Contains(msg, "D1p2: got 6; want 7") || strings.Contains(msg, "D1p1") {
		t.Errorf("CheckSamples error = %q", msg)
	}

	if err := CheckSamples([]byte(src), sumSolver{}); err == nil {
		t.Error("CheckSamples accepted a non-pointer solver")
	}
}

func TestExtrapolate(t *testing.T) {
	tests := []struct {
		in       []int
		forward  int
		backward int
	}{
		{[]int{0, 3, 6, 9, 12, 15}, 18, -3},
		{[]int{1, 3, 6, 10, 15, 21}, 28, 0},
		{[]int{10, 13, 16, 21, 30, 45}, 68, 5},
		{[]int{7}, 7, 7},
	}
	for _, tt := range tests {
		if got := Extrapolate(tt.in, true); got != tt.forward {
			t.Errorf("Extrapolate(%v, true) = %v, want %v", tt.in, got, tt.forward)
		}
		if got := Extrapolate(tt.in, false); got != tt.backward {
			t.Errorf("Extrapolate(%v, false) = %v, want %v", tt.in, got, tt.backward)
		}
	}
}

func TestLCM(t *testing.T) {
	tests := []struct {
		in   []int
		want int
	}{
		{[]int{4}, 4},
		{[]int{4, 6}, 12},
		{[]int{2, 3, 5, 7}, 210},
		{[]int{3767, 3779, 3889, 4057}, 224602953547789},
	}
	for _, tt := range tests {
		if got := LCM(tt.in...); got != tt.want {
			t.Errorf("LCM(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSolveQuad(t *testing.T) {
	hi, lo, ok := SolveQuad(1, -5, 6)
	if !ok || hi != 3 || lo != 2 {
		t.Errorf("SolveQuad(1, -5, 6) = %v, %v, %v; want 3, 2, true", hi, lo, ok)
	}
	if _, _, ok := SolveQuad(1, 0, 1); ok {
		t.Errorf("SolveQuad(1, 0, 1) found real roots")
	}
}

func TestStandardizePt(t *testing.T) {
	size := Pt{5, 3}
	tests := []struct {
		in, want Pt
	}{
		{Pt{1, 1}, Pt{1, 1}},
		{Pt{5, 3}, Pt{0, 0}},
		{Pt{-1, -1}, Pt{4, 2}},
		{Pt{-11, 7}, Pt{4, 1}},
	}
	for _, tt := range tests {
		if got := StandardizePt(tt.in, size); got != tt.want {
			t.Errorf("StandardizePt(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestReadGrid(t *testing.T) {
	g, err := ReadGrid(strings.NewReader("ab\ncd\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Size(); got != (Pt{2, 2}) {
		t.Errorf("Size = %v", got)
	}
	if got := g.Transpose().String(); got != "ac\nbd" {
		t.Errorf("Transpose = %q", got)
	}
	if _, err := ReadGrid(strings.NewReader("ab\nc\n")); err != ErrRaggedGrid {
		t.Errorf("ragged grid: err = %v, want %v", err, ErrRaggedGrid)
	}
	if _, err := ReadGrid(strings.NewReader("")); err != ErrEmptyGrid {
		t.Errorf("empty grid: err = %v, want %v", err, ErrEmptyGrid)
	}
}

func TestGridHash(t *testing.T) {
	g := Grid[byte]{[]byte("O.#"), []byte("..O")}
	c := g.Clone()
	if g.Hash() != c.Hash() || !GridEqual(g, c) {
		t.Fatalf("clone differs from original")
	}
	c.Set(Pt{0, 0}, '.')
	if g.Hash() == c.Hash() || GridEqual(g, c) {
		t.Errorf("modified clone still equal to original")
	}
}

func TestBlocks(t *testing.T) {
	blocks, err := Blocks(strings.NewReader("a\nb\n\n\nc\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"a", "b"}, {"c"}}
	if !slices.EqualFunc(blocks, want, slices.Equal[[]string]) {
		t.Errorf("Blocks = %q, want %q", blocks, want)
	}
}

func TestMinQueueFunc(t *testing.T) {
	pq := MinQueueFunc(strings.Compare)
	pq.PushValue("b", 1)
	pq.PushValue("c", 0)
	pq.PushValue("a", 1)
	var got []string
	for pq.Len() > 0 {
		got = append(got, pq.Pop().V)
	}
	if want := []string{"c", "a", "b"}; !slices.Equal(got, want) {
		t.Errorf("pop order = %v, want %v", got, want)
	}
}
