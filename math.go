package aoc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Digits returns the individual digits of the string.
func Digits(line string) ([]int, error) {
	in := make([]int, 0, len(line))
	for _, c := range line {
		d, ok := Digit(c)
		if !ok {
			return nil, fmt.Errorf("not a digit: %q", c)
		}
		in = append(in, d)
	}
	return in, nil
}

// Digit returns the digit value of the rune, and whether it is a digit.
func Digit(r rune) (int, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

// SolveQuad returns the roots of the quadratic equation ax^2 + bx + c = 0,
// larger first. It reports false if there are no real roots.
func SolveQuad[T Number](a, b, c T) (float64, float64, bool) {
	d := float64(b*b - 4*a*c)
	if d < 0 {
		return 0, 0, false
	}
	d = math.Sqrt(d)
	a2 := float64(2 * a)
	return (-float64(b) + d) / a2, (-float64(b) - d) / a2, true
}

// LCM returns the least common multiple of the integers.
func LCM(integers ...int) int {
	if len(integers) == 0 {
		panic("no integers")
	}

	lcm := func(a, b int) int {
		return a / GCD(a, b) * b
	}

	result := integers[0]
	for _, v := range integers[1:] {
		result = lcm(result, v)
	}
	return result
}

// GCD returns the greatest common divisor of the integers.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Extrapolate returns the next value in the sequence x.
// If forward is true, it extrapolates the next value, otherwise
// it extrapolates the previous value in the sequence.
//
// Difference rows are taken until a row is constant; the constant is
// then folded back up through the edge value of each row.
func Extrapolate[T Number](x []T, forward bool) (y T) {
	if len(x) == 0 {
		return 0
	}
	var edges []T
	row := x
	for {
		if forward {
			edges = append(edges, row[len(row)-1])
		} else {
			edges = append(edges, row[0])
		}
		if constant(row) {
			break
		}
		next := make([]T, len(row)-1)
		for i := range next {
			next[i] = row[i+1] - row[i]
		}
		row = next
	}
	for i := len(edges) - 1; i >= 0; i-- {
		if forward {
			y = edges[i] + y
		} else {
			y = edges[i] - y
		}
	}
	return y
}

func constant[T Number](x []T) bool {
	for _, v := range x[1:] {
		if v != x[0] {
			return false
		}
	}
	return true
}

// ParseHex parses a hexadecimal string, with or without a leading '#'.
func ParseHex(in string) (int64, error) {
	return strconv.ParseInt(strings.TrimPrefix(in, "#"), 16, 64)
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Int returns the int value of the string, ignoring surrounding space.
func Int(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// Ints returns the int values of the whitespace separated fields of s.
func Ints(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// PolygonArea returns the area of the polygon defined by the points, using
// the shoelace formula. The last point must repeat the first.
func PolygonArea(pts []Pt) int {
	var area int

	for i := 1; i < len(pts); i++ {
		a := pts[i-1]
		b := pts[i]
		area += a.X*b.Y - a.Y*b.X
	}
	if area < 0 {
		area = -area
	}
	return area >> 1
}

// PolygonPerimeter returns the perimeter of the polygon defined by the points.
func PolygonPerimeter(pts []Pt) int {
	var perimeter int

	for i := 1; i < len(pts); i++ {
		perimeter += pts[i-1].MDist(pts[i])
	}
	return perimeter
}

// PolygonBoundedPoints returns the number of points with integer coordinates
// inside or on the polygon defined by the points.
func PolygonBoundedPoints(pts []Pt) int {
	/*
	  Pick's theorem:
	  A = i + b/2 - 1

	  Bounded points = i + b

	  i = A - b/2 + 1
	  i + b = A + b/2 + 1
	*/
	A := PolygonArea(pts)
	b_2 := PolygonPerimeter(pts) >> 1
	return A + b_2 + 1
}

// PolygonInteriorPoints returns the number of points with integer
// coordinates strictly inside the polygon.
func PolygonInteriorPoints(pts []Pt) int {
	return PolygonArea(pts) - PolygonPerimeter(pts)>>1 + 1
}
