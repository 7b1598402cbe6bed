// Package day15 runs the HASHMAP lens initialization sequence.
package day15

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

var ErrInvalidStep = errors.New("day15: invalid step")

// Hash returns the HASH value of s.
func Hash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (h + int(s[i])) * 17 % 256
	}
	return h
}

// steps reads the comma separated sequence, ignoring newlines.
func steps(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	s := strings.ReplaceAll(string(data), "\n", "")
	var out []string
	for _, step := range strings.Split(s, ",") {
		if step != "" {
			out = append(out, step)
		}
	}
	return out, nil
}

// SumHashValues sums the HASH of every step.
func SumHashValues(r io.Reader) (int, error) {
	ss, err := steps(r)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, s := range ss {
		total += Hash(s)
	}
	return total, nil
}

type lens struct {
	label string
	focal int
}

// Boxes is the row of 256 boxes, each holding lenses in insertion order.
type Boxes [256][]lens

// Apply performs one step: "label=N" puts a lens of focal length N in the
// label's box, replacing any lens with the same label in place, and
// "label-" removes the label's lens if present.
func (b *Boxes) Apply(step string) error {
	if label, ok := strings.CutSuffix(step, "-"); ok {
		box := &b[Hash(label)]
		*box = slices.DeleteFunc(*box, func(l lens) bool { return l.label == label })
		return nil
	}
	label, v, ok := strings.Cut(step, "=")
	if !ok || label == "" {
		return fmt.Errorf("%w: %q", ErrInvalidStep, step)
	}
	focal, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidStep, step, err)
	}
	box := &b[Hash(label)]
	if i := slices.IndexFunc(*box, func(l lens) bool { return l.label == label }); i >= 0 {
		(*box)[i].focal = focal
		return nil
	}
	*box = append(*box, lens{label, focal})
	return nil
}

// Power returns the total focusing power of the lenses.
func (b *Boxes) Power() int {
	total := 0
	for i, box := range b {
		for j, l := range box {
			total += (i + 1) * (j + 1) * l.focal
		}
	}
	return total
}

// FocusingPower applies every step to empty boxes and returns the
// resulting focusing power.
func FocusingPower(r io.Reader) (int, error) {
	ss, err := steps(r)
	if err != nil {
		return 0, err
	}
	var b Boxes
	for _, s := range ss {
		if err := b.Apply(s); err != nil {
			return 0, err
		}
	}
	return b.Power(), nil
}
