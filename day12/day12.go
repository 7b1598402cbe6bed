// Package day12 counts the arrangements of damaged springs.
package day12

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	aoc "github.com/attilahorvath/advent-of-code-2023"
)

var ErrInvalidRecord = errors.New("day12: invalid record")

// Record is a row of springs, each '.', '#' or '?', and the sizes of its
// runs of damaged springs, in order.
type Record struct {
	Springs string
	Groups  []int
}

func ParseRecord(line string) (Record, error) {
	springs, groups, ok := strings.Cut(line, " ")
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrInvalidRecord, line)
	}
	if strings.Trim(springs, ".#?") != "" {
		return Record{}, fmt.Errorf("%w: springs %q", ErrInvalidRecord, springs)
	}
	rec := Record{Springs: springs}
	for _, f := range strings.Split(groups, ",") {
		v, err := strconv.Atoi(f)
		if err != nil || v < 1 {
			return Record{}, fmt.Errorf("%w: group %q", ErrInvalidRecord, f)
		}
		rec.Groups = append(rec.Groups, v)
	}
	return rec, nil
}

// Unfold repeats the springs five times joined by '?', and the groups
// five times.
func (r Record) Unfold() Record {
	springs := make([]string, 5)
	var groups []int
	for i := range springs {
		springs[i] = r.Springs
		groups = append(groups, r.Groups...)
	}
	return Record{
		Springs: strings.Join(springs, "?"),
		Groups:  groups,
	}
}

// Count returns the number of ways to replace each '?' so that the runs
// of '#' match the groups.
//
// The count runs over states (group, run): the index of the current group
// and the length of the run of '#' ending at the last spring.
func (r Record) Count() int {
	k := len(r.Groups)
	longest := 0
	for _, g := range r.Groups {
		longest = max(longest, g)
	}
	width := longest + 1
	cur := make([]int, (k+1)*width)
	next := make([]int, len(cur))
	cur[0] = 1
	for i := 0; i < len(r.Springs); i++ {
		c := r.Springs[i]
		clear(next)
		for gi := 0; gi <= k; gi++ {
			for run := 0; run < width; run++ {
				n := cur[gi*width+run]
				if n == 0 {
					continue
				}
				if c == '.' || c == '?' {
					switch {
					case run == 0:
						next[gi*width] += n
					case gi < k && run == r.Groups[gi]:
						next[(gi+1)*width] += n
					}
				}
				if c == '#' || c == '?' {
					if gi < k && run < r.Groups[gi] {
						next[gi*width+run+1] += n
					}
				}
			}
		}
		cur, next = next, cur
	}
	total := cur[k*width]
	if k > 0 {
		total += cur[(k-1)*width+r.Groups[k-1]]
	}
	return total
}

// SumCounts sums the arrangement counts of every record, unfolding the
// records first if unfold is set.
func SumCounts(r io.Reader, unfold bool) (int, error) {
	total := 0
	err := aoc.ForLines(r, func(_ int, line string) error {
		if line == "" {
			return nil
		}
		rec, err := ParseRecord(line)
		if err != nil {
			return err
		}
		if unfold {
			rec = rec.Unfold()
		}
		total += rec.Count()
		return nil
	})
	return total, err
}
