// Package day08 walks the desert network.
package day08

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	aoc "github.com/attilahorvath/advent-of-code-2023"
)

var (
	ErrInvalidNetwork = errors.New("day08: invalid network")
	ErrNoPath         = errors.New("day08: target not reached")
)

type node struct {
	left, right string
}

// Network is a set of nodes with a left and a right successor each, plus
// the directions to follow, repeated as needed.
type Network struct {
	Dirs  string
	nodes map[string]node
}

// Parse reads the direction line followed by a blank line and one
// "AAA = (BBB, CCC)" line per node.
func Parse(r io.Reader) (*Network, error) {
	blocks, err := aoc.Blocks(r)
	if err != nil {
		return nil, err
	}
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return nil, fmt.Errorf("%w: want directions and nodes", ErrInvalidNetwork)
	}
	n := &Network{
		Dirs:  blocks[0][0],
		nodes: make(map[string]node, len(blocks[1])),
	}
	if strings.Trim(n.Dirs, "LR") != "" {
		return nil, fmt.Errorf("%w: directions %q", ErrInvalidNetwork, n.Dirs)
	}
	for _, line := range blocks[1] {
		name, rest, ok := strings.Cut(line, " = ")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNetwork, line)
		}
		rest, ok = strings.CutPrefix(rest, "(")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNetwork, line)
		}
		rest, ok = strings.CutSuffix(rest, ")")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNetwork, line)
		}
		l, r, ok := strings.Cut(rest, ", ")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNetwork, line)
		}
		n.nodes[name] = node{l, r}
	}
	for name, nd := range n.nodes {
		for _, next := range []string{nd.left, nd.right} {
			if _, ok := n.nodes[next]; !ok {
				return nil, fmt.Errorf("%w: %s leads to unknown node %s", ErrInvalidNetwork, name, next)
			}
		}
	}
	return n, nil
}

// Step returns the node reached from name after taking step i of the
// directions.
func (n *Network) Step(name string, i int) string {
	nd := n.nodes[name]
	if n.Dirs[i%len(n.Dirs)] == 'L' {
		return nd.left
	}
	return nd.right
}

// Steps counts the steps from start to the first node accepted by done.
// A walk that takes more steps than there are node and direction
// combinations is going in circles and fails with ErrNoPath.
func (n *Network) Steps(start string, done func(string) bool) (int, error) {
	if _, ok := n.nodes[start]; !ok {
		return 0, fmt.Errorf("%w: no node %s", ErrInvalidNetwork, start)
	}
	limit := len(n.nodes) * len(n.Dirs)
	cur := start
	for i := 0; i <= limit; i++ {
		cur = n.Step(cur, i)
		if done(cur) {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: from %s", ErrNoPath, start)
}

// Starts returns the sorted names of the nodes ending in A.
func (n *Network) Starts() []string {
	var starts []string
	for name := range n.nodes {
		if strings.HasSuffix(name, "A") {
			starts = append(starts, name)
		}
	}
	slices.Sort(starts)
	return starts
}

// TotalSteps counts the steps from AAA to ZZZ. With multiple, it walks
// from every node ending in A at once and counts the steps until all of
// them stand on a node ending in Z.
func TotalSteps(r io.Reader, multiple bool) (int, error) {
	n, err := Parse(r)
	if err != nil {
		return 0, err
	}
	if !multiple {
		return n.Steps("AAA", func(s string) bool { return s == "ZZZ" })
	}
	starts := n.Starts()
	if len(starts) == 0 {
		return 0, fmt.Errorf("%w: no start nodes", ErrInvalidNetwork)
	}
	cycles := make([]int, len(starts))
	for i, s := range starts {
		cycles[i], err = n.Steps(s, func(s string) bool { return strings.HasSuffix(s, "Z") })
		if err != nil {
			return 0, err
		}
	}
	return aoc.LCM(cycles...), nil
}
