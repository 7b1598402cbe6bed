// Package day20 simulates the pulse propagation network.
package day20

import (
	"errors"
	"fmt"
	"io"
	"strings"

	aoc "github.com/attilahorvath/advent-of-code-2023"
)

var (
	ErrInvalidNetwork = errors.New("day20: invalid module configuration")
	ErrNeverHigh      = errors.New("day20: probe never sends a high pulse")
)

const broadcaster = "broadcaster"

// maxPresses bounds the button presses FirstHigh waits for a probe.
const maxPresses = 1 << 20

type Kind byte

const (
	Sink Kind = iota
	Broadcaster
	FlipFlop
	Conjunction
)

type module struct {
	name    string
	kind    Kind
	outputs []int

	// on is the flip-flop state.
	on bool

	// For conjunctions, last holds the last pulse from each input, at the
	// position given by inputs, and highs counts the high entries.
	inputs map[int]int
	last   []bool
	highs  int
}

type pulse struct {
	from, to int
	high     bool
}

// Network is a configuration of modules wired together. Modules that are
// only ever sent pulses act as sinks.
type Network struct {
	modules []module
	index   map[string]int
	start   int
}

func (n *Network) id(name string) int {
	if i, ok := n.index[name]; ok {
		return i
	}
	n.index[name] = len(n.modules)
	n.modules = append(n.modules, module{name: name})
	return len(n.modules) - 1
}

// BuildNetwork parses one "[%&]name -> out, out" line per module.
func BuildNetwork(r io.Reader) (*Network, error) {
	n := &Network{index: make(map[string]int)}
	defined := make(map[string]bool)
	err := aoc.ForLines(r, func(_ int, line string) error {
		if line == "" {
			return nil
		}
		name, outs, ok := strings.Cut(line, " -> ")
		if !ok || name == "" {
			return fmt.Errorf("%w: %q", ErrInvalidNetwork, line)
		}
		kind := Broadcaster
		switch name[0] {
		case '%':
			kind, name = FlipFlop, name[1:]
		case '&':
			kind, name = Conjunction, name[1:]
		default:
			if name != broadcaster {
				return fmt.Errorf("%w: unknown module type %q", ErrInvalidNetwork, name)
			}
		}
		if name == "" || defined[name] {
			return fmt.Errorf("%w: %q", ErrInvalidNetwork, line)
		}
		defined[name] = true
		i := n.id(name)
		n.modules[i].kind = kind
		for _, out := range strings.Split(outs, ", ") {
			if out == "" {
				return fmt.Errorf("%w: %q", ErrInvalidNetwork, line)
			}
			j := n.id(out)
			n.modules[i].outputs = append(n.modules[i].outputs, j)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	start, ok := n.index[broadcaster]
	if !ok || n.modules[start].kind != Broadcaster {
		return nil, fmt.Errorf("%w: no broadcaster", ErrInvalidNetwork)
	}
	n.start = start
	for i := range n.modules {
		m := &n.modules[i]
		if m.kind == Conjunction {
			m.inputs = make(map[int]int)
		}
	}
	for i, m := range n.modules {
		for _, j := range m.outputs {
			c := &n.modules[j]
			if c.kind != Conjunction {
				continue
			}
			if _, ok := c.inputs[i]; !ok {
				c.inputs[i] = len(c.inputs)
			}
		}
	}
	n.Reset()
	return n, nil
}

// Reset turns every flip-flop off and makes every conjunction remember a
// low pulse from each input.
func (n *Network) Reset() {
	for i := range n.modules {
		m := &n.modules[i]
		m.on = false
		m.last = make([]bool, len(m.inputs))
		m.highs = 0
	}
}

// press pushes the button once, calling sent for every pulse in the order
// it is delivered.
func (n *Network) press(sent func(pulse)) {
	q := aoc.NewQueue(pulse{from: -1, to: n.start})
	q.While(func(p pulse) bool {
		sent(p)
		m := &n.modules[p.to]
		var high bool
		switch m.kind {
		case Sink:
			return true
		case Broadcaster:
			high = p.high
		case FlipFlop:
			if p.high {
				return true
			}
			m.on = !m.on
			high = m.on
		case Conjunction:
			i := m.inputs[p.from]
			if m.last[i] != p.high {
				m.last[i] = p.high
				if p.high {
					m.highs++
				} else {
					m.highs--
				}
			}
			high = m.highs != len(m.last)
		}
		for _, out := range m.outputs {
			q.Push(pulse{from: p.to, to: out, high: high})
		}
		return true
	})
}

// Press pushes the button once and returns the number of low and high
// pulses sent, the button's own pulse included.
func (n *Network) Press() (low, high int) {
	n.press(func(p pulse) {
		if p.high {
			high++
		} else {
			low++
		}
	})
	return low, high
}

// FirstHigh resets the network and returns the number of button presses
// until the probe module first sends a high pulse.
func (n *Network) FirstHigh(probe string) (int, error) {
	id, ok := n.index[probe]
	if !ok {
		return 0, fmt.Errorf("%w: no module %s", ErrInvalidNetwork, probe)
	}
	n.Reset()
	for presses := 1; presses <= maxPresses; presses++ {
		found := false
		n.press(func(p pulse) {
			if p.from == id && p.high {
				found = true
			}
		})
		if found {
			return presses, nil
		}
	}
	return 0, fmt.Errorf("%w: %s within %d presses", ErrNeverHigh, probe, maxPresses)
}

// CountAllPulses presses the button the given number of times and returns
// the product of the low and high pulse totals.
func CountAllPulses(r io.Reader, presses int) (int, error) {
	n, err := BuildNetwork(r)
	if err != nil {
		return 0, err
	}
	low, high := 0, 0
	for i := 0; i < presses; i++ {
		l, h := n.Press()
		low += l
		high += h
	}
	return low * high, nil
}

// CountCycleLength returns the first press at which every probe sends a
// high pulse during the same press, assuming each probe does so on a
// fixed period starting from reset.
func CountCycleLength(r io.Reader, probes []string) (int, error) {
	if len(probes) == 0 {
		return 0, fmt.Errorf("%w: no probes", ErrInvalidNetwork)
	}
	n, err := BuildNetwork(r)
	if err != nil {
		return 0, err
	}
	periods := make([]int, len(probes))
	for i, probe := range probes {
		periods[i], err = n.FirstHigh(probe)
		if err != nil {
			return 0, err
		}
	}
	return aoc.LCM(periods...), nil
}
