// Package day19 sorts machine parts through a system of workflows.
package day19

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	aoc "github.com/attilahorvath/advent-of-code-2023"
)

var ErrInvalidSystem = errors.New("day19: invalid workflow system")

const (
	accept = "A"
	reject = "R"
	start  = "in"
)

// categories names the four part ratings in index order.
const categories = "xmas"

// Part holds the x, m, a and s ratings of a part.
type Part [4]int

func (p Part) Rating() int {
	return aoc.Sum(p[:]...)
}

// Rule sends parts matching its condition to Target. A rule with a zero
// Op matches every part.
type Rule struct {
	Category int
	Op       byte
	Value    int
	Target   string
}

func (r Rule) Matches(p Part) bool {
	switch r.Op {
	case '<':
		return p[r.Category] < r.Value
	case '>':
		return p[r.Category] > r.Value
	}
	return true
}

type Workflow struct {
	Name  string
	Rules []Rule
}

// Processor holds the workflows and the parts waiting to be sorted.
type Processor struct {
	Workflows map[string]Workflow
	Parts     []Part
}

func parseRule(s string) (Rule, error) {
	cond, target, ok := strings.Cut(s, ":")
	if !ok {
		return Rule{Target: s}, nil
	}
	if len(cond) < 3 {
		return Rule{}, fmt.Errorf("%w: rule %q", ErrInvalidSystem, s)
	}
	cat := strings.IndexByte(categories, cond[0])
	if cat < 0 || (cond[1] != '<' && cond[1] != '>') {
		return Rule{}, fmt.Errorf("%w: rule %q", ErrInvalidSystem, s)
	}
	v, err := strconv.Atoi(cond[2:])
	if err != nil {
		return Rule{}, fmt.Errorf("%w: rule %q: %v", ErrInvalidSystem, s, err)
	}
	return Rule{Category: cat, Op: cond[1], Value: v, Target: target}, nil
}

// ParseWorkflow parses "name{rule,rule,...,fallback}".
func ParseWorkflow(line string) (Workflow, error) {
	name, body, ok := strings.Cut(line, "{")
	if !ok || name == "" || !strings.HasSuffix(body, "}") {
		return Workflow{}, fmt.Errorf("%w: workflow %q", ErrInvalidSystem, line)
	}
	w := Workflow{Name: name}
	for _, s := range strings.Split(strings.TrimSuffix(body, "}"), ",") {
		r, err := parseRule(s)
		if err != nil {
			return Workflow{}, err
		}
		w.Rules = append(w.Rules, r)
	}
	if last := w.Rules[len(w.Rules)-1]; last.Op != 0 {
		return Workflow{}, fmt.Errorf("%w: workflow %s has no fallback rule", ErrInvalidSystem, name)
	}
	return w, nil
}

// ParsePart parses "{x=1,m=2,a=3,s=4}".
func ParsePart(line string) (Part, error) {
	var p Part
	body, ok := strings.CutPrefix(line, "{")
	if !ok || !strings.HasSuffix(body, "}") {
		return p, fmt.Errorf("%w: part %q", ErrInvalidSystem, line)
	}
	fields := strings.Split(strings.TrimSuffix(body, "}"), ",")
	if len(fields) != len(categories) {
		return p, fmt.Errorf("%w: part %q", ErrInvalidSystem, line)
	}
	for i, f := range fields {
		k, v, ok := strings.Cut(f, "=")
		if !ok || k != categories[i:i+1] {
			return p, fmt.Errorf("%w: part %q", ErrInvalidSystem, line)
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, fmt.Errorf("%w: part %q: %v", ErrInvalidSystem, line, err)
		}
		p[i] = n
	}
	return p, nil
}

// BuildProcessor reads the workflows, a blank line, then the parts. It
// checks that every rule leads somewhere and that no part can be routed
// in a circle.
func BuildProcessor(r io.Reader) (*Processor, error) {
	blocks, err := aoc.Blocks(r)
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 || len(blocks) > 2 {
		return nil, fmt.Errorf("%w: want workflows and parts", ErrInvalidSystem)
	}
	p := &Processor{Workflows: make(map[string]Workflow, len(blocks[0]))}
	for _, line := range blocks[0] {
		w, err := ParseWorkflow(line)
		if err != nil {
			return nil, err
		}
		if _, dup := p.Workflows[w.Name]; dup {
			return nil, fmt.Errorf("%w: workflow %s defined twice", ErrInvalidSystem, w.Name)
		}
		p.Workflows[w.Name] = w
	}
	if len(blocks) == 2 {
		for _, line := range blocks[1] {
			part, err := ParsePart(line)
			if err != nil {
				return nil, err
			}
			p.Parts = append(p.Parts, part)
		}
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Processor) validate() error {
	if _, ok := p.Workflows[start]; !ok {
		return fmt.Errorf("%w: no %s workflow", ErrInvalidSystem, start)
	}
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(p.Workflows))
	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case visiting:
			return fmt.Errorf("%w: workflow %s is part of a cycle", ErrInvalidSystem, name)
		case done:
			return nil
		}
		state[name] = visiting
		for _, r := range p.Workflows[name].Rules {
			if r.Target == accept || r.Target == reject {
				continue
			}
			if _, ok := p.Workflows[r.Target]; !ok {
				return fmt.Errorf("%w: %s sends parts to unknown workflow %s", ErrInvalidSystem, name, r.Target)
			}
			if err := visit(r.Target); err != nil {
				return err
			}
		}
		state[name] = done
		return nil
	}
	for name := range p.Workflows {
		if err := visit(name); err != nil {
			return err
		}
	}
	return nil
}

// Accepts routes part through the workflows, starting at "in".
func (p *Processor) Accepts(part Part) bool {
	name := start
	for name != accept && name != reject {
		for _, r := range p.Workflows[name].Rules {
			if r.Matches(part) {
				name = r.Target
				break
			}
		}
	}
	return name == accept
}

// SumAccepted sums the ratings of the accepted parts.
func (p *Processor) SumAccepted() int {
	total := 0
	for _, part := range p.Parts {
		if p.Accepts(part) {
			total += part.Rating()
		}
	}
	return total
}

// box is an inclusive range of ratings per category.
type box [4][2]int

func (b box) volume() int {
	v := 1
	for _, r := range b {
		v *= r[1] - r[0] + 1
	}
	return v
}

// split divides b into the ratings matching r and the rest. Either may be
// empty.
func (b box) split(r Rule) (match box, rest box, okMatch, okRest bool) {
	match, rest = b, b
	lo, hi := b[r.Category][0], b[r.Category][1]
	switch r.Op {
	case '<':
		match[r.Category][1] = min(hi, r.Value-1)
		rest[r.Category][0] = max(lo, r.Value)
	case '>':
		match[r.Category][0] = max(lo, r.Value+1)
		rest[r.Category][1] = min(hi, r.Value)
	default:
		return b, b, true, false
	}
	okMatch = match[r.Category][0] <= match[r.Category][1]
	okRest = rest[r.Category][0] <= rest[r.Category][1]
	return match, rest, okMatch, okRest
}

// SumAcceptedCombinations counts the distinct parts with every rating in
// 1..4000 that would be accepted.
func (p *Processor) SumAcceptedCombinations() int {
	type item struct {
		name string
		b    box
	}
	var full box
	for i := range full {
		full[i] = [2]int{1, 4000}
	}
	var st aoc.Stack[item]
	st.Push(item{start, full})
	total := 0
	st.While(func(it item) bool {
		switch it.name {
		case accept:
			total += it.b.volume()
			return true
		case reject:
			return true
		}
		cur := it.b
		for _, r := range p.Workflows[it.name].Rules {
			match, rest, okMatch, okRest := cur.split(r)
			if okMatch {
				st.Push(item{r.Target, match})
			}
			if !okRest {
				break
			}
			cur = rest
		}
		return true
	})
	return total
}
