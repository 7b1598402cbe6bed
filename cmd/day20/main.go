package main

import (
	_ "embed"

	aoc "github.com/attilahorvath/advent-of-code-2023"
	"github.com/attilahorvath/advent-of-code-2023/day20"
)

func main() {
	aoc.Run(source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=11687500

broadcaster -> a
%a -> inv, con
&inv -> b
%b -> con
&con -> output
*/
func (s solver) D20p1() (any, error) {
	return day20.CountAllPulses(s.Reader(), 1000)
}

// D20p2 needs the conjunctions feeding the module in front of rx, which
// differ between inputs. They are read from the probes parameter.
func (s solver) D20p2() (any, error) {
	probes := []string{"ln", "db", "vq", "tf"}
	if err := s.Param("probes", &probes); err != nil {
		return nil, err
	}
	return day20.CountCycleLength(s.Reader(), probes)
}
