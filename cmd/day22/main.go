package main

import (
	_ "embed"

	aoc "github.com/attilahorvath/advent-of-code-2023"
	"github.com/attilahorvath/advent-of-code-2023/day22"
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
want=5

1,0,1~1,2,1
0,0,2~2,0,2
0,2,3~2,2,3
0,0,4~0,2,4
2,0,5~2,2,5
0,1,6~2,1,6
1,1,8~1,1,9
*/
func (s solver) D22p1() (any, error) {
	snap, err := day22.BuildSnapshot(s.Reader())
	if err != nil {
		return nil, err
	}
	return snap.SafeToDisintegrate(), nil
}

// want=7
func (s solver) D22p2() (any, error) {
	snap, err := day22.BuildSnapshot(s.Reader())
	if err != nil {
		return nil, err
	}
	return snap.WouldFall(), nil
}
