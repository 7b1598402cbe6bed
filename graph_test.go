package aoc

import "testing"

func TestCollapse(t *testing.T) {
	// a - b - c - d, with b and c only on the corridor.
	var g Graph[string]
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "c", 2)
	g.AddEdge("c", "d", 3)
	g.AddEdge("d", "e", 1)
	g.Collapse("d")

	if len(g.Nodes) != 3 {
		t.Fatalf("nodes after collapse = %v, want a, d, e", g.Nodes)
	}
	if got := g.Edges["a"]["d"]; got != 6 {
		t.Errorf("a-d = %v, want 6", got)
	}
}

func TestLongestPath(t *testing.T) {
	tests := []struct {
		name  string
		edges [][3]int
		arcs  bool
		want  int
		ok    bool
	}{
		{
			name: "diamond",
			edges: [][3]int{
				{0, 1, 1}, {0, 2, 5}, {1, 3, 1}, {2, 3, 1}, {1, 2, 1},
			},
			want: 7, // 0-1-2-3 is 3, 0-2-1-3 is 7
			ok:   true,
		},
		{
			name:  "directed",
			edges: [][3]int{{0, 1, 2}, {1, 2, 2}, {2, 0, 10}},
			arcs:  true,
			want:  4,
			ok:    true,
		},
		{
			name:  "unreachable",
			edges: [][3]int{{0, 1, 1}, {3, 2, 1}},
			arcs:  true,
			ok:    false,
		},
	}
	for _, tt := range tests {
		var g Graph[int]
		for _, e := range tt.edges {
			if tt.arcs {
				g.AddArc(e[0], e[1], e[2])
			} else {
				g.AddEdge(e[0], e[1], e[2])
			}
		}
		end := 3
		if tt.arcs && tt.ok {
			end = 2
		}
		got, ok := g.LongestPath(0, end)
		if got != tt.want || ok != tt.ok {
			t.Errorf("%s: LongestPath = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestToGraph(t *testing.T) {
	g := Grid[byte]{
		[]byte("#.###"),
		[]byte("#...#"),
		[]byte("#.#.#"),
		[]byte("#...#"),
		[]byte("###.#"),
	}
	gr := g.ToGraph(Pt{1, 0}, false, func(c byte) bool { return c == '#' })
	got, ok := gr.LongestPath(Pt{1, 0}, Pt{3, 4})
	if !ok || got != 6 {
		t.Errorf("LongestPath = %v, %v; want 6, true", got, ok)
	}
	if len(gr.Nodes) != 2 {
		t.Errorf("collapsed graph has %d nodes, want 2", len(gr.Nodes))
	}
}

func TestToGraphKeep(t *testing.T) {
	g := Grid[byte]{[]byte("#.#"), []byte("#.#"), []byte("#.#")}
	disallowed := func(c byte) bool { return c == '#' }

	gr := g.ToGraph(Pt{1, 0}, false, disallowed)
	if got, ok := gr.LongestPath(Pt{1, 0}, Pt{1, 2}); !ok || got != 2 {
		t.Errorf("corridor LongestPath = %v, %v; want 2, true", got, ok)
	}

	// The middle cell has two neighbors and only survives if kept.
	gr = g.ToGraph(Pt{1, 0}, false, disallowed)
	if _, ok := gr.LongestPath(Pt{1, 0}, Pt{1, 1}); ok {
		t.Errorf("collapsed middle cell is still reachable")
	}
	gr = g.ToGraph(Pt{1, 0}, false, disallowed, Pt{1, 1})
	if got, ok := gr.LongestPath(Pt{1, 0}, Pt{1, 1}); !ok || got != 1 {
		t.Errorf("kept LongestPath = %v, %v; want 1, true", got, ok)
	}
}
