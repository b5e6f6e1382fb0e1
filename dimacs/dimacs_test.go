package dimacs

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseOneBasedTriangle(t *testing.T) {
	src := "c a comment\np edge 3 3\ne 1 2\ne 2 3\ne 1 3\n"
	g, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if g.N() != 3 {
		t.Fatalf("N() = %d, want 3", g.N())
	}
	if !g.Adjacent(0, 1) || !g.Adjacent(1, 2) || !g.Adjacent(0, 2) {
		t.Fatalf("1-based edges did not normalize to 0-based triangle")
	}
}

func TestParseZeroBasedGraph(t *testing.T) {
	src := "p edge 3 2\ne 0 1\ne 1 2\n"
	g, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if !g.Adjacent(0, 1) || !g.Adjacent(1, 2) {
		t.Fatalf("0-based edges not preserved")
	}
	if g.Adjacent(0, 2) {
		t.Fatalf("unexpected edge (0,2)")
	}
}

func TestParseMissingProblemLine(t *testing.T) {
	_, err := Parse(strings.NewReader("e 1 2\n"))
	if err != ErrMissingProblemLine {
		t.Fatalf("err = %v, want ErrMissingProblemLine", err)
	}
}

func TestParseMalformedEdgeLine(t *testing.T) {
	_, err := Parse(strings.NewReader("p edge 2 1\ne 1\n"))
	if err == nil {
		t.Fatalf("expected an error for malformed edge line")
	}
}

func TestParseOutOfRangeVertex(t *testing.T) {
	_, err := Parse(strings.NewReader("p edge 2 1\ne 1 5\n"))
	if err == nil {
		t.Fatalf("expected ErrVertexOutOfRange")
	}
}

func TestWriteSolutionFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSolution(&buf, [][]int{{0, 2}, {1}}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	want := "SOL: 2 = {1,3} {2}\n"
	if got != want {
		t.Fatalf("WriteSolution = %q, want %q", got, want)
	}
}
