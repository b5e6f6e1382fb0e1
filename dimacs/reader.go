package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/bcp/graph"
)

type rawEdge struct{ a, b int }

// Parse reads a DIMACS-format graph from r and returns the resulting
// Graph. Vertex numbering in the source file (0- or 1-based) is inferred
// and normalized to Go's 0-based convention.
func Parse(r io.Reader) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	n := -1
	var edges []rawEdge

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "p":
			if len(fields) < 4 {
				return nil, fmt.Errorf("dimacs: problem line %q: %w", line, ErrMalformedLine)
			}
			parsed, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("dimacs: problem line %q: %w", line, ErrMalformedLine)
			}
			n = parsed
		case "e":
			if len(fields) < 3 {
				return nil, fmt.Errorf("dimacs: edge line %q: %w", line, ErrMalformedLine)
			}
			a, err1 := strconv.Atoi(fields[1])
			b, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("dimacs: edge line %q: %w", line, ErrMalformedLine)
			}
			edges = append(edges, rawEdge{a, b})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: scanning input: %w", err)
	}
	if n < 0 {
		return nil, ErrMissingProblemLine
	}

	offset := inferOffset(edges)
	g := graph.NewGraph(n)
	for _, e := range edges {
		u, v := e.a-offset, e.b-offset
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("dimacs: edge (%d,%d): %w", e.a, e.b, ErrVertexOutOfRange)
		}
		g.AddEdge(u, v)
	}
	return g, nil
}

// inferOffset returns 1 if every edge endpoint is >= 1 and at least one
// endpoint equals the overall minimum > 0 (standard 1-based DIMACS
// numbering), or 0 if any endpoint is 0 (already 0-based). An edgeless file
// defaults to 1-based, the conventional DIMACS numbering.
func inferOffset(edges []rawEdge) int {
	min := -1
	for _, e := range edges {
		for _, x := range [2]int{e.a, e.b} {
			if min == -1 || x < min {
				min = x
			}
		}
	}
	if min == 0 {
		return 0
	}
	return 1
}
