package dimacs

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteSolution writes a coloring in the "SOL: <k> = {...}" format the
// original source's solver emits on success: k is the number of colors,
// followed by each color class as a brace-enclosed, comma-separated,
// 1-based (DIMACS convention) vertex list.
func WriteSolution(w io.Writer, classes [][]int) error {
	if _, err := fmt.Fprintf(w, "SOL: %d =", len(classes)); err != nil {
		return err
	}
	for _, class := range classes {
		parts := make([]string, len(class))
		for i, v := range class {
			parts[i] = strconv.Itoa(v + 1)
		}
		if _, err := fmt.Fprintf(w, " {%s}", strings.Join(parts, ",")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
