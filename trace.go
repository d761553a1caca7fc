package scatter

import (
	"fmt"
	"strings"
)

// formatPoints renders points as a tuple list in insertion order,
// e.g. [(70, 14), (67, 18)].
func formatPoints(points []Point) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range points {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "(%d, %d)", p.X, p.Y)
	}
	b.WriteByte(']')
	return b.String()
}
