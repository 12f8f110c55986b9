package perm

import (
	"strconv"
	"strings"
)

// CyclesString formats the cycles as nested lists, e.g.
// "[[1, 4, 3, 2], [13, 42, 31, 24]]". The identity prints as "[]".
func (p Permutation) CyclesString() string {
	cycles := p.Cycles()
	parts := make([]string, len(cycles))
	for i, cycle := range cycles {
		parts[i] = formatInts(cycle)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// OneLineString formats the stored one-line array, e.g. "[0, 4, 1, 2, 3]".
func (p Permutation) OneLineString() string {
	return formatInts(p.oneLine)
}

func formatInts(values []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')
	return b.String()
}
