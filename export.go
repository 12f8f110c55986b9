package twisty

import (
	"bufio"
	"fmt"
	"io"
)

// ExportState writes the current state as a Go State literal, grouped by
// face, so a reached position can be pasted back in as a start preset.
//
//	twisty.State{
//		// f
//		1: 1,
//		...
//	}
func (p *Puzzle) ExportState(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "twisty.State{")
	lastFace := ""
	for _, pos := range p.current.Positions() {
		if face := p.def.FaceName(pos); face != lastFace {
			fmt.Fprintf(bw, "\t// %s\n", face)
			lastFace = face
		}
		fmt.Fprintf(bw, "\t%d: %d,\n", pos, p.current[pos])
	}
	fmt.Fprintln(bw, "}")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to export state: %w", err)
	}
	return nil
}
