// twisty - explore twisty puzzles as permutation groups.
package main

import (
	"github.com/SeamusWaldron/twisty/internal/cli"
)

func main() {
	cli.Execute()
}
