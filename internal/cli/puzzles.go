package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/twisty"
)

var puzzlesCmd = &cobra.Command{
	Use:   "puzzles",
	Short: "List puzzle variants and their moves",
	Args:  cobra.NoArgs,
	RunE:  runPuzzles,
}

func init() {
	rootCmd.AddCommand(puzzlesCmd)
}

func runPuzzles(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	for _, name := range twisty.Variants() {
		def, err := twisty.Lookup(name)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", name, err)
		}

		marker := " "
		if name == settings.Puzzle {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-16s %2d positions\n", marker, name, len(def.SolvedState()))
		fmt.Fprintf(out, "    moves: %s\n", strings.Join(def.MoveNames(), " "))
	}

	return nil
}
