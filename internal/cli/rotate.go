package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/twisty/pkg/perm"
)

var (
	rotateEach   bool
	rotateExport bool
)

var rotateCmd = &cobra.Command{
	Use:   "rotate <moves...>",
	Short: "Apply a move sequence and print the puzzle",
	Long: `Apply a move sequence to the selected puzzle and print its net.

Moves are separated by spaces. A trailing ' applies the inverse and a
trailing 2 applies the move twice.

Examples:
  twisty rotate f r u
  twisty rotate "f r' u2" --each
  twisty rotate a_tech_right --export`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRotate,
}

var cyclesCmd = &cobra.Command{
	Use:   "cycles <moves...>",
	Short: "Print the cycle structure of a move sequence",
	Long: `Compose the named moves into one permutation and print its label,
cycle notation, one-line form and order.

Example:
  twisty cycles f di fi di ri d r`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCycles,
}

var exportCmd = &cobra.Command{
	Use:   "export [moves...]",
	Short: "Print the facelet map after a move sequence",
	Long: `Print the state reached after the moves as a twisty.State literal,
ready to paste into a puzzle definition as a start preset.`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(rotateCmd)
	rotateCmd.Flags().BoolVar(&rotateEach, "each", false, "Print the puzzle after every move")
	rotateCmd.Flags().BoolVar(&rotateExport, "export", false, "Also print the final state literal")

	rootCmd.AddCommand(cyclesCmd)
	rootCmd.AddCommand(exportCmd)
}

func runRotate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	names, err := parseMoves(args)
	if err != nil {
		return err
	}

	p, err := newPuzzle()
	if err != nil {
		return err
	}

	for _, name := range names {
		if err := p.Rotate(name); err != nil {
			return fmt.Errorf("failed to rotate: %w", err)
		}
		if rotateEach {
			if err := p.Render(out); err != nil {
				return err
			}
		}
	}

	if !rotateEach {
		if err := p.Render(out); err != nil {
			return err
		}
	}

	if rotateExport {
		fmt.Fprintln(out)
		return p.ExportState(out)
	}
	return nil
}

func runCycles(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	names, err := parseMoves(args)
	if err != nil {
		return err
	}

	p, err := newPuzzle()
	if err != nil {
		return err
	}

	moves := make([]perm.Permutation, len(names))
	for i, name := range names {
		moves[i], err = p.Definition().Permutation(name)
		if err != nil {
			return err
		}
	}
	composed := perm.ComposeN(moves...)

	fmt.Fprintf(out, "Label    : %s\n", composed.Label())
	fmt.Fprintf(out, "Cycles   : %s\n", composed.CyclesString())
	fmt.Fprintf(out, "One-line : %s\n", composed.OneLineString())
	fmt.Fprintf(out, "Order    : %d\n", composed.Order())
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	names, err := parseMoves(args)
	if err != nil {
		return err
	}

	p, err := newPuzzle()
	if err != nil {
		return err
	}

	if err := p.RotateMany(names...); err != nil {
		return fmt.Errorf("failed to rotate: %w", err)
	}
	return p.ExportState(cmd.OutOrStdout())
}
