package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"hanoi/internal/hanoi"
	"hanoi/internal/solver"
)

func newSolveCmd() *cobra.Command {
	var from, to int
	var count bool

	cmd := &cobra.Command{
		Use:   "solve [disks]",
		Short: "Print the optimal solution",
		Long:  `Print the 2^n-1 moves that carry n disks between two rods. Rods are numbered 1 to 3.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 3
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("disks: %w", err)
				}
				n = v
			}
			return runSolve(cmd.OutOrStdout(), n, from, to, count)
		},
	}

	cmd.Flags().IntVar(&from, "from", 1, "source rod (1-3)")
	cmd.Flags().IntVar(&to, "to", 3, "target rod (1-3)")
	cmd.Flags().BoolVar(&count, "count", false, "print only the number of moves")
	return cmd
}

func runSolve(w io.Writer, n, from, to int, count bool) error {
	if n < hanoi.MinDisks || n > hanoi.MaxDisks {
		return fmt.Errorf("%w: %d not in [%d, %d]", hanoi.ErrDiskCount, n, hanoi.MinDisks, hanoi.MaxDisks)
	}
	if from < 1 || from > hanoi.RodCount || to < 1 || to > hanoi.RodCount {
		return fmt.Errorf("%w: rods are numbered 1 to %d", hanoi.ErrRod, hanoi.RodCount)
	}
	if from == to {
		return fmt.Errorf("source and target rod are both %d", from)
	}

	plan := solver.Plan(n, from-1, to-1)
	if count {
		fmt.Fprintln(w, len(plan))
		return nil
	}

	printTitle(w, "%d disks, rod %d %s rod %d", n, from, iconArrow, to)
	printInfo(w, "%s moves", styleNumber.Render(strconv.Itoa(len(plan))))
	width := len(strconv.Itoa(len(plan)))
	for i, m := range plan {
		fmt.Fprintf(w, "%s %s\n", styleDim.Render(fmt.Sprintf("%*d.", width, i+1)), m)
	}
	return nil
}
