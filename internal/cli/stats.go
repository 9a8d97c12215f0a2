package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"hanoi/internal/hanoi"
	"hanoi/internal/store"
)

func newStatsCmd(opts *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show recorded games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(opts.cfg.DBPath)
			if err != nil {
				return err
			}
			defer st.Close()

			recent, err := st.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			best := map[int]store.Record{}
			for n := hanoi.MinDisks; n <= hanoi.MaxDisks; n++ {
				rec, ok, err := st.Best(cmd.Context(), n)
				if err != nil {
					return err
				}
				if ok {
					best[n] = rec
				}
			}
			renderStats(cmd.OutOrStdout(), recent, best)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "number of recent games to list")
	return cmd
}

func renderStats(w io.Writer, recent []store.Record, best map[int]store.Record) {
	if len(recent) == 0 {
		printInfo(w, "No games recorded yet.")
		return
	}

	printTitle(w, "Recent games")
	rows := make([][]string, 0, len(recent))
	for _, rec := range recent {
		rows = append(rows, []string{
			rec.StartedAt.Local().Format("2006-01-02 15:04"),
			strconv.Itoa(rec.Disks),
			fmt.Sprintf("%d / %d", rec.Moves, rec.MaxMoves),
			string(rec.Result),
			rec.Duration.Round(time.Second).String(),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Started", "Disks", "Moves", "Result", "Time").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col != 3 || row < 0 || row >= len(recent) {
				return lipgloss.NewStyle()
			}
			switch recent[row].Result {
			case store.ResultWon:
				return styleSuccess
			case store.ResultLost:
				return styleError
			default:
				return styleWarning
			}
		})
	fmt.Fprintln(w, t.Render())

	if len(best) == 0 {
		return
	}
	fmt.Fprintln(w)
	printTitle(w, "Best wins")
	for n := hanoi.MinDisks; n <= hanoi.MaxDisks; n++ {
		rec, ok := best[n]
		if !ok {
			continue
		}
		label := fmt.Sprintf("%d disks", n)
		if n == 1 {
			label = "1 disk"
		}
		printKeyValue(w, label, fmt.Sprintf("%d moves in %s", rec.Moves, rec.Duration.Round(time.Second)))
	}
}
