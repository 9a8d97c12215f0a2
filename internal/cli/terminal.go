package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"hanoi/internal/theme"
	"hanoi/internal/tui"
)

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Play in the terminal",
		Long:  `Play in the terminal. Press on a rod column and release over another to move a disk, or use 1, 2 and 3.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			ctrl, closeFn, err := newController(opts.cfg, logger)
			if err != nil {
				return err
			}
			defer closeFn()

			th, ok := theme.Lookup(opts.cfg.Theme)
			if !ok {
				th = theme.Default()
			}
			p := tea.NewProgram(
				tui.New(ctrl, th, opts.cfg.AutoplayTPS),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(ctx),
			)
			if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
				return err
			}
			return nil
		},
	}
}
