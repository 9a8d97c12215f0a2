package cli

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"hanoi/internal/app"
	"hanoi/internal/config"
	"hanoi/internal/hanoi"
	"hanoi/internal/store"
)

// newGame builds a game from the configuration.
func newGame(cfg config.Config) (*hanoi.Game, error) {
	opts := []hanoi.Option{hanoi.WithMoveLimit(cfg.MoveLimit)}
	if cfg.Scramble {
		opts = append(opts, hanoi.WithScramble(cfg.Seed))
	}
	return hanoi.New(cfg.Disks, opts...)
}

// newController wires a game to the history database. A database that cannot
// be opened only disables history. The returned func records an unfinished
// game and closes the database.
func newController(cfg config.Config, logger *log.Logger) (*app.Controller, func(), error) {
	g, err := newGame(cfg)
	if err != nil {
		return nil, nil, err
	}

	var history app.History
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("game history disabled", "path", cfg.DBPath, "err", err)
	} else {
		history = st
		logger.Debug("game history", "path", cfg.DBPath)
	}

	ctrl := app.NewController(g, logger, history)
	closeFn := func() {
		ctrl.Close()
		if st != nil {
			if err := st.Close(); err != nil {
				logger.Warn("close history", "err", err)
			}
		}
	}
	return ctrl, closeFn, nil
}

// diskCountGiven reports whether the disk count was chosen on the command line.
func diskCountGiven(cmd *cobra.Command, opts *options) bool {
	if cmd.Flags().Changed("disks") {
		return true
	}
	for key := range opts.overrides {
		if key == "disks" {
			return true
		}
	}
	return false
}

func newPlayCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Open the game window",
		Long:  `Open the game window. Drag the top disk of a rod onto another rod; R resets, H shows a hint, A toggles autoplay, Q quits.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}
}

func runPlay(cmd *cobra.Command, opts *options) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	ctrl, closeFn, err := newController(opts.cfg, logger)
	if err != nil {
		return err
	}
	defer closeFn()

	if opts.cfg.Prompt && !diskCountGiven(cmd, opts) {
		ctrl.AskDiskCount()
	}
	err = app.Run(ctx, opts.src, opts.cfg, ctrl, logger)
	if errors.Is(err, app.ErrNoGUI) {
		printInfo(cmd.ErrOrStderr(), "try %s for the terminal version", styleTitle.Render("hanoi tui"))
	}
	return err
}
