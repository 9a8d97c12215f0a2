// Package cli implements the hanoi command-line interface.
//
// The root command and "play" open the game window, "tui" plays in the
// terminal, "solve" prints an optimal solution and "stats" lists recorded
// games. Settings come from defaults, an optional --config file, flags and
// --set key=value overrides. --verbose switches logging to debug level;
// loggers travel through the command context.
package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"hanoi/internal/config"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// options is shared by every command.
type options struct {
	cfg       config.Config
	src       config.Source
	path      string
	overrides map[string]string
}

// Execute runs the CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &options{cfg: config.DefaultConfig()}

	root := &cobra.Command{
		Use:          "hanoi",
		Short:        "Tower of Hanoi with drag-and-drop disks",
		Long:         `Move every disk from the left rod to the right rod, one at a time, never placing a disk on a smaller one.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.src = config.Source{Path: opts.path, Flags: cmd.Flags(), Overrides: opts.overrides}
			cfg, err := opts.src.Resolve()
			if err != nil {
				return err
			}
			opts.cfg = cfg
			level := charmlog.InfoLevel
			if cfg.Verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("hanoi %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	flags := root.PersistentFlags()
	bound := config.DefaultConfig()
	bound.Bind(flags)
	flags.StringVarP(&opts.path, "config", "c", "", "config file (.toml, .yaml or .yml)")
	flags.StringToStringVar(&opts.overrides, "set", nil, "override settings, e.g. --set theme=mono")

	root.AddCommand(newPlayCmd(opts))
	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newSolveCmd())
	root.AddCommand(newStatsCmd(opts))

	return root
}
