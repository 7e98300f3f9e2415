package cmd

import (
	"log/slog"

	"github.com/corey/convertx/internal/config"
	"github.com/corey/convertx/internal/ctxlog"
	"github.com/spf13/cobra"
)

const rootLong = `Multi-purpose unit converter.

Every quantity has its own subcommand. Values are routed through the
category's canonical unit, so any pair of units in a category converts.

Examples:
  convertx length 1 --from kilometers --to feet
  convertx temperature 100 -f f -t c
  convertx bytes 1048576 --megabytes
  convertx time 3661 --human-readable
  convertx units pressure

Negative values go after "--":
  convertx temperature -f c -t f -- -40`

// state is shared by the commands of one tree.
type state struct {
	cfg *config.Config
}

// newRootCmd builds a fresh command tree. Flag values live in closures, so
// every tree starts from defaults.
func newRootCmd() *cobra.Command {
	st := &state{}

	root := &cobra.Command{
		Use:           "convertx",
		Short:         "Multi-purpose unit converter",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Root().PersistentFlags())
			if err != nil {
				return newUsageError(cmd, err)
			}
			st.cfg = cfg

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel}))
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
			logger.Debug("command start", "cmd", cmd.CommandPath(), "args", args)
			return nil
		},
	}
	config.RegisterFlags(root.PersistentFlags())
	_ = root.RegisterFlagCompletionFunc(config.KeyLogLevel,
		cobra.FixedCompletions([]string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp))
	_ = root.RegisterFlagCompletionFunc(config.KeyColor,
		cobra.FixedCompletions([]string{"auto", "always", "never"}, cobra.ShellCompDirectiveNoFileComp))

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return newUsageError(cmd, err)
	})

	root.AddCommand(categoryCommands()...)
	root.AddCommand(newBytesCmd())
	root.AddCommand(newTimeCmd())
	root.AddCommand(newUnitsCmd(st))
	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}
