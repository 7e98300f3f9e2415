package cmd

import (
	"fmt"

	"github.com/corey/convertx/internal/app"
	"github.com/spf13/cobra"
)

func newTimeCmd() *cobra.Command {
	var human bool

	c := &cobra.Command{
		Use:               "time <seconds>",
		Short:             "Convert a number of seconds to a human-readable duration",
		Example:           "  convertx time 3661 --human-readable",
		Args:              usageArgs(cobra.ExactArgs(1)),
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCount(args[0])
			if err != nil {
				return newUsageError(cmd, err)
			}
			if !human {
				fmt.Fprintln(cmd.OutOrStdout(), "Please specify --human-readable. See --help.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.FormatSeconds(n))
			return nil
		},
	}

	c.Flags().BoolVarP(&human, "human-readable", "r", false, "Show as days, hours, minutes and seconds (e.g. 1h 13m 5s)")
	return c
}
