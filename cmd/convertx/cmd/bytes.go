package cmd

import (
	"fmt"

	"github.com/corey/convertx/internal/app"
	"github.com/spf13/cobra"
)

func newBytesCmd() *cobra.Command {
	var megabytes, human bool

	c := &cobra.Command{
		Use:               "bytes <count>",
		Short:             "Convert a byte count to megabytes or a human-readable size",
		Example:           "  convertx bytes 1048576 --megabytes\n  convertx bytes 1536 -r",
		Args:              usageArgs(cobra.ExactArgs(1)),
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCount(args[0])
			if err != nil {
				return newUsageError(cmd, err)
			}

			mode := app.BytesUnset
			switch {
			case megabytes:
				mode = app.BytesMegabytes
			case human:
				mode = app.BytesHuman
			}

			line, ok := app.FormatBytes(n, mode)
			if !ok {
				line = "Please specify --megabytes or --human-readable. See --help."
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}

	c.Flags().BoolVarP(&megabytes, "megabytes", "m", false, "Show the count in megabytes (1 MB = 1024² bytes)")
	c.Flags().BoolVarP(&human, "human-readable", "r", false, "Show the count scaled to B, KB, MB, GB, TB or PB")
	return c
}
