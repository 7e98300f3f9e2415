// convertx is a multi-purpose unit converter.
// One subcommand per quantity: convertx <category> <value> --from U --to U.
package main

import (
	"os"

	"github.com/corey/convertx/cmd/convertx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		cmd.Report(os.Stderr, err)
		os.Exit(cmd.ExitCode(err))
	}
}
