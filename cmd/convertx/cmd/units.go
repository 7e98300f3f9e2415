package cmd

import (
	"fmt"

	"github.com/corey/convertx/internal/domain/units"
	"github.com/spf13/cobra"
)

func newUnitsCmd(st *state) *cobra.Command {
	names := make([]string, 0, units.CategoryTotal)
	for _, c := range units.Categories() {
		names = append(names, c.String())
	}

	return &cobra.Command{
		Use:               "units [category]",
		Short:             "List the unit tokens each category accepts",
		Long:              "Lists every category with its unit tokens in declaration order. The canonical unit is starred.",
		Args:              usageArgs(cobra.MaximumNArgs(1)),
		ValidArgsFunction: cobra.FixedCompletions(names, cobra.ShellCompDirectiveNoFileComp),
		RunE: func(cmd *cobra.Command, args []string) error {
			list := units.Categories()
			if len(args) == 1 {
				c, err := units.ParseCategory(args[0])
				if err != nil {
					return newUsageError(cmd, err)
				}
				list = []units.Category{c}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatUnitList(list, resolveColor(st.cfg.Color)))
			return nil
		},
	}
}
