package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/corey/convertx/internal/app"
	"github.com/corey/convertx/internal/domain/units"
	"github.com/spf13/cobra"
)

// unitFlag is a pflag.Value restricted to one category's tokens, so a bad
// --from/--to is rejected while flags are parsed, before anything converts.
type unitFlag[U ~uint8] struct {
	units *units.Set[U]
	unit  U
	set   bool
}

// newUnitFlag returns a flag preset to def, or unset when def is empty.
func newUnitFlag[U ~uint8](set *units.Set[U], def string) *unitFlag[U] {
	f := &unitFlag[U]{units: set}
	if def != "" {
		if err := f.Set(def); err != nil {
			panic(fmt.Sprintf("%s: bad default unit: %v", set.Category(), err))
		}
	}
	return f
}

func (f *unitFlag[U]) String() string {
	if !f.set {
		return ""
	}
	return f.units.Token(f.unit)
}

func (f *unitFlag[U]) Set(s string) error {
	u, err := f.units.Parse(s)
	if err != nil {
		return err
	}
	f.unit, f.set = u, true
	return nil
}

func (f *unitFlag[U]) Type() string { return "unit" }

// category describes one conversion subcommand.
type category[U ~uint8] struct {
	short     string
	converter app.Converter[U]
	// Default tokens. Empty means the flag must be given.
	from, to string
}

func newCategoryCmd[U ~uint8](cat category[U]) *cobra.Command {
	set := cat.converter.Units
	name := set.Category().String()
	tokens := set.Variants()

	from := newUnitFlag(set, cat.from)
	to := newUnitFlag(set, cat.to)

	exampleTo := tokens[len(tokens)-1]
	c := &cobra.Command{
		Use:               name + " <value>",
		Short:             cat.short,
		Example:           fmt.Sprintf("  convertx %s 1 --from %s --to %s", name, tokens[0], exampleTo),
		Args:              usageArgs(cobra.ExactArgs(1)),
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !from.set {
				return missingUnit(cmd, "from", tokens)
			}
			if !to.set {
				return missingUnit(cmd, "to", tokens)
			}

			value, err := parseValue(args[0])
			if err != nil {
				return newUsageError(cmd, err)
			}

			req := app.Request[U]{Value: value, From: from.unit, To: to.unit}
			fmt.Fprintln(cmd.OutOrStdout(), cat.converter.Run(cmd.Context(), req))
			return nil
		},
	}

	choices := strings.Join(tokens, "|")
	c.Flags().VarP(from, "from", "f", flagUsage("Unit to convert from", choices, cat.from))
	c.Flags().VarP(to, "to", "t", flagUsage("Unit to convert to", choices, cat.to))
	complete := cobra.FixedCompletions(tokens, cobra.ShellCompDirectiveNoFileComp)
	_ = c.RegisterFlagCompletionFunc("from", complete)
	_ = c.RegisterFlagCompletionFunc("to", complete)
	return c
}

func missingUnit(cmd *cobra.Command, flag string, tokens []string) error {
	return usageErrorf(cmd, "required flag --%s not set (valid: %s)", flag, strings.Join(tokens, ", "))
}

func flagUsage(what, choices, def string) string {
	if def == "" {
		return fmt.Sprintf("%s, required (%s)", what, choices)
	}
	return fmt.Sprintf("%s (%s)", what, choices)
}

// parseValue accepts any finite float.
func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid value %q: expected a finite number", s)
	}
	return v, nil
}

// parseCount accepts a non-negative integer.
func parseCount(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid count %q: expected a non-negative integer", s)
	}
	return n, nil
}
