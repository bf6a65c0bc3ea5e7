package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/contfrac/cf"
)

// operators maps calc's operator argument to the arithmetic methods.
var operators = map[string]func(x, y *cf.ContinuedFraction) (*cf.ContinuedFraction, error){
	"+": (*cf.ContinuedFraction).Add,
	"-": (*cf.ContinuedFraction).Sub,
	"*": (*cf.ContinuedFraction).Mul,
	"x": (*cf.ContinuedFraction).Mul,
	"/": (*cf.ContinuedFraction).Quo,
}

func (a *app) calcCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <a> <op> <b>",
		Short: "Add, subtract, multiply or divide two fractions",
		Long: `Add, subtract, multiply or divide two fractions.

The operator is one of + - * x /. The result is computed in float64 and
expanded again, so it is an approximation with at most 20 coefficients.`,
		Example: `  cfrac calc "[1; 2]" + "[2; 4]"
  cfrac calc 3/4 / 1/8`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := operators[args[1]]
			if !ok {
				return fmt.Errorf("unknown operator %q", args[1])
			}
			x, err := a.fraction(args[0])
			if err != nil {
				return err
			}
			y, err := a.fraction(args[2])
			if err != nil {
				return err
			}

			r, err := op(x, y)
			if err != nil {
				return err
			}
			a.logger.Debug("calc", "a", x.String(), "op", args[1], "b", y.String(), "result", r.String())
			a.describe(cmd.OutOrStdout(), r)

			return nil
		},
	}
}

func (a *app) compareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two fractions by value and by structure",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.fraction(args[0])
			if err != nil {
				return err
			}
			y, err := a.fraction(args[1])
			if err != nil {
				return err
			}

			rel := "=="
			switch x.Cmp(y) {
			case -1:
				rel = "<"
			case 1:
				rel = ">"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s %s\n", x, rel, y)
			fmt.Fprintf(out, "  identical:    %s\n", yesNo(x.Equal(y)))
			fmt.Fprintf(out, "  approx equal: %s\n", yesNo(cf.ApproxEqual(x, y, a.cfg.Epsilon)))

			return nil
		},
	}
}

func yesNo(b bool) string {
	if b {
		return valueStyle.Render("yes")
	}

	return falseStyle.Render("no")
}
