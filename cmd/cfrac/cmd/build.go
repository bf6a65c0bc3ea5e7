package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/contfrac/cf"
)

func (a *app) rationalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rational <num> <den>",
		Short: "Expand num/den with the Euclidean algorithm",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			num, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("numerator: %w", err)
			}
			den, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("denominator: %w", err)
			}
			x, err := cf.FromRational(num, den)
			if err != nil {
				return err
			}
			if g := cf.GCD(num, den); g > 1 {
				a.logger.Debug("fraction is not in lowest terms", "gcd", g)
			}
			a.describe(cmd.OutOrStdout(), x)

			return nil
		},
	}
}

func (a *app) floatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "float <x>",
		Short: "Expand a decimal number up to --terms coefficients",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return err
			}
			x, err := cf.FromFloat64(v, a.cfg.MaxTerms)
			if err != nil {
				return err
			}
			a.describe(cmd.OutOrStdout(), x)

			return nil
		},
	}
}

func (a *app) sqrtCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sqrt <n>",
		Short: "Periodic expansion of the square root of n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			x, err := cf.Sqrt(n, a.cfg.MaxTerms)
			if err != nil {
				return err
			}
			a.describe(cmd.OutOrStdout(), x)

			return nil
		},
	}
}

func (a *app) eCommand() *cobra.Command {
	var raw bool

	c := &cobra.Command{
		Use:   "e",
		Short: "Euler's number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if raw {
				fmt.Fprintln(cmd.OutOrStdout(), cf.ETerms(a.cfg.MaxTerms))
				return nil
			}
			a.describe(cmd.OutOrStdout(), cf.E(a.cfg.MaxTerms))

			return nil
		},
	}
	c.Flags().BoolVar(&raw, "raw", false, "print the unnormalized pattern [2; 1, 2, 1, 1, 4, ...]")

	return c
}

func (a *app) piCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pi",
		Short: "Expansion of pi from its float64 value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.describe(cmd.OutOrStdout(), cf.Pi(a.cfg.MaxTerms))
			return nil
		},
	}
}
