package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (a *app) parseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <fraction>",
		Short: "Parse and normalize a fraction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.fraction(args[0])
			if err != nil {
				return err
			}
			a.describe(cmd.OutOrStdout(), x)

			return nil
		},
	}
}

func (a *app) evalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <fraction>",
		Short: "Print the decimal value of a fraction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.fraction(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.formatValue(x.Float64()))

			return nil
		},
	}
}

func (a *app) convergentsCommand() *cobra.Command {
	var n int
	var exact, unfolded bool

	c := &cobra.Command{
		Use:   "convergents <fraction>",
		Short: "List the convergents p/q of a fraction",
		Long: `List the convergents p/q of a fraction.

Without -n every stored coefficient yields one convergent. A periodic
fraction accepts any -n: past the stored coefficients the index wraps
around to a0. --unfolded repeats only the period instead, which gives the
convergents of the infinite expansion (7/5, 17/12, … for sqrt:2).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.fraction(args[0])
			if err != nil {
				return err
			}

			last := x.Len() - 1
			if cmd.Flags().Changed("count") {
				last = n - 1
			}
			if last < 0 {
				return fmt.Errorf("count must be positive, got %d", n)
			}
			if x.IsFinite() && last >= x.Len() {
				last = x.Len() - 1
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("Convergents of "+x.String()))
			fmt.Fprintln(out, row(mutedStyle,
				column{"n", 4}, column{"p", 22}, column{"q", 22}, column{"value", 20}))

			if exact || unfolded {
				convergent := x.ConvergentRat
				if unfolded {
					convergent = x.UnfoldedConvergentRat
				}
				for i := 0; i <= last; i++ {
					r, err := convergent(i)
					if err != nil {
						return err
					}
					f, _ := r.Float64()
					fmt.Fprintln(out, row(plainStyle,
						column{strconv.Itoa(i), 4},
						column{r.Num().String(), 22},
						column{r.Denom().String(), 22},
						column{a.formatValue(f), 20}))
				}
				return nil
			}

			pairs, err := x.Convergents(last)
			for i, pq := range pairs {
				fmt.Fprintln(out, row(plainStyle,
					column{strconv.Itoa(i), 4},
					column{strconv.FormatInt(pq[0], 10), 22},
					column{strconv.FormatInt(pq[1], 10), 22},
					column{a.formatValue(float64(pq[0]) / float64(pq[1])), 20}))
			}
			if err != nil {
				a.logger.Warn("convergents stopped early", "listed", len(pairs), "err", err)
				return fmt.Errorf("%w (retry with --exact)", err)
			}

			return nil
		},
	}
	c.Flags().IntVarP(&n, "count", "n", 0, "number of convergents to list")
	c.Flags().BoolVar(&exact, "exact", false, "use arbitrary precision (reduced fractions)")
	c.Flags().BoolVar(&unfolded, "unfolded", false, "repeat the period only (implies --exact)")

	return c
}
