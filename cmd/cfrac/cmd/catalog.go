package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/contfrac/catalog"
)

// withStore opens the configured catalog for the duration of fn.
func (a *app) withStore(cmd *cobra.Command, fn func(*catalog.Store) error) error {
	a.logger.Debug("opening catalog", "path", a.cfg.CatalogPath)
	store, err := catalog.Open(cmd.Context(), a.cfg.CatalogPath)
	if err != nil {
		return err
	}
	defer store.Close()

	return fn(store)
}

func (a *app) saveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save <name> <fraction>",
		Short: "Store a fraction in the catalog under a name",
		Example: `  cfrac save golden "[1; 1]"
  cfrac save root7 sqrt:7`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.fraction(args[1])
			if err != nil {
				return err
			}

			return a.withStore(cmd, func(s *catalog.Store) error {
				e, err := s.Put(cmd.Context(), args[0], x)
				if err != nil {
					return err
				}
				a.logger.Info("fraction saved", "name", e.Name, "id", e.ID)
				fmt.Fprintf(cmd.OutOrStdout(), "saved %s = %s\n", titleStyle.Render(e.Name), e.Text)

				return nil
			})
		},
	}
}

func (a *app) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a stored fraction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(s *catalog.Store) error {
				e, err := s.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, titleStyle.Render(e.Name))
				a.describe(out, e.Fraction)
				fmt.Fprintln(out, mutedStyle.Render("  id:       "+e.ID))
				fmt.Fprintln(out, mutedStyle.Render("  updated:  "+e.UpdatedAt.Format(time.RFC3339)))

				return nil
			})
		},
	}
}

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(cmd, func(s *catalog.Store) error {
				entries, err := s.List(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, mutedStyle.Render("catalog is empty"))
					return nil
				}
				fmt.Fprintln(out, row(mutedStyle,
					column{"NAME", 16}, column{"VALUE", 22}, column{"FRACTION", 40}))
				for _, e := range entries {
					fmt.Fprintln(out, row(plainStyle,
						column{e.Name, 16},
						column{a.formatValue(e.Value), 22},
						column{e.Text, 40}))
				}

				return nil
			})
		},
	}
}

func (a *app) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Remove a fraction from the catalog",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(s *catalog.Store) error {
				if err := s.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])

				return nil
			})
		},
	}
}
