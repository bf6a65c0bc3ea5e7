// Package cmd holds the cobra command tree of cfrac.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/contfrac/cf"
	"github.com/katalvlaran/contfrac/config"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfgFile string
	verbose bool
	terms   int
	dbPath  string

	cfg    config.Config
	logger *slog.Logger
}

// Execute runs the command line against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "cfrac",
		Short: "Continued fractions from the command line",
		Long: `cfrac builds, inspects and stores continued fractions.

Fractions are given as "[a0; a1, a2]", as "p/q", as a decimal number, or
by name: "e", "pi" and "sqrt:n". Periodic fractions are printed as
"[a0; (p1, p2)]" but cannot be typed in that form; write "sqrt:n" instead,
or keep them in the catalog with "cfrac save".`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (TOML or YAML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().IntVarP(&a.terms, "terms", "t", cf.DefaultMaxTerms, "maximum number of terms for generated fractions")
	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "catalog database (overrides catalog_path)")

	root.AddCommand(
		a.parseCommand(),
		a.evalCommand(),
		a.convergentsCommand(),
		a.rationalCommand(),
		a.floatCommand(),
		a.sqrtCommand(),
		a.eCommand(),
		a.piCommand(),
		a.calcCommand(),
		a.compareCommand(),
		a.saveCommand(),
		a.showCommand(),
		a.listCommand(),
		a.deleteCommand(),
		versionCommand(),
	)

	return root
}

// setup loads the configuration and applies flag overrides.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("terms") {
		cfg.MaxTerms = a.terms
	}
	if a.dbPath != "" {
		cfg.CatalogPath = a.dbPath
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.logger.Debug("configuration loaded",
		"file", a.cfgFile,
		"max_terms", cfg.MaxTerms,
		"epsilon", cfg.Epsilon,
		"catalog", cfg.CatalogPath)

	return nil
}

// fraction reads a command-line operand: "[a0; a1]", "p/q", "sqrt:n", "e",
// "pi", an integer or a decimal number.
func (a *app) fraction(s string) (*cf.ContinuedFraction, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "e":
		return cf.E(a.cfg.MaxTerms), nil

	case s == "pi":
		return cf.Pi(a.cfg.MaxTerms), nil

	case strings.HasPrefix(s, "sqrt:"):
		n, err := strconv.ParseInt(strings.TrimPrefix(s, "sqrt:"), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("radicand of %q: %w", s, err)
		}
		return cf.Sqrt(n, a.cfg.MaxTerms)

	case strings.HasPrefix(s, "["):
		return cf.Parse(s)

	case strings.Contains(s, "/"):
		num, den, _ := strings.Cut(s, "/")
		p, err := strconv.ParseInt(strings.TrimSpace(num), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("numerator of %q: %w", s, err)
		}
		q, err := strconv.ParseInt(strings.TrimSpace(den), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("denominator of %q: %w", s, err)
		}
		return cf.FromRational(p, q)
	}

	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return cf.New(v), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%q is neither a fraction, a ratio nor a number", s)
	}
	a.logger.Debug("expanding decimal operand", "value", f, "max_terms", a.cfg.MaxTerms)

	return cf.FromFloat64(f, a.cfg.MaxTerms)
}

// formatValue prints v with the configured precision.
func (a *app) formatValue(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strconv.FormatFloat(v, 'f', a.cfg.Precision, 64)
}

// describe writes the text form, value and flags of x.
func (a *app) describe(w io.Writer, x *cf.ContinuedFraction) {
	fmt.Fprintln(w, valueStyle.Render(x.String()))
	fmt.Fprintf(w, "  value:    %s\n", a.formatValue(x.Float64()))
	fmt.Fprintf(w, "  terms:    %d\n", x.Len())
	fmt.Fprintf(w, "  periodic: %t\n", x.IsPeriodic())
}
