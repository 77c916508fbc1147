package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldlab/gf2m/internal/cli"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "gf2m",
		Short: "Arithmetic tables for binary extension fields GF(2^m)",
		Long: `gf2m builds binary extension (Galois) fields GF(2^m) from a primitive
polynomial and prints the tables used in error-control coding.

The field is selected with --degree (or --order) and an optional --poly;
without flags the built-in primitive polynomials from Lin and Costello
are used.

Available tables:
- power/vector correspondence (powers)
- minimal polynomials by conjugacy class (minpoly)
- full addition and multiplication tables (addtable, multable)

Element arithmetic is available through 'eval' and 'conjugates'.`,
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
	}

	rootCmd.AddCommand(
		cli.NewPowersCommand(),
		cli.NewMinPolyCommand(),
		cli.NewConjugatesCommand(),
		cli.NewEvalCommand(),
		cli.NewAddTableCommand(),
		cli.NewMulTableCommand(),
		cli.NewFieldsCommand(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	cobra.OnInitialize(func() {
		if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
			slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	})

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
