// Command seatgrid arranges categorized seats on a rectangular grid so
// that no two neighbors share a category, and serves the same engines
// over HTTP.
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:   "seatgrid",
	Short: "Adjacency-safe seat arrangement",
	Long: `seatgrid places categorized entities (exam candidates, plants,
machines) on a rectangular grid so that no two edge-sharing cells hold
the same category.

The default engine is a bounded randomized backtracking search: fast,
but a failure only means "not found within the budget". The --exact
flag switches to a SAT backend that either finds a layout or proves
that none exists.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Flags are matched case-insensitively: --attemptLimit and
	// --attemptlimit name the same knob.
	rootCmd.PersistentFlags().SetNormalizeFunc(func(_ *flag.FlagSet, name string) flag.NormalizedName {
		return flag.NormalizedName(strings.ToLower(name))
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
