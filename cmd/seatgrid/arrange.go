package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seatgrid/arrange"
	"github.com/katalvlaran/seatgrid/exact"
	"github.com/katalvlaran/seatgrid/grid"
	"github.com/katalvlaran/seatgrid/internal/config"
	"github.com/katalvlaran/seatgrid/internal/render"
	"github.com/katalvlaran/seatgrid/seat"
)

var (
	arrangeRows     int
	arrangeCols     int
	arrangeCounts   map[string]int
	arrangeHall     string
	arrangeSeed     int64
	arrangeAttempts int
	arrangeRetries  int
	arrangeWorkers  int
	arrangeExact    bool
	arrangeFormat   string
	arrangeOutput   string
	arrangeConfig   string
)

func init() {
	arrangeCmd := &cobra.Command{
		Use:   "arrange",
		Short: "Compute one arrangement and print it",
		Long: `Compute a seat arrangement for the given room and counts.

Examples:
  seatgrid arrange --rows 5 --cols 6 --counts CSE=12,ECE=10,MEC=8
  seatgrid arrange --hall main-hall --config seatgrid.yaml --format csv
  seatgrid arrange --rows 2 --cols 2 --counts A=3,B=1 --exact`,
		RunE: runArrange,
	}

	arrangeCmd.Flags().IntVar(&arrangeRows, "rows", 0, "Grid rows")
	arrangeCmd.Flags().IntVar(&arrangeCols, "cols", 0, "Grid columns")
	arrangeCmd.Flags().StringToIntVar(&arrangeCounts, "counts", nil, "Per-category seat counts, e.g. CSE=12,ECE=10")
	arrangeCmd.Flags().StringVar(&arrangeHall, "hall", "", "Named hall preset from the config file")
	arrangeCmd.Flags().Int64Var(&arrangeSeed, "seed", 0, "Random seed; 0 draws time entropy")
	arrangeCmd.Flags().IntVar(&arrangeAttempts, "attempts", 0, "Attempt limit per run (default from config)")
	arrangeCmd.Flags().IntVar(&arrangeRetries, "retries", 0, "Independent runs before giving up (default from config)")
	arrangeCmd.Flags().IntVar(&arrangeWorkers, "workers", 0, "Parallel racing workers; 0 means serial")
	arrangeCmd.Flags().BoolVar(&arrangeExact, "exact", false, "Use the SAT backend (proves infeasibility)")
	arrangeCmd.Flags().StringVar(&arrangeFormat, "format", "text", "Output format: text|csv|json")
	arrangeCmd.Flags().StringVarP(&arrangeOutput, "output", "o", "", "Output file (default stdout)")
	arrangeCmd.Flags().StringVar(&arrangeConfig, "config", "", "Config file with solver defaults and hall presets")

	rootCmd.AddCommand(arrangeCmd)
}

func runArrange(cmd *cobra.Command, _ []string) error {
	cfg := config.DefaultConfig()
	if arrangeConfig != "" {
		loaded, err := config.Load(arrangeConfig)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	rows, cols, rawCounts := arrangeRows, arrangeCols, arrangeCounts
	if arrangeHall != "" {
		hall, ok := cfg.Hall(arrangeHall)
		if !ok {
			return fmt.Errorf("unknown hall %q", arrangeHall)
		}
		rows, cols, rawCounts = hall.Rows, hall.Cols, hall.Counts
	}

	counts := make(grid.Counts, len(rawCounts))
	for cat, n := range rawCounts {
		counts[grid.Category(cat)] = n
	}

	opts := cfg.Options(arrangeSeed)
	if arrangeAttempts > 0 {
		opts.AttemptLimit = arrangeAttempts
	}
	if arrangeRetries > 0 {
		opts.MaxRetries = arrangeRetries
	}
	opts.Workers = arrangeWorkers

	layout, stats, err := runEngine(cmd.Context(), rows, cols, counts, opts)
	if err != nil {
		return arrangeFailure(err)
	}

	sg, err := seat.Assign(layout)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if arrangeOutput != "" {
		f, err := os.Create(arrangeOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if err := writeGrid(out, sg); err != nil {
		return err
	}
	if !arrangeExact {
		cmd.PrintErrf("solved in %d attempts over %d run(s), %s\n", stats.Attempts, stats.Runs, stats.Duration)
	}
	return nil
}

// runEngine dispatches to the SAT backend, the parallel racer, or the
// serial randomized engine.
func runEngine(ctx context.Context, rows, cols int, counts grid.Counts, opts arrange.Options) (*grid.Layout, arrange.Stats, error) {
	if arrangeExact {
		layout, err := exact.Arrange(ctx, rows, cols, counts)
		return layout, arrange.Stats{}, err
	}
	if opts.Workers > 1 {
		return arrange.SolveParallel(ctx, rows, cols, counts, opts)
	}
	return arrange.Solve(rows, cols, counts, opts)
}

// arrangeFailure rephrases engine failures for the terminal. Exhaustion
// must read as "not found", never as impossibility — only the exact
// backend proves the latter.
func arrangeFailure(err error) error {
	var ns exact.NotSatisfiable
	switch {
	case errors.Is(err, arrange.ErrSearchExhausted):
		return errors.New("could not find an arrangement within the search budget; try again, raise --attempts, or verify with --exact")
	case errors.As(err, &ns):
		return fmt.Errorf("no arrangement exists: %w", ns)
	case errors.Is(err, grid.ErrCountMismatch):
		return fmt.Errorf("%w: the counts must total rows*cols seats", err)
	default:
		return err
	}
}

func writeGrid(w io.Writer, sg *seat.Grid) error {
	switch arrangeFormat {
	case "text":
		return render.Text(w, sg)
	case "csv":
		return render.CSV(w, sg)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Rows  int           `json:"rows"`
			Cols  int           `json:"cols"`
			Seats [][]seat.Seat `json:"seats"`
		}{Rows: sg.Rows(), Cols: sg.Cols(), Seats: sg.Seats()})
	default:
		return fmt.Errorf("unknown format %q (want text, csv, or json)", arrangeFormat)
	}
}
