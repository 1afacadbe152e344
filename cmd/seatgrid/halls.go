package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seatgrid/internal/config"
)

var hallsConfig string

func init() {
	hallsCmd := &cobra.Command{
		Use:   "halls",
		Short: "List the hall presets of a config file",
		RunE:  runHalls,
	}
	hallsCmd.Flags().StringVar(&hallsConfig, "config", "", "Config file with hall presets")
	_ = hallsCmd.MarkFlagRequired("config")

	rootCmd.AddCommand(hallsCmd)
}

func runHalls(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(hallsConfig)
	if err != nil {
		return err
	}
	if len(cfg.Halls) == 0 {
		cmd.Println("no halls configured")
		return nil
	}

	for _, h := range cfg.Halls {
		cats := make([]string, 0, len(h.Counts))
		for cat := range h.Counts {
			cats = append(cats, cat)
		}
		sort.Strings(cats)

		line := fmt.Sprintf("%s: %dx%d,", h.Name, h.Rows, h.Cols)
		for _, cat := range cats {
			line += fmt.Sprintf(" %s=%d", cat, h.Counts[cat])
		}
		cmd.Println(line)
	}
	return nil
}
