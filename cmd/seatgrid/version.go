package main

import (
	"runtime"

	"github.com/spf13/cobra"
)

// version is stamped by the release build via -ldflags.
var version = "dev"

func init() {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the seatgrid version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("seatgrid %s %s/%s\n", version, runtime.GOOS, runtime.GOARCH)
		},
	}
	rootCmd.AddCommand(versionCmd)
}
