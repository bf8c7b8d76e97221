// Package cli implements the LandLord command-line interface using Cobra.
// Each subcommand maps to a progression operation (status, complete,
// activity, etc.).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "landlord",
	Short: "LandLord — medieval progression engine for real-estate agents",
	Long: `LandLord turns real-estate activity into a medieval kingdom.
Complete quests to earn gold and experience, keep daily streaks alive,
climb from Squire to Royalty, and collect achievement badges.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
