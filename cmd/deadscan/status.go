package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coderisk/deadscan/internal/config"
	"github.com/coderisk/deadscan/internal/history"
	"github.com/coderisk/deadscan/internal/monitor"
	"github.com/coderisk/deadscan/internal/output"
)

var statusLimit int

var statusCmd = &cobra.Command{
	Use:   "status [root]",
	Short: "Show monitoring state and recent run history",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().IntVarP(&statusLimit, "limit", "n", 10, "number of recent runs to show")
}

func runStatus(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(args)
	if err != nil {
		return err
	}

	fmt.Printf("Deadscan status for %s\n\n", root)
	fmt.Printf("Configuration:\n")
	fmt.Printf("  Max unused functions:  %d\n", cfg.Monitor.MaxUnusedFunctions)
	fmt.Printf("  Max dead code blocks:  %d\n", cfg.Monitor.MaxDeadCodeBlocks)
	fmt.Printf("  Cleanup interval:      %s\n", cfg.Monitor.CleanupInterval)
	fmt.Printf("  Retention window:      %s\n", cfg.Monitor.RetentionWindow)

	fmt.Printf("\nBaseline:\n")
	baseline, err := monitor.New(cfg).LoadBaseline(root)
	switch {
	case err != nil:
		fmt.Printf("  unreadable: %v\n", err)
	case baseline == nil:
		fmt.Printf("  none recorded (run: deadscan monitor)\n")
	default:
		fmt.Printf("  taken %s, %d unused functions\n",
			baseline.AnalysisTimestamp,
			baseline.CleanupPlan.Summary.TotalUnusedFunctions)
	}

	store, err := history.Open(root)
	if err != nil {
		return fmt.Errorf("failed to open history index in %s: %w", config.ToolDir(root), err)
	}
	defer store.Close()

	runs, err := store.Recent(statusLimit)
	if err != nil {
		return fmt.Errorf("failed to read run history: %w", err)
	}

	fmt.Printf("\nRecent runs:\n")
	output.FormatHistory(runs, os.Stdout)
	return nil
}
