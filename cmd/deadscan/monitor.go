package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/coderisk/deadscan/internal/history"
	"github.com/coderisk/deadscan/internal/monitor"
	"github.com/coderisk/deadscan/internal/output"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor [root]",
	Short: "Run one monitoring pass against the stored baseline",
	Long: `Run a full analysis, compare it with the previous baseline, store the
timestamped result, promote the new baseline and raise an alert when
thresholds are exceeded or counts grew. Intended to run from cron.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMonitor,
}

func runMonitor(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(args)
	if err != nil {
		return err
	}
	initFileLogging(root)

	result, err := monitor.New(cfg).Run(root)
	if err != nil {
		return fmt.Errorf("monitoring failed: %w", err)
	}

	// Index the run for `deadscan status`. A broken index is not worth
	// failing an otherwise successful pass.
	if store, err := history.Open(root); err != nil {
		logger.WithError(err).Warn("Failed to open history index")
	} else {
		defer store.Close()
		if summary, err := history.Summarize(result); err != nil {
			logger.WithError(err).Warn("Failed to summarize run")
		} else if err := store.Record(summary); err != nil {
			logger.WithError(err).Warn("Failed to record run")
		}
	}

	output.FormatMonitoring(result, os.Stdout)
	return nil
}

var setupCronCmd = &cobra.Command{
	Use:   "setup-cron [root]",
	Short: "Print the crontab entry for periodic monitoring",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSetupCron,
}

func runSetupCron(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(args)
	if err != nil {
		return err
	}

	if runtime.GOOS == "windows" {
		logger.Warn("cron is not available on this platform; use Task Scheduler instead")
	}

	fmt.Println("Add this line to your crontab (crontab -e) to monitor every 6 hours:")
	fmt.Println()
	fmt.Printf("0 */6 * * * cd %s && deadscan monitor >> .deadscan/monitor.log 2>&1\n", root)
	fmt.Println()
	fmt.Println("Check recent runs with: deadscan status")
	return nil
}
