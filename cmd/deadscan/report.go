package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/coderisk/deadscan/internal/analyzer"
	"github.com/coderisk/deadscan/internal/config"
	"github.com/coderisk/deadscan/internal/models"
	"github.com/coderisk/deadscan/internal/output"
)

var reportJSON bool

var reportCmd = &cobra.Command{
	Use:   "report [root]",
	Short: "Show the most recent analysis report",
	Long:  `Print the stored analysis report without re-running the analysis.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "print the full report as JSON")
}

func runReport(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(args)
	if err != nil {
		return err
	}

	var report models.Report

	path := filepath.Join(config.ToolDir(root), analyzer.ReportFileName)
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No stored report yet: run a pass instead of refusing.
		initFileLogging(root)
		a := analyzer.New(cfg)
		fresh, err := a.Run(root)
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}
		if err := a.Persist(root, fresh); err != nil {
			return fmt.Errorf("failed to write artifacts: %w", err)
		}
		report = *fresh
	case err != nil:
		return fmt.Errorf("failed to read report: %w", err)
	default:
		if err := json.Unmarshal(data, &report); err != nil {
			return fmt.Errorf("failed to parse report %s: %w", path, err)
		}
	}

	level := output.GetDefaultVerbosity()
	if reportJSON {
		level = output.VerbosityJSON
	}
	return output.NewFormatter(level).Format(&report, os.Stdout)
}
