package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coderisk/deadscan/internal/analyzer"
	"github.com/coderisk/deadscan/internal/output"
)

var (
	analyzeQuiet bool
	analyzeJSON  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [root]",
	Short: "Run one full analysis pass and write cleanup artifacts",
	Long: `Scan the project tree, extract function definitions and call sites,
classify unused definitions by removal risk and write the JSON report,
markdown report and low-risk cleanup script under .deadscan/.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVarP(&analyzeQuiet, "quiet", "q", false, "one-line summary only")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the full report as JSON")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(args)
	if err != nil {
		return err
	}
	initFileLogging(root)

	a := analyzer.New(cfg)
	report, err := a.Run(root)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	if err := a.Persist(root, report); err != nil {
		return fmt.Errorf("failed to write artifacts: %w", err)
	}

	level := output.GetDefaultVerbosity()
	switch {
	case analyzeJSON:
		level = output.VerbosityJSON
	case analyzeQuiet:
		level = output.VerbosityQuiet
	}
	return output.NewFormatter(level).Format(report, os.Stdout)
}
