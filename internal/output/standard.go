package output

import (
	"fmt"
	"io"

	"github.com/coderisk/deadscan/internal/config"
	"github.com/coderisk/deadscan/internal/models"
)

// StandardFormatter outputs the full terminal summary
type StandardFormatter struct{}

func (f *StandardFormatter) Format(report *models.Report, w io.Writer) error {
	s := report.CleanupPlan.Summary

	fmt.Fprintf(w, "Analyzed %s\n", report.ProjectRoot)
	fmt.Fprintf(w, "  Defined functions:  %d\n", report.DefinedFunctionsCount)
	fmt.Fprintf(w, "  Unused functions:   %d\n", s.TotalUnusedFunctions)
	fmt.Fprintf(w, "    high risk:   %d\n", s.HighRisk)
	fmt.Fprintf(w, "    medium risk: %d\n", s.MediumRisk)
	fmt.Fprintf(w, "    low risk:    %d\n", s.LowRisk)
	fmt.Fprintf(w, "  Dead code blocks:   %d\n", s.DeadCodeBlocks)

	if len(report.CleanupPlan.CleanupStages) > 0 {
		fmt.Fprintln(w)
		for _, stage := range report.CleanupPlan.CleanupStages {
			fmt.Fprintf(w, "  Stage %d (%s): %d functions, %s\n",
				stage.Stage, stage.Risk, len(stage.Functions), stage.EstimatedTime)
		}
	}

	if len(report.Warnings) > 0 {
		fmt.Fprintln(w)
		for _, warning := range report.Warnings {
			fmt.Fprintf(w, "  warning: %s\n", warning)
		}
	}

	fmt.Fprintf(w, "\nArtifacts in %s\n", config.ToolDir(report.ProjectRoot))
	return nil
}

// FormatMonitoring prints one monitoring pass: headline, deltas and the
// alert if one fired.
func FormatMonitoring(result *models.MonitoringResult, w io.Writer) {
	fmt.Fprintf(w, "Monitoring run %s at %s\n", result.RunID, result.Timestamp)

	c := result.Comparison
	if c.FirstAnalysis {
		fmt.Fprintln(w, "  first analysis, baseline recorded")
	} else if c.UnusedFunctions != nil {
		fmt.Fprintf(w, "  unused functions: %d (%+d since baseline)\n",
			c.UnusedFunctions.Current, c.UnusedFunctions.Difference)
		if c.DeadCodeBlocks != nil {
			fmt.Fprintf(w, "  dead code blocks: %d (%+d since baseline)\n",
				c.DeadCodeBlocks.Current, c.DeadCodeBlocks.Difference)
		}
	}

	if result.ShouldCleanup {
		fmt.Fprintln(w, "  cleanup recommended")
	}
	if result.Alert != "" {
		fmt.Fprintf(w, "\n%s\n", result.Alert)
	} else {
		fmt.Fprintln(w, "  no alerts")
	}
}

// FormatHistory prints recent run summaries, newest first.
func FormatHistory(runs []models.RunSummary, w io.Writer) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No monitoring runs recorded yet. Run: deadscan monitor")
		return
	}

	fmt.Fprintf(w, "%-20s  %7s  %5s  %7s  %4s  %5s  %s\n",
		"TIMESTAMP", "UNUSED", "HIGH", "MEDIUM", "LOW", "DEAD", "ALERT")
	for _, run := range runs {
		alert := ""
		if run.Alerted {
			alert = "yes"
		}
		fmt.Fprintf(w, "%-20s  %7d  %5d  %7d  %4d  %5d  %s\n",
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.UnusedTotal, run.HighRisk, run.MediumRisk, run.LowRisk,
			run.DeadCodeBlocks, alert)
	}
}
