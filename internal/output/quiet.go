package output

import (
	"fmt"
	"io"

	"github.com/coderisk/deadscan/internal/models"
)

// QuietFormatter outputs a one-line summary (for hooks and pipes)
type QuietFormatter struct{}

func (f *QuietFormatter) Format(report *models.Report, w io.Writer) error {
	s := report.CleanupPlan.Summary

	if s.TotalUnusedFunctions == 0 && s.DeadCodeBlocks == 0 {
		fmt.Fprintf(w, "clean: %d functions defined, none unused\n", report.DefinedFunctionsCount)
		return nil
	}

	fmt.Fprintf(w, "%d unused functions (%d high, %d medium, %d low), %d dead code blocks\n",
		s.TotalUnusedFunctions, s.HighRisk, s.MediumRisk, s.LowRisk, s.DeadCodeBlocks)
	return nil
}
