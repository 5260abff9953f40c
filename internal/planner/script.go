package planner

import (
	"fmt"
	"strings"

	"github.com/coderisk/deadscan/internal/models"
)

// CleanupScript renders a bash script for the low-risk stage. The script
// only backs up the affected files and prints the removal targets; it never
// edits source itself, so a reviewer stays in the loop.
func CleanupScript(low []models.UnusedFinding) string {
	var b strings.Builder

	b.WriteString("#!/bin/bash\n")
	b.WriteString("# Low-risk unused function cleanup\n")
	b.WriteString("# Generated by deadscan. Review every entry before removing code.\n\n")
	b.WriteString("set -e\n\n")
	fmt.Fprintf(&b, "echo \"Starting low-risk cleanup (%d candidates)\"\n\n", len(low))

	for _, f := range low {
		fmt.Fprintf(&b, "# %s in %s (line %d)\n", f.Function, f.File, f.Line)
		fmt.Fprintf(&b, "if [[ -f \"%s\" ]]; then\n", f.File)
		fmt.Fprintf(&b, "    cp \"%s\" \"%s.backup\"\n", f.File, f.File)
		fmt.Fprintf(&b, "    echo \"remove %s from %s:%d manually\"\n", f.Function, f.File, f.Line)
		b.WriteString("fi\n\n")
	}

	b.WriteString("echo \"Backups written with .backup suffix; restore with: cp file.backup file\"\n")
	return b.String()
}
