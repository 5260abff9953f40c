package planner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/coderisk/deadscan/internal/models"
)

// MarkdownReport renders the human-facing cleanup report.
func MarkdownReport(r *models.Report) string {
	plan := r.CleanupPlan
	total := plan.Summary.TotalUnusedFunctions

	var b strings.Builder
	b.WriteString("# Dead Function Cleanup Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", r.AnalysisTimestamp)
	fmt.Fprintf(&b, "Project: `%s`\n\n", r.ProjectRoot)

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Defined functions: %d\n", r.DefinedFunctionsCount)
	fmt.Fprintf(&b, "- Unused functions: %d\n", total)
	fmt.Fprintf(&b, "- Dead code blocks: %d\n\n", plan.Summary.DeadCodeBlocks)

	b.WriteString("## Risk Distribution\n\n")
	b.WriteString("| Risk | Count | Share | Guidance |\n")
	b.WriteString("|------|-------|-------|----------|\n")
	fmt.Fprintf(&b, "| HIGH | %d | %s | manual review required |\n", plan.Summary.HighRisk, percent(plan.Summary.HighRisk, total))
	fmt.Fprintf(&b, "| MEDIUM | %d | %s | verify before removal |\n", plan.Summary.MediumRisk, percent(plan.Summary.MediumRisk, total))
	fmt.Fprintf(&b, "| LOW | %d | %s | safe to remove after backup |\n\n", plan.Summary.LowRisk, percent(plan.Summary.LowRisk, total))

	writeModuleBreakdown(&b, plan)
	writeTierSection(&b, "High Risk", plan.HighRiskFunctions)
	writeTierSection(&b, "Medium Risk", plan.MediumRiskFunctions)
	writeTierSection(&b, "Low Risk", plan.LowRiskFunctions)

	b.WriteString("## Cleanup Stages\n\n")
	for _, stage := range plan.CleanupStages {
		fmt.Fprintf(&b, "### Stage %d: %s\n\n", stage.Stage, stage.Name)
		fmt.Fprintf(&b, "%s\n\n", stage.Description)
		fmt.Fprintf(&b, "- Functions: %d\n", len(stage.Functions))
		fmt.Fprintf(&b, "- Estimated time: %s\n\n", stage.EstimatedTime)
	}

	b.WriteString("## Rollback\n\n")
	b.WriteString("The generated cleanup script copies each touched file to `<file>.backup` ")
	b.WriteString("before printing its removal target. Restore any file with ")
	b.WriteString("`cp <file>.backup <file>`.\n")

	return b.String()
}

func writeModuleBreakdown(b *strings.Builder, plan models.CleanupPlan) {
	counts := map[string]int{}
	for _, tier := range [][]models.UnusedFinding{plan.HighRiskFunctions, plan.MediumRiskFunctions, plan.LowRiskFunctions} {
		for _, f := range tier {
			counts[f.Module]++
		}
	}
	if len(counts) == 0 {
		return
	}

	modules := make([]string, 0, len(counts))
	for m := range counts {
		modules = append(modules, m)
	}
	sort.Strings(modules)

	b.WriteString("## By Module\n\n")
	for _, m := range modules {
		fmt.Fprintf(b, "- `%s`: %d unused\n", m, counts[m])
	}
	b.WriteString("\n")
}

func writeTierSection(b *strings.Builder, title string, findings []models.UnusedFinding) {
	if len(findings) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s Functions\n\n", title)
	for _, f := range findings {
		fmt.Fprintf(b, "- `%s` (%s) %s:%d\n", f.Function, f.Kind, f.File, f.Line)
	}
	b.WriteString("\n")
}

func percent(part, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.0f%%", float64(part)*100/float64(total))
}
