// Package planner turns unused findings into a staged, risk-ordered cleanup
// plan with generated remediation artifacts.
package planner

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/coderisk/deadscan/internal/config"
	"github.com/coderisk/deadscan/internal/models"
	"github.com/coderisk/deadscan/internal/risk"
)

// Planner builds cleanup plans from analysis results.
type Planner struct {
	cfg config.PlannerConfig
}

// New creates a planner.
func New(cfg config.PlannerConfig) *Planner {
	return &Planner{cfg: cfg}
}

// tierRank orders tiers by remediation priority: cheapest first.
func tierRank(level models.RiskLevel) int {
	switch level {
	case models.RiskLevelLow:
		return 0
	case models.RiskLevelMedium:
		return 1
	default:
		return 2
	}
}

// Findings converts per-file unused definitions into classified findings
// sorted by (tier, module, name) so repeated runs produce identical plans.
func Findings(root string, unused map[string][]models.DefinitionRecord) []models.UnusedFinding {
	var findings []models.UnusedFinding

	files := make([]string, 0, len(unused))
	for path := range unused {
		files = append(files, path)
	}
	sort.Strings(files)

	for _, path := range files {
		for _, def := range unused[path] {
			findings = append(findings, models.UnusedFinding{
				File:     path,
				Function: def.Name,
				Line:     def.Line,
				Kind:     def.Kind,
				Module:   moduleName(root, path),
				Risk:     risk.Classify(def.Name, path, def.Kind),
				Reason:   "no call sites found",
			})
		}
	}

	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if tierRank(a.Risk) != tierRank(b.Risk) {
			return tierRank(a.Risk) < tierRank(b.Risk)
		}
		if a.Module != b.Module {
			return a.Module < b.Module
		}
		return a.Function < b.Function
	})

	return findings
}

// Build assembles the full cleanup plan.
func (p *Planner) Build(root string, unused map[string][]models.DefinitionRecord, deadBlocks []models.DeadCodeBlock) models.CleanupPlan {
	findings := Findings(root, unused)

	var low, medium, high []models.UnusedFinding
	for _, f := range findings {
		switch f.Risk {
		case models.RiskLevelLow:
			low = append(low, f)
		case models.RiskLevelMedium:
			medium = append(medium, f)
		default:
			high = append(high, f)
		}
	}

	return models.CleanupPlan{
		Summary: models.CleanupSummary{
			TotalUnusedFunctions: len(findings),
			HighRisk:             len(high),
			MediumRisk:           len(medium),
			LowRisk:              len(low),
			DeadCodeBlocks:       len(deadBlocks),
		},
		HighRiskFunctions:   high,
		MediumRiskFunctions: medium,
		LowRiskFunctions:    low,
		DeadCodeBlocks:      deadBlocks,
		CleanupStages:       p.buildStages(low, medium, high),
	}
}

// buildStages orders remediation LOW -> MEDIUM -> HIGH with per-tier effort
// constants: low-risk removals are cheapest per item, high-risk ones need
// careful manual review.
func (p *Planner) buildStages(low, medium, high []models.UnusedFinding) []models.CleanupStage {
	return []models.CleanupStage{
		{
			Stage:         1,
			Name:          "Low-risk cleanup",
			Description:   "Remove obviously temporary and test-only functions",
			Functions:     low,
			EstimatedTime: fmt.Sprintf("%d minutes", len(low)*p.cfg.LowMinutesPerItem),
			Risk:          models.RiskLevelLow,
		},
		{
			Stage:         2,
			Name:          "Medium-risk cleanup",
			Description:   "Remove unused utility and helper functions after verification",
			Functions:     medium,
			EstimatedTime: fmt.Sprintf("%d minutes", len(medium)*p.cfg.MediumMinutesPerItem),
			Risk:          models.RiskLevelMedium,
		},
		{
			Stage:         3,
			Name:          "High-risk cleanup",
			Description:   "Manually review functions that frameworks may still invoke",
			Functions:     high,
			EstimatedTime: fmt.Sprintf("%d minutes", len(high)*p.cfg.HighMinutesPerItem),
			Risk:          models.RiskLevelHigh,
		},
	}
}

// moduleName derives a coarse module label from the file's first path
// segment under the project root. Files directly under the root use their
// own name.
func moduleName(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	if strings.HasPrefix(rel, "../") {
		return "external"
	}
	if idx := strings.Index(rel, "/"); idx > 0 {
		return rel[:idx]
	}
	return rel
}
