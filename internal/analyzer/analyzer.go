// Package analyzer runs the full analysis pipeline over a project tree and
// persists the resulting artifacts.
package analyzer

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/coderisk/deadscan/internal/atomicfile"
	"github.com/coderisk/deadscan/internal/config"
	"github.com/coderisk/deadscan/internal/deadcode"
	"github.com/coderisk/deadscan/internal/extractor"
	"github.com/coderisk/deadscan/internal/logging"
	"github.com/coderisk/deadscan/internal/models"
	"github.com/coderisk/deadscan/internal/planner"
	"github.com/coderisk/deadscan/internal/scanner"
	"github.com/coderisk/deadscan/internal/usage"
)

// Artifact file names under the project tooling directory.
const (
	ReportFileName   = "analysis.json"
	MarkdownFileName = "CLEANUP_REPORT.md"
	ScriptFileName   = "cleanup-low-risk.sh"
)

// Analyzer runs one full pass: scan, extract, aggregate, classify, plan.
type Analyzer struct {
	cfg *config.Config
}

// New creates an analyzer.
func New(cfg *config.Config) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// Run analyzes the project rooted at root and returns the report. Individual
// unreadable files degrade the result with a warning instead of failing the
// run; only setup errors (bad patterns, unwalkable root) are fatal.
func (a *Analyzer) Run(root string) (*models.Report, error) {
	patterns, err := config.LoadPatterns(root)
	if err != nil {
		return nil, fmt.Errorf("failed to load patterns: %w", err)
	}
	usageAnalyzer, err := usage.NewAnalyzer(patterns)
	if err != nil {
		return nil, fmt.Errorf("failed to build usage analyzer: %w", err)
	}

	files, err := scanner.New(a.cfg.Scan.IgnoreDirs, a.cfg.Scan.SourceExtensions).SourceFiles(root)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}
	logging.Info("scanned project", "root", root, "files", len(files))

	var warnings []string
	extractions := make(map[string]*models.FileExtraction, len(files))
	var deadBlocks []models.DeadCodeBlock

	ext := extractor.New()
	dead := deadcode.New()
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipped %s: %v", path, err))
			logging.Warn("skipping unreadable file", "path", path, "error", err)
			continue
		}
		content := string(data)
		extractions[path] = ext.Extract(content)
		deadBlocks = append(deadBlocks, dead.Scan(path, content)...)
	}

	project := usage.BuildProject(extractions)
	unused := usageAnalyzer.UnusedByFile(project)
	plan := planner.New(a.cfg.Planner).Build(root, unused, deadBlocks)

	report := &models.Report{
		AnalysisTimestamp:     time.Now().UTC().Format(time.RFC3339),
		ProjectRoot:           root,
		DefinedFunctionsCount: project.DefinedCount(),
		UnusedFunctions:       unused,
		DeadCodeBlocks:        deadBlocks,
		CleanupPlan:           plan,
		Warnings:              warnings,
	}

	logging.Info("analysis complete",
		"defined", report.DefinedFunctionsCount,
		"unused", plan.Summary.TotalUnusedFunctions,
		"dead_blocks", plan.Summary.DeadCodeBlocks)

	return report, nil
}

// Persist writes the JSON report, the markdown report and the low-risk
// cleanup script under <root>/.deadscan. Persistence failure is fatal: a run
// whose artifacts cannot be stored must not look successful.
func (a *Analyzer) Persist(root string, report *models.Report) error {
	dir := config.ToolDir(root)

	if err := atomicfile.WriteJSON(filepath.Join(dir, ReportFileName), report); err != nil {
		return err
	}
	md := planner.MarkdownReport(report)
	if err := atomicfile.WriteFile(filepath.Join(dir, MarkdownFileName), []byte(md), 0644); err != nil {
		return err
	}
	script := planner.CleanupScript(report.CleanupPlan.LowRiskFunctions)
	if err := atomicfile.WriteFile(filepath.Join(dir, ScriptFileName), []byte(script), 0755); err != nil {
		return err
	}

	logging.Info("artifacts written", "dir", dir)
	return nil
}
