// Package monitor runs scheduled analysis passes, diffs them against the
// stored baseline and raises threshold alerts.
package monitor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/coderisk/deadscan/internal/analyzer"
	"github.com/coderisk/deadscan/internal/atomicfile"
	"github.com/coderisk/deadscan/internal/config"
	"github.com/coderisk/deadscan/internal/logging"
	"github.com/coderisk/deadscan/internal/models"
)

const (
	BaselineFileName = "baseline.json"

	monitoringPrefix  = "monitoring_"
	monitoringTimeFmt = "20060102_150405"
)

// Monitor wraps the analyzer with baseline bookkeeping.
type Monitor struct {
	cfg *config.Config
	an  *analyzer.Analyzer
	now func() time.Time
}

// New creates a monitor.
func New(cfg *config.Config) *Monitor {
	return &Monitor{
		cfg: cfg,
		an:  analyzer.New(cfg),
		now: time.Now,
	}
}

// Run performs one monitoring pass: analyze, compare against the baseline,
// evaluate thresholds, persist the timestamped result, promote the current
// report to baseline and sweep expired monitoring files. An analysis failure
// aborts the pass before any state is touched, so a broken run can never
// become the baseline.
func (m *Monitor) Run(root string) (*models.MonitoringResult, error) {
	baseline, err := m.LoadBaseline(root)
	if err != nil {
		return nil, err
	}

	current, err := m.an.Run(root)
	if err != nil {
		logging.Error("analysis failed, baseline left untouched", "root", root, "error", err)
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	if err := m.an.Persist(root, current); err != nil {
		return nil, err
	}

	now := m.now().UTC()
	warnings := m.thresholdWarnings(current)
	comparison := Compare(now, current, baseline)

	result := &models.MonitoringResult{
		RunID:           uuid.New().String(),
		Timestamp:       now.Format(time.RFC3339),
		CurrentAnalysis: current,
		Comparison:      comparison,
		Warnings:        warnings,
		Alert:           composeAlert(comparison, warnings, m.cfg.Monitor.AlertOnNewFunctions),
		ShouldCleanup:   m.shouldCleanup(now, baseline),
	}

	dir := config.ToolDir(root)
	resultPath := filepath.Join(dir, monitoringPrefix+now.Format(monitoringTimeFmt)+".json")
	if err := atomicfile.WriteJSON(resultPath, result); err != nil {
		return nil, err
	}
	if err := atomicfile.WriteJSON(filepath.Join(dir, BaselineFileName), current); err != nil {
		return nil, err
	}
	logging.Info("monitoring pass stored", "run_id", result.RunID, "path", resultPath)

	if err := m.SweepExpired(root, now); err != nil {
		logging.Warn("retention sweep failed", "error", err)
	}

	return result, nil
}

// LoadBaseline reads the stored baseline report. A missing file means this is
// the first pass and returns (nil, nil); a corrupt file is an error.
func (m *Monitor) LoadBaseline(root string) (*models.Report, error) {
	path := filepath.Join(config.ToolDir(root), BaselineFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read baseline: %w", err)
	}

	var report models.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to parse baseline %s: %w", path, err)
	}
	return &report, nil
}

// thresholdWarnings checks the configured absolute limits.
func (m *Monitor) thresholdWarnings(report *models.Report) []string {
	var warnings []string
	s := report.CleanupPlan.Summary

	if s.TotalUnusedFunctions > m.cfg.Monitor.MaxUnusedFunctions {
		warnings = append(warnings, fmt.Sprintf(
			"unused functions (%d) exceed threshold (%d)",
			s.TotalUnusedFunctions, m.cfg.Monitor.MaxUnusedFunctions))
	}
	if s.DeadCodeBlocks > m.cfg.Monitor.MaxDeadCodeBlocks {
		warnings = append(warnings, fmt.Sprintf(
			"dead code blocks (%d) exceed threshold (%d)",
			s.DeadCodeBlocks, m.cfg.Monitor.MaxDeadCodeBlocks))
	}
	return warnings
}

// Compare diffs the current report against the baseline. Without a baseline
// the comparison only marks a first analysis.
func Compare(now time.Time, current, baseline *models.Report) models.Comparison {
	c := models.Comparison{Timestamp: now.Format(time.RFC3339)}

	if baseline == nil {
		c.FirstAnalysis = true
		return c
	}

	cur := current.CleanupPlan.Summary
	base := baseline.CleanupPlan.Summary

	c.BaselineTimestamp = baseline.AnalysisTimestamp
	c.UnusedFunctions = &models.CountDelta{
		Current:    cur.TotalUnusedFunctions,
		Baseline:   base.TotalUnusedFunctions,
		Difference: cur.TotalUnusedFunctions - base.TotalUnusedFunctions,
	}
	c.DeadCodeBlocks = &models.CountDelta{
		Current:    cur.DeadCodeBlocks,
		Baseline:   base.DeadCodeBlocks,
		Difference: cur.DeadCodeBlocks - base.DeadCodeBlocks,
	}
	c.RiskDistribution = &models.RiskDelta{
		Current:  models.RiskDistribution{High: cur.HighRisk, Medium: cur.MediumRisk, Low: cur.LowRisk},
		Baseline: models.RiskDistribution{High: base.HighRisk, Medium: base.MediumRisk, Low: base.LowRisk},
		Differences: models.RiskDistribution{
			High:   cur.HighRisk - base.HighRisk,
			Medium: cur.MediumRisk - base.MediumRisk,
			Low:    cur.LowRisk - base.LowRisk,
		},
	}
	return c
}

// composeAlert builds the alert text. An alert fires when a threshold warning
// exists or, with alertOnGrowth set, when any counter grew since the
// baseline; otherwise it returns "".
func composeAlert(c models.Comparison, warnings []string, alertOnGrowth bool) string {
	grewUnused := alertOnGrowth && c.UnusedFunctions != nil && c.UnusedFunctions.Difference > 0
	grewDead := alertOnGrowth && c.DeadCodeBlocks != nil && c.DeadCodeBlocks.Difference > 0
	if len(warnings) == 0 && !grewUnused && !grewDead {
		return ""
	}

	var b strings.Builder
	b.WriteString("DEAD FUNCTION ALERT\n\n")

	if grewUnused {
		fmt.Fprintf(&b, "Unused functions grew by %d (%d -> %d)\n",
			c.UnusedFunctions.Difference, c.UnusedFunctions.Baseline, c.UnusedFunctions.Current)
	}
	if grewDead {
		fmt.Fprintf(&b, "Dead code blocks grew by %d (%d -> %d)\n",
			c.DeadCodeBlocks.Difference, c.DeadCodeBlocks.Baseline, c.DeadCodeBlocks.Current)
	}
	for _, w := range warnings {
		fmt.Fprintf(&b, "Warning: %s\n", w)
	}

	b.WriteString("\nNext steps:\n")
	b.WriteString("  1. Run the staged cleanup: bash " + config.ToolDirName + "/" + analyzer.ScriptFileName + "\n")
	b.WriteString("  2. Review: " + config.ToolDirName + "/" + analyzer.MarkdownFileName + "\n")
	return b.String()
}

// shouldCleanup recommends a cleanup pass when no baseline exists, when the
// baseline is older than the configured interval, or when its timestamp
// cannot be parsed.
func (m *Monitor) shouldCleanup(now time.Time, baseline *models.Report) bool {
	if baseline == nil {
		return true
	}
	ts, err := time.Parse(time.RFC3339, baseline.AnalysisTimestamp)
	if err != nil {
		return true
	}
	return now.Sub(ts) >= m.cfg.Monitor.CleanupInterval
}

// SweepExpired deletes monitoring result files older than the retention
// window. Age comes from the filename timestamp, not file mtime, so copies
// restored from backup still expire correctly. Files whose names do not parse
// are left in place.
func (m *Monitor) SweepExpired(root string, now time.Time) error {
	dir := config.ToolDir(root)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, monitoringPrefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		stamp := strings.TrimSuffix(strings.TrimPrefix(name, monitoringPrefix), ".json")
		ts, err := time.Parse(monitoringTimeFmt, stamp)
		if err != nil {
			continue
		}
		if now.Sub(ts) > m.cfg.Monitor.RetentionWindow {
			if err := os.Remove(filepath.Join(dir, name)); err != nil {
				logging.Warn("failed to remove expired result", "path", name, "error", err)
				continue
			}
			logging.Debug("removed expired monitoring result", "path", name)
		}
	}
	return nil
}
