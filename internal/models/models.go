package models

import (
	"time"
)

// DefinitionKind describes the syntactic shape a definition was matched as.
type DefinitionKind string

const (
	KindFunctionDeclaration DefinitionKind = "function_declaration"
	KindArrowFunction       DefinitionKind = "arrow_function"
	KindClassMethod         DefinitionKind = "class_method"
	KindInstanceMethod      DefinitionKind = "instance_method"
	KindMethod              DefinitionKind = "method"
)

// DefinitionRecord is one candidate function/method definition found during
// extraction. Records are immutable once created and live for a single
// analysis pass.
type DefinitionRecord struct {
	Name     string         `json:"name"`
	Line     int            `json:"line"`
	Kind     DefinitionKind `json:"type"`
	Exported bool           `json:"exported"`
	Async    bool           `json:"async"`
	Content  string         `json:"content"`
}

// FileExtraction holds everything the extractor pulled out of one source
// file. Calls, exports and imports are flat presence sets; line fidelity is
// only kept for definitions.
type FileExtraction struct {
	Definitions []DefinitionRecord
	Calls       map[string]struct{}
	Exports     map[string]struct{}
	Imports     map[string]struct{}
}

// RiskLevel represents the caution tier assigned to an unused finding.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// String returns the string representation of RiskLevel.
func (r RiskLevel) String() string {
	return string(r)
}

// UnusedFinding is a definition classified as unused, annotated with the
// file that owns it and its removal-risk tier.
type UnusedFinding struct {
	File     string         `json:"file"`
	Function string         `json:"function"`
	Line     int            `json:"line"`
	Kind     DefinitionKind `json:"type"`
	Module   string         `json:"module"`
	Risk     RiskLevel      `json:"risk_level"`
	Reason   string         `json:"reason"`
}

// DeadCodeBlock is a statement judged unreachable, e.g. code after an
// unconditional return on the same nesting level.
type DeadCodeBlock struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Type    string `json:"type"`
	Content string `json:"content"`
	Context string `json:"context"`
}

// CleanupSummary holds the headline counts of a cleanup plan.
type CleanupSummary struct {
	TotalUnusedFunctions int `json:"total_unused_functions"`
	HighRisk             int `json:"high_risk"`
	MediumRisk           int `json:"medium_risk"`
	LowRisk              int `json:"low_risk"`
	DeadCodeBlocks       int `json:"dead_code_blocks"`
}

// CleanupStage is one risk-tier-bounded batch of proposed removals.
type CleanupStage struct {
	Stage         int             `json:"stage"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Functions     []UnusedFinding `json:"functions"`
	EstimatedTime string          `json:"estimated_time"`
	Risk          RiskLevel       `json:"risk"`
}

// CleanupPlan groups unused findings into ordered remediation stages.
type CleanupPlan struct {
	Summary             CleanupSummary  `json:"summary"`
	HighRiskFunctions   []UnusedFinding `json:"high_risk_functions"`
	MediumRiskFunctions []UnusedFinding `json:"medium_risk_functions"`
	LowRiskFunctions    []UnusedFinding `json:"low_risk_functions"`
	DeadCodeBlocks      []DeadCodeBlock `json:"dead_code_blocks"`
	CleanupStages       []CleanupStage  `json:"cleanup_stages"`
}

// Report is the full JSON artifact of one analysis pass.
type Report struct {
	AnalysisTimestamp     string                        `json:"analysis_timestamp"`
	ProjectRoot           string                        `json:"project_root"`
	DefinedFunctionsCount int                           `json:"defined_functions_count"`
	UnusedFunctions       map[string][]DefinitionRecord `json:"unused_functions"`
	DeadCodeBlocks        []DeadCodeBlock               `json:"dead_code_blocks"`
	CleanupPlan           CleanupPlan                   `json:"cleanup_plan"`
	Warnings              []string                      `json:"warnings,omitempty"`
}

// CountDelta is one baseline-vs-current counter comparison.
type CountDelta struct {
	Current    int `json:"current"`
	Baseline   int `json:"baseline"`
	Difference int `json:"difference"`
}

// RiskDistribution holds per-tier counts.
type RiskDistribution struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// RiskDelta compares per-tier counts against the baseline.
type RiskDelta struct {
	Current     RiskDistribution `json:"current"`
	Baseline    RiskDistribution `json:"baseline"`
	Differences RiskDistribution `json:"differences"`
}

// Comparison is the diff of one analysis run against the prior baseline.
// FirstAnalysis is set instead of the numeric deltas when no baseline
// existed.
type Comparison struct {
	Timestamp         string      `json:"timestamp"`
	BaselineTimestamp string      `json:"baseline_timestamp,omitempty"`
	FirstAnalysis     bool        `json:"first_analysis,omitempty"`
	UnusedFunctions   *CountDelta `json:"unused_functions,omitempty"`
	DeadCodeBlocks    *CountDelta `json:"dead_code_blocks,omitempty"`
	RiskDistribution  *RiskDelta  `json:"risk_distribution,omitempty"`
}

// MonitoringResult captures one monitor run: the full analysis, its diff
// against the baseline, threshold warnings and the composed alert.
type MonitoringResult struct {
	RunID           string     `json:"run_id"`
	Timestamp       string     `json:"timestamp"`
	CurrentAnalysis *Report    `json:"current_analysis"`
	Comparison      Comparison `json:"comparison"`
	Warnings        []string   `json:"warnings"`
	Alert           string     `json:"alert,omitempty"`
	ShouldCleanup   bool       `json:"should_cleanup"`
}

// RunSummary is the compact row persisted to the history index per monitor
// run, enough to render trends without re-reading full monitoring files.
type RunSummary struct {
	RunID          string    `json:"run_id"`
	Timestamp      time.Time `json:"timestamp"`
	UnusedTotal    int       `json:"unused_total"`
	HighRisk       int       `json:"high_risk"`
	MediumRisk     int       `json:"medium_risk"`
	LowRisk        int       `json:"low_risk"`
	DeadCodeBlocks int       `json:"dead_code_blocks"`
	Alerted        bool      `json:"alerted"`
}
