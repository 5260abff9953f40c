// Package risk assigns removal-risk tiers to unused definitions.
package risk

import (
	"path/filepath"
	"strings"

	"github.com/coderisk/deadscan/internal/models"
)

// rule pairs a predicate with the tier it assigns. Rules are evaluated top
// to bottom and the first match wins, so each rule is independently testable
// and reorderable.
type rule struct {
	name      string
	applies   func(name, fileName string, kind models.DefinitionKind) bool
	level     models.RiskLevel
	rationale string
}

var entryFileMarkers = []string{"index", "main", "app", "server"}
var initNameMarkers = []string{"init", "setup", "config", "start"}
var utilityFileMarkers = []string{"util", "helper", "service", "manager"}
var utilityNameMarkers = []string{"helper", "util", "service"}
var throwawayNameMarkers = []string{"temp", "test", "demo", "example"}

// rules misclassify upward on ambiguity: marking something usable as LOW
// costs more than being over-cautious.
var rules = []rule{
	{
		name: "entry-file",
		applies: func(_, fileName string, _ models.DefinitionKind) bool {
			return containsAny(fileName, entryFileMarkers)
		},
		level:     models.RiskLevelHigh,
		rationale: "entry files are assumed reachable from outside static analysis",
	},
	{
		name: "init-name",
		applies: func(name, _ string, _ models.DefinitionKind) bool {
			return containsAny(strings.ToLower(name), initNameMarkers)
		},
		level:     models.RiskLevelHigh,
		rationale: "initialization hooks may be invoked by frameworks",
	},
	{
		name: "method-kind",
		applies: func(_, _ string, kind models.DefinitionKind) bool {
			return kind == models.KindClassMethod || kind == models.KindInstanceMethod
		},
		level:     models.RiskLevelHigh,
		rationale: "methods may be reached via dynamic dispatch",
	},
	{
		name: "utility-file",
		applies: func(_, fileName string, _ models.DefinitionKind) bool {
			return containsAny(fileName, utilityFileMarkers)
		},
		level:     models.RiskLevelMedium,
		rationale: "utility modules may be consumed by tests or siblings",
	},
	{
		name: "utility-name",
		applies: func(name, _ string, _ models.DefinitionKind) bool {
			return containsAny(strings.ToLower(name), utilityNameMarkers)
		},
		level:     models.RiskLevelMedium,
		rationale: "helper functions may be consumed by tests or siblings",
	},
	{
		name: "throwaway-name",
		applies: func(name, _ string, _ models.DefinitionKind) bool {
			if strings.HasPrefix(name, "_") || strings.HasPrefix(name, "temp") {
				return true
			}
			return containsAny(strings.ToLower(name), throwawayNameMarkers)
		},
		level:     models.RiskLevelLow,
		rationale: "obviously internal or temporary",
	},
}

// Classify returns the risk tier for a definition. The result is a pure
// function of (name, file path, kind); unmatched definitions default to
// MEDIUM as the conservative middle ground.
func Classify(name, filePath string, kind models.DefinitionKind) models.RiskLevel {
	fileName := filepath.Base(filePath)
	for _, r := range rules {
		if r.applies(name, fileName, kind) {
			return r.level
		}
	}
	return models.RiskLevelMedium
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
