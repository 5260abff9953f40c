package risk

import (
	"testing"

	"github.com/coderisk/deadscan/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		funcName string
		filePath string
		kind     models.DefinitionKind
		expected models.RiskLevel
	}{
		{"entry file index", "leftover", "src/index.ts", models.KindFunctionDeclaration, models.RiskLevelHigh},
		{"entry file server", "spare", "lib/server.js", models.KindFunctionDeclaration, models.RiskLevelHigh},
		{"init name", "initCache", "src/cache.ts", models.KindFunctionDeclaration, models.RiskLevelHigh},
		{"setup name", "setupRoutes", "src/routes.ts", models.KindArrowFunction, models.RiskLevelHigh},
		{"class method", "unusedMember", "src/store.ts", models.KindClassMethod, models.RiskLevelHigh},
		{"instance method", "refreshSelf", "src/store.ts", models.KindInstanceMethod, models.RiskLevelHigh},
		{"utility file", "leftover", "src/string-utils.ts", models.KindFunctionDeclaration, models.RiskLevelMedium},
		{"helper name", "dateHelper", "src/dates.ts", models.KindFunctionDeclaration, models.RiskLevelMedium},
		{"underscore prefix", "_scratch", "src/dates.ts", models.KindFunctionDeclaration, models.RiskLevelLow},
		{"temp prefix", "tempBuffer", "src/dates.ts", models.KindFunctionDeclaration, models.RiskLevelLow},
		{"demo marker", "renderDemoChart", "src/charts.ts", models.KindFunctionDeclaration, models.RiskLevelLow},
		{"default", "obscureThing", "src/charts.ts", models.KindFunctionDeclaration, models.RiskLevelMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.funcName, tt.filePath, tt.kind); got != tt.expected {
				t.Errorf("Classify(%q, %q, %v) = %v, want %v",
					tt.funcName, tt.filePath, tt.kind, got, tt.expected)
			}
		})
	}
}

func TestClassifyRuleOrder(t *testing.T) {
	tests := []struct {
		name     string
		funcName string
		filePath string
		kind     models.DefinitionKind
		expected models.RiskLevel
	}{
		// init-name fires before utility-name
		{"initHelper is high", "initHelper", "src/misc.ts", models.KindFunctionDeclaration, models.RiskLevelHigh},
		// entry-file fires before everything
		{"temp name in entry file is high", "tempThing", "src/main.ts", models.KindFunctionDeclaration, models.RiskLevelHigh},
		// method-kind fires before throwaway-name
		{"temp method is high", "tempRender", "src/view.ts", models.KindInstanceMethod, models.RiskLevelHigh},
		// utility-file fires before throwaway-name
		{"temp name in util file is medium", "tempParse", "src/parse-util.ts", models.KindFunctionDeclaration, models.RiskLevelMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.funcName, tt.filePath, tt.kind); got != tt.expected {
				t.Errorf("Classify(%q, %q, %v) = %v, want %v",
					tt.funcName, tt.filePath, tt.kind, got, tt.expected)
			}
		})
	}
}

func TestClassifyStringForm(t *testing.T) {
	// tier names surface verbatim in reports and the history table
	if got := Classify("tempBuffer", "src/dates.ts", models.KindFunctionDeclaration).String(); got != "low" {
		t.Errorf("String() = %q, want %q", got, "low")
	}
	if got := Classify("obscureThing", "src/charts.ts", models.KindFunctionDeclaration).String(); got != "medium" {
		t.Errorf("String() = %q, want %q", got, "medium")
	}
}

func TestClassifyIsPure(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := Classify("dateHelper", "src/dates.ts", models.KindFunctionDeclaration); got != models.RiskLevelMedium {
			t.Fatalf("Classify changed across identical calls: %v", got)
		}
	}
}
