// Package usage aggregates per-file extraction results into a project-wide
// view and classifies definitions as used or unused.
package usage

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/coderisk/deadscan/internal/config"
	"github.com/coderisk/deadscan/internal/models"
)

// Project is the aggregated project-wide usage view: per-file definitions
// plus flat union sets of every call, export and import seen anywhere.
type Project struct {
	Definitions map[string][]models.DefinitionRecord
	AllCalls    map[string]struct{}
	AllExports  map[string]struct{}
	AllImports  map[string]struct{}
}

// BuildProject reduces immutable per-file extractions into one Project by
// pure set union. The inputs are not mutated.
func BuildProject(files map[string]*models.FileExtraction) *Project {
	p := &Project{
		Definitions: make(map[string][]models.DefinitionRecord),
		AllCalls:    make(map[string]struct{}),
		AllExports:  make(map[string]struct{}),
		AllImports:  make(map[string]struct{}),
	}

	for path, fe := range files {
		if len(fe.Definitions) > 0 {
			p.Definitions[path] = fe.Definitions
		}
		for name := range fe.Calls {
			p.AllCalls[name] = struct{}{}
		}
		for name := range fe.Exports {
			p.AllExports[name] = struct{}{}
		}
		for name := range fe.Imports {
			p.AllImports[name] = struct{}{}
		}
	}

	return p
}

// DefinedCount returns the total number of definition records.
func (p *Project) DefinedCount() int {
	n := 0
	for _, defs := range p.Definitions {
		n += len(defs)
	}
	return n
}

// Files returns the definition-owning file paths in sorted order, so callers
// iterate deterministically.
func (p *Project) Files() []string {
	files := make([]string, 0, len(p.Definitions))
	for path := range p.Definitions {
		files = append(files, path)
	}
	sort.Strings(files)
	return files
}

// Analyzer decides which definitions are unused.
type Analyzer struct {
	protected []*regexp.Regexp
	test      []*regexp.Regexp
	detector  *Detector
}

// NewAnalyzer builds a usage analyzer from the configured allowlists.
func NewAnalyzer(patterns *config.Patterns) (*Analyzer, error) {
	protected, test, err := patterns.Compile()
	if err != nil {
		return nil, err
	}
	return &Analyzer{
		protected: protected,
		test:      test,
		detector:  NewDetector(),
	}, nil
}

// UnusedByFile returns, per file, the definitions with no usage evidence:
// not exported, not in the export set, not protected by naming convention,
// absent from the project-wide call set and without indirect-use evidence in
// their own file.
func (a *Analyzer) UnusedByFile(p *Project) map[string][]models.DefinitionRecord {
	unused := make(map[string][]models.DefinitionRecord)

	for _, path := range p.Files() {
		var fileUnused []models.DefinitionRecord
		seen := make(map[string]struct{})
		for _, def := range p.Definitions[path] {
			// Overlapping extraction rules record the same definition more
			// than once; one finding per (name, line) is enough.
			key := fmt.Sprintf("%s:%d", def.Name, def.Line)
			if _, dup := seen[key]; dup {
				continue
			}
			if a.shouldSkip(def, p.AllExports) {
				continue
			}
			if _, called := p.AllCalls[def.Name]; called {
				continue
			}
			// Cheap set membership said "unused"; the expensive textual
			// re-scan runs only for this minority.
			if a.detector.IsIndirectlyCalled(def.Name, path) {
				continue
			}
			seen[key] = struct{}{}
			fileUnused = append(fileUnused, def)
		}
		if len(fileUnused) > 0 {
			unused[path] = fileUnused
		}
	}

	return unused
}

// shouldSkip excludes definitions from unused candidacy outright: exported
// ones may be consumed outside the tree, and protected or test-convention
// names are invoked by frameworks the extractor cannot see.
func (a *Analyzer) shouldSkip(def models.DefinitionRecord, allExports map[string]struct{}) bool {
	if def.Exported {
		return true
	}
	if _, exported := allExports[def.Name]; exported {
		return true
	}
	for _, re := range a.protected {
		if re.MatchString(def.Name) {
			return true
		}
	}
	for _, re := range a.test {
		if re.MatchString(def.Name) {
			return true
		}
	}
	return false
}
