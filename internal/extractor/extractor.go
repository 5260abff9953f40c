// Package extractor pulls definition, call, export and import symbols out of
// source files using line-oriented pattern rules.
//
// The rules are deliberately heuristic: they cannot see multi-line
// signatures, nested scopes or shadowing, and overlapping rules may record
// the same definition more than once. That over-approximation is part of the
// observable contract, not a bug to be fixed silently.
package extractor

import (
	"regexp"
	"strings"

	"github.com/coderisk/deadscan/internal/models"
)

var definitionPatterns = []*regexp.Regexp{
	// function declaration: function name() {
	regexp.MustCompile(`function\s+(\w+)\s*\([^)]*\)\s*\{`),
	// bound arrow function: const name = () =>
	regexp.MustCompile(`(?:const|let|var)\s+(\w+)\s*=\s*(?:\([^)]*\)|[^=])\s*=>`),
	// method-shaped declaration: name() { (object literal or class body)
	regexp.MustCompile(`(?:(?:async\s+)?(?:\w+\s*)?)(\w+)\s*\([^)]*\)\s*\{`),
	// class method shorthand: async name() {
	regexp.MustCompile(`(?:async\s+)?(\w+)\s*\([^)]*\)\s*\{`),
	// exported function declaration
	regexp.MustCompile(`export\s+(?:async\s+)?function\s+(\w+)`),
	// exported bound value
	regexp.MustCompile(`export\s+(?:const|let|var)\s+(\w+)\s*=`),
}

var callPatterns = []*regexp.Regexp{
	// direct call: name(
	regexp.MustCompile(`(\w+)\s*\(`),
	// member call: .name(
	regexp.MustCompile(`\.(\w+)\s*\(`),
	// implicit-instance receiver: this.name(
	regexp.MustCompile(`this\.(\w+)\s*\(`),
}

var (
	exportFunctionPattern = regexp.MustCompile(`export\s+(?:async\s+)?function\s+(\w+)`)
	exportBindingPattern  = regexp.MustCompile(`export\s+(?:const|let|var)\s+(\w+)\s*=`)
	exportBracePattern    = regexp.MustCompile(`export\s*\{\s*([^}]+)\s*\}`)

	importBracePattern   = regexp.MustCompile(`import\s*\{\s*([^}]+)\s*\}\s*from`)
	importDefaultPattern = regexp.MustCompile(`import\s+(\w+)\s+from`)

	identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

// reservedNames are keywords and common globals that the loose \w+ patterns
// would otherwise pick up as definitions or calls.
var reservedNames = map[string]struct{}{
	"if": {}, "else": {}, "for": {}, "while": {}, "switch": {}, "case": {},
	"break": {}, "continue": {}, "return": {}, "try": {}, "catch": {},
	"finally": {}, "throw": {}, "new": {}, "typeof": {}, "instanceof": {},
	"in": {}, "of": {}, "class": {}, "extends": {}, "super": {}, "static": {},
	"async": {}, "await": {}, "yield": {}, "let": {}, "const": {}, "var": {},
	"function": {}, "true": {}, "false": {}, "null": {}, "undefined": {},
	"this": {}, "self": {}, "window": {}, "document": {}, "console": {},
	"process": {}, "require": {}, "import": {}, "export": {}, "default": {},
	"from": {}, "as": {}, "with": {}, "debugger": {}, "delete": {}, "void": {},
}

// Extractor parses source text into per-file symbol sets.
type Extractor struct{}

// New creates an extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract runs all pattern rules over the given source text.
func (e *Extractor) Extract(content string) *models.FileExtraction {
	lines := strings.Split(content, "\n")

	result := &models.FileExtraction{
		Calls:   make(map[string]struct{}),
		Exports: make(map[string]struct{}),
		Imports: make(map[string]struct{}),
	}

	for i, line := range lines {
		lineNo := i + 1
		result.Definitions = append(result.Definitions, extractDefinitions(line, lineNo)...)
		extractCalls(line, result.Calls)
		extractExports(line, result.Exports)
		extractImports(line, result.Imports)
	}

	return result
}

// extractDefinitions applies every definition rule to one line. Rules are
// independent; a line matching several rules yields several records.
func extractDefinitions(line string, lineNo int) []models.DefinitionRecord {
	var defs []models.DefinitionRecord

	for _, pattern := range definitionPatterns {
		for _, match := range pattern.FindAllStringSubmatch(line, -1) {
			name := match[1]
			if !IsValidFunctionName(name) {
				continue
			}
			defs = append(defs, models.DefinitionRecord{
				Name:     name,
				Line:     lineNo,
				Kind:     determineKind(line),
				Exported: strings.Contains(line, "export"),
				Async:    strings.Contains(line, "async"),
				Content:  strings.TrimSpace(line),
			})
		}
	}

	return defs
}

// extractCalls records identifiers observed in call position. Lines that look
// like definitions are skipped wholesale to reduce self-matching.
func extractCalls(line string, calls map[string]struct{}) {
	for _, keyword := range []string{"function", "=>", "const", "let", "var"} {
		if strings.Contains(line, keyword) {
			return
		}
	}

	for _, pattern := range callPatterns {
		for _, match := range pattern.FindAllStringSubmatch(line, -1) {
			if name := match[1]; IsValidFunctionName(name) {
				calls[name] = struct{}{}
			}
		}
	}
}

// extractExports records exported binding names. For brace-list re-exports
// the alias target is recorded: "export { x as y }" records y, the name
// importers see.
func extractExports(line string, exports map[string]struct{}) {
	if m := exportFunctionPattern.FindStringSubmatch(line); m != nil {
		exports[m[1]] = struct{}{}
	}
	if m := exportBindingPattern.FindStringSubmatch(line); m != nil {
		exports[m[1]] = struct{}{}
	}
	if m := exportBracePattern.FindStringSubmatch(line); m != nil {
		for _, item := range strings.Split(m[1], ",") {
			name := strings.TrimSpace(item)
			if _, after, found := strings.Cut(name, " as "); found {
				name = strings.TrimSpace(after)
			}
			if name != "" {
				exports[name] = struct{}{}
			}
		}
	}
}

// extractImports records imported binding names; "import { x as y }" records
// y, the local binding.
func extractImports(line string, imports map[string]struct{}) {
	if m := importBracePattern.FindStringSubmatch(line); m != nil {
		for _, item := range strings.Split(m[1], ",") {
			name := strings.TrimSpace(item)
			if _, after, found := strings.Cut(name, " as "); found {
				name = strings.TrimSpace(after)
			}
			if name != "" {
				imports[name] = struct{}{}
			}
		}
		return
	}
	if m := importDefaultPattern.FindStringSubmatch(line); m != nil {
		imports[m[1]] = struct{}{}
	}
}

// IsValidFunctionName reports whether name is a plausible function
// identifier: syntactically valid, longer than one character and not a
// keyword or common global.
func IsValidFunctionName(name string) bool {
	if len(name) <= 1 {
		return false
	}
	if !identifierPattern.MatchString(name) {
		return false
	}
	_, reserved := reservedNames[name]
	return !reserved
}

// determineKind infers the definition kind from the shape of its line.
func determineKind(line string) models.DefinitionKind {
	switch {
	case strings.Contains(line, "function"):
		return models.KindFunctionDeclaration
	case strings.Contains(line, "=>"):
		return models.KindArrowFunction
	case strings.Contains(line, "class"):
		return models.KindClassMethod
	case strings.Contains(line, "this."):
		return models.KindInstanceMethod
	default:
		return models.KindMethod
	}
}
