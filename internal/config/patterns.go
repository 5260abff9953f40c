package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Patterns holds the name-based allowlists that exclude definitions from
// unused candidacy. Protected names are excluded outright, not down-ranked.
type Patterns struct {
	// Lifecycle hooks, event handlers and framework callbacks.
	Protected []string `yaml:"protected"`
	// Test-framework function naming conventions.
	Test []string `yaml:"test"`
}

// DefaultPatterns returns the built-in allowlists.
func DefaultPatterns() *Patterns {
	return &Patterns{
		Protected: []string{
			`^on[A-Z]`,
			`^handle[A-Z]`,
			`^render`,
			`^componentDid`,
			`^useEffect`,
			`^useState`,
			`^\w+Listener$`,
			`^\w+Handler$`,
		},
		Test: []string{
			`^test`,
			`^it`,
			`^describe`,
			`^before`,
			`^after`,
		},
	}
}

// LoadPatterns reads pattern overrides from <root>/.deadscan/patterns.yaml,
// falling back to the defaults when the file does not exist.
func LoadPatterns(root string) (*Patterns, error) {
	path := filepath.Join(ToolDir(root), "patterns.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultPatterns(), nil
		}
		return nil, fmt.Errorf("failed to read patterns file: %w", err)
	}

	var p Patterns
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse patterns file %s: %w", path, err)
	}

	// Empty sections fall back to the built-ins so a partial override file
	// does not silently disable a whole allowlist.
	defaults := DefaultPatterns()
	if len(p.Protected) == 0 {
		p.Protected = defaults.Protected
	}
	if len(p.Test) == 0 {
		p.Test = defaults.Test
	}

	return &p, nil
}

// Save writes the patterns file under the project tooling directory.
func (p *Patterns) Save(root string) error {
	dir := ToolDir(root)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create tool directory: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal patterns: %w", err)
	}

	path := filepath.Join(dir, "patterns.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write patterns file: %w", err)
	}

	return nil
}

// Compile validates every pattern and returns them as regexps, protected
// first, then test.
func (p *Patterns) Compile() (protected, test []*regexp.Regexp, err error) {
	for _, expr := range p.Protected {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid protected pattern %q: %w", expr, err)
		}
		protected = append(protected, re)
	}
	for _, expr := range p.Test {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid test pattern %q: %w", expr, err)
		}
		test = append(test, re)
	}
	return protected, test, nil
}
