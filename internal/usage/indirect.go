package usage

import (
	"os"
	"regexp"
)

// Detector finds indirect-use evidence that a lexical call-site search
// misses: string-keyed dispatch, call/apply invocation and event
// registration.
type Detector struct{}

// NewDetector creates a detector.
func NewDetector() *Detector {
	return &Detector{}
}

// IsIndirectlyCalled re-reads the definition's own file and reports whether
// the name appears as a quoted string literal, a call/apply string argument
// or an addEventListener string argument. Read or scan failures count as "no
// evidence found" and are never escalated.
func (d *Detector) IsIndirectlyCalled(name, path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return d.Scan(name, string(data))
}

// Scan checks source text for indirect-use evidence of name.
func (d *Detector) Scan(name, content string) bool {
	quoted := regexp.QuoteMeta(name)

	patterns := []string{
		`["']` + quoted + `["']`,
		`\.call\(.*["']` + quoted + `["']`,
		`\.apply\(.*["']` + quoted + `["']`,
		`addEventListener.*["']` + quoted + `["']`,
	}

	for _, expr := range patterns {
		re, err := regexp.Compile(expr)
		if err != nil {
			continue
		}
		if re.MatchString(content) {
			return true
		}
	}

	return false
}
