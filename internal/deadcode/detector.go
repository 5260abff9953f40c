// Package deadcode finds statements that can never execute, such as code
// following an unconditional return.
package deadcode

import (
	"fmt"
	"strings"

	"github.com/coderisk/deadscan/internal/models"
)

var terminators = []string{"return ", "break;", "continue;"}

// Detector scans source text for unreachable code blocks.
type Detector struct{}

// New creates a detector.
func New() *Detector {
	return &Detector{}
}

// Scan reports the first reachable-looking statement after each terminator
// line. Closing braces and switch labels end a block legitimately and are
// not flagged; comments and blank lines are skipped.
func (d *Detector) Scan(path, content string) []models.DeadCodeBlock {
	var blocks []models.DeadCodeBlock
	lines := strings.Split(content, "\n")

	for i, line := range lines {
		if !containsTerminator(line) {
			continue
		}

		for j := i + 1; j < len(lines); j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/*") {
				continue
			}
			if !strings.HasPrefix(next, "}") && !strings.HasPrefix(next, "case") && !strings.HasPrefix(next, "default") {
				blocks = append(blocks, models.DeadCodeBlock{
					File:    path,
					Line:    j + 1,
					Type:    "unreachable_after_return",
					Content: next,
					Context: fmt.Sprintf("after %s", strings.TrimSpace(line)),
				})
			}
			break
		}
	}

	return blocks
}

func containsTerminator(line string) bool {
	for _, t := range terminators {
		if strings.Contains(line, t) {
			return true
		}
	}
	return false
}
