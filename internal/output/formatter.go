// Package output renders analysis results for the terminal.
package output

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/coderisk/deadscan/internal/models"
)

// Formatter defines output formatting interface
type Formatter interface {
	Format(report *models.Report, w io.Writer) error
}

// VerbosityLevel determines output detail
type VerbosityLevel int

const (
	VerbosityQuiet    VerbosityLevel = iota // one-line summary
	VerbosityStandard                       // counts, tiers, stages
	VerbosityJSON                           // machine-readable
)

// NewFormatter creates appropriate formatter based on level
func NewFormatter(level VerbosityLevel) Formatter {
	switch level {
	case VerbosityQuiet:
		return &QuietFormatter{}
	case VerbosityJSON:
		return &JSONFormatter{}
	default:
		return &StandardFormatter{}
	}
}

// GetDefaultVerbosity returns appropriate default based on environment.
// Pipes and CI get the quiet single line; interactive terminals get the
// full summary.
func GetDefaultVerbosity() VerbosityLevel {
	if os.Getenv("CI") == "true" {
		return VerbosityQuiet
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return VerbosityQuiet
	}
	return VerbosityStandard
}
