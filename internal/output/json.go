package output

import (
	"encoding/json"
	"io"

	"github.com/coderisk/deadscan/internal/models"
)

// JSONFormatter writes the raw report as indented JSON
type JSONFormatter struct{}

func (f *JSONFormatter) Format(report *models.Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
