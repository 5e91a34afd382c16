// Package report formats release run summaries.
package report

import "github.com/grokify/releaseconductor/pkg/model"

// Formatter defines the interface for formatting run results.
type Formatter interface {
	// FormatRunResult formats a release run summary.
	FormatRunResult(result *model.RunResult) (string, error)
}

// New returns the formatter for the named format. Unknown formats fall
// back to the table formatter.
func New(format string) Formatter {
	switch format {
	case "json":
		return NewJSONFormatter()
	case "yaml", "yml":
		return NewYAMLFormatter()
	case "markdown", "md":
		return NewMarkdownFormatter()
	default:
		return NewTableFormatter()
	}
}
