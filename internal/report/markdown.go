package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/grokify/releaseconductor/pkg/model"
)

// MarkdownFormatter formats results as Markdown.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new Markdown formatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// FormatRunResult formats a release run summary as Markdown.
func (f *MarkdownFormatter) FormatRunResult(result *model.RunResult) (string, error) {
	var sb strings.Builder

	if result.DryRun {
		sb.WriteString("# Release Dry Run\n\n")
	} else {
		sb.WriteString("# Release\n\n")
	}
	sb.WriteString(fmt.Sprintf("**%s %s**: `%s` tagged `%s` (%s)\n\n",
		result.PackageName, result.Version, result.Repo.FullName(), result.Tag,
		result.Timestamp.Format(time.RFC3339)))

	sb.WriteString("| Step | Status | Detail |\n")
	sb.WriteString("|------|--------|--------|\n")
	for _, step := range result.Steps {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", step.Name, step.Status, step.Detail))
	}

	if len(result.Artifacts) > 0 {
		sb.WriteString("\n## Artifacts\n\n")
		for _, a := range result.Artifacts {
			sb.WriteString("- `" + filepath.Base(a) + "`\n")
		}
	}

	return sb.String(), nil
}
