package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/grokify/releaseconductor/pkg/model"
)

// TableFormatter formats results as text tables.
type TableFormatter struct{}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{}
}

// FormatRunResult formats a release run summary as a text table.
func (f *TableFormatter) FormatRunResult(result *model.RunResult) (string, error) {
	var sb strings.Builder

	if result.DryRun {
		sb.WriteString("Release Dry Run")
	} else {
		sb.WriteString("Release")
	}
	sb.WriteString(fmt.Sprintf(" (%s)\n", result.Timestamp.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("%s %s | repo %s | tag %s\n",
		result.PackageName, result.Version, result.Repo.FullName(), result.Tag))
	sb.WriteString(strings.Repeat("-", 72) + "\n")

	sb.WriteString(fmt.Sprintf("%-14s %-10s %s\n", "STEP", "STATUS", "DETAIL"))
	sb.WriteString(strings.Repeat("-", 72) + "\n")

	for _, step := range result.Steps {
		sb.WriteString(fmt.Sprintf("%-14s %-10s %s\n",
			step.Name, step.Status, truncate(step.Detail, 46)))
	}

	if len(result.Artifacts) > 0 {
		sb.WriteString("\nArtifacts:\n")
		for _, a := range result.Artifacts {
			sb.WriteString("  " + filepath.Base(a) + "\n")
		}
	}

	return sb.String(), nil
}

// truncate shortens a string to maxLen characters.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
