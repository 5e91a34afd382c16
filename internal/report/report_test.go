package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/grokify/releaseconductor/pkg/model"
)

func sampleResult() *model.RunResult {
	result := &model.RunResult{
		Timestamp:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Repo:        model.RepoRef{Owner: "grokify", Name: "ezenviron"},
		PackageName: "ezenviron",
		Version:     "1.2.3",
		Tag:         "v1.2.3",
		TagCreated:  true,
		ReleaseNew:  true,
		Artifacts:   []string{"dist/ezenviron-1.2.3.tar.gz"},
	}
	result.AddStep("authenticate", model.StepExecuted, "hosting session valid")
	result.AddStep("tag", model.StepExecuted, "created annotated tag v1.2.3")
	return result
}

func TestNew_SelectsFormatter(t *testing.T) {
	tests := []struct {
		format string
		want   Formatter
	}{
		{"json", &JSONFormatter{}},
		{"yaml", &YAMLFormatter{}},
		{"yml", &YAMLFormatter{}},
		{"markdown", &MarkdownFormatter{}},
		{"md", &MarkdownFormatter{}},
		{"table", &TableFormatter{}},
		{"", &TableFormatter{}},
		{"bogus", &TableFormatter{}},
	}

	for _, tt := range tests {
		got := New(tt.format)
		if gotType, wantType := typeName(got), typeName(tt.want); gotType != wantType {
			t.Errorf("New(%q) = %s, want %s", tt.format, gotType, wantType)
		}
	}
}

func typeName(f Formatter) string {
	switch f.(type) {
	case *JSONFormatter:
		return "json"
	case *YAMLFormatter:
		return "yaml"
	case *MarkdownFormatter:
		return "markdown"
	default:
		return "table"
	}
}

func TestTableFormatter(t *testing.T) {
	out, err := NewTableFormatter().FormatRunResult(sampleResult())
	if err != nil {
		t.Fatalf("FormatRunResult returned error: %v", err)
	}

	for _, want := range []string{"ezenviron 1.2.3", "v1.2.3", "authenticate", "executed", "ezenviron-1.2.3.tar.gz"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestTableFormatter_DryRun(t *testing.T) {
	result := sampleResult()
	result.DryRun = true

	out, err := NewTableFormatter().FormatRunResult(result)
	if err != nil {
		t.Fatalf("FormatRunResult returned error: %v", err)
	}
	if !strings.Contains(out, "Dry Run") {
		t.Errorf("expected dry-run heading:\n%s", out)
	}
}

func TestJSONFormatter_RoundTrips(t *testing.T) {
	out, err := NewJSONFormatter().FormatRunResult(sampleResult())
	if err != nil {
		t.Fatalf("FormatRunResult returned error: %v", err)
	}

	var decoded model.RunResult
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Tag != "v1.2.3" {
		t.Errorf("expected tag v1.2.3, got %s", decoded.Tag)
	}
	if len(decoded.Steps) != 2 {
		t.Errorf("expected 2 steps, got %d", len(decoded.Steps))
	}
}

func TestYAMLFormatter_RoundTrips(t *testing.T) {
	out, err := NewYAMLFormatter().FormatRunResult(sampleResult())
	if err != nil {
		t.Fatalf("FormatRunResult returned error: %v", err)
	}

	var decoded model.RunResult
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.Version != "1.2.3" {
		t.Errorf("expected version 1.2.3, got %s", decoded.Version)
	}
}

func TestMarkdownFormatter(t *testing.T) {
	out, err := NewMarkdownFormatter().FormatRunResult(sampleResult())
	if err != nil {
		t.Fatalf("FormatRunResult returned error: %v", err)
	}

	for _, want := range []string{"# Release", "| Step | Status | Detail |", "| tag | executed |"} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q:\n%s", want, out)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(short, 10) = %q", got)
	}
	if got := truncate("a very long detail string", 10); got != "a very ..." {
		t.Errorf("truncate long = %q", got)
	}
}
