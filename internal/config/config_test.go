package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "release.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_AllKeys(t *testing.T) {
	path := writeConfig(t, `# release configuration
repo: grokify/releaseconductor
package_name: releaseconductor
version: 1.2.3
tag_prefix: rel-
target_branch: develop
release_notes_file: NOTES.md
draft: true
prerelease: yes
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Repo != "grokify/releaseconductor" {
		t.Errorf("expected repo grokify/releaseconductor, got %s", cfg.Repo)
	}
	if cfg.Version != "1.2.3" {
		t.Errorf("expected version 1.2.3, got %s", cfg.Version)
	}
	if cfg.TagPrefix != "rel-" {
		t.Errorf("expected tag prefix rel-, got %s", cfg.TagPrefix)
	}
	if cfg.TargetBranch != "develop" {
		t.Errorf("expected branch develop, got %s", cfg.TargetBranch)
	}
	if cfg.ReleaseNotesFile != "NOTES.md" {
		t.Errorf("expected notes file NOTES.md, got %s", cfg.ReleaseNotesFile)
	}
	if !cfg.Draft {
		t.Error("expected draft to be true")
	}
	if !cfg.Prerelease {
		t.Error("expected prerelease to be true")
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "repo: grokify/releaseconductor\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.TagPrefix != "v" {
		t.Errorf("expected default tag prefix v, got %s", cfg.TagPrefix)
	}
	if cfg.TargetBranch != "main" {
		t.Errorf("expected default branch main, got %s", cfg.TargetBranch)
	}
	if cfg.PackageName != "releaseconductor" {
		t.Errorf("expected package name derived from repo, got %s", cfg.PackageName)
	}
	if cfg.Draft || cfg.Prerelease {
		t.Error("expected draft and prerelease to default to false")
	}
}

func TestLoad_QuotedValues(t *testing.T) {
	quoted, err := Load(writeConfig(t, `repo: "grokify/releaseconductor"`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	single, err := Load(writeConfig(t, `repo: 'grokify/releaseconductor'`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	bare, err := Load(writeConfig(t, `repo: grokify/releaseconductor`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if quoted.Repo != bare.Repo || single.Repo != bare.Repo {
		t.Errorf("quoted values should resolve identically: %q %q %q",
			quoted.Repo, single.Repo, bare.Repo)
	}
}

func TestLoad_SkipsMalformedLines(t *testing.T) {
	path := writeConfig(t, `# comment

this line has no separator
repo: grokify/releaseconductor
version 9.9.9
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Repo != "grokify/releaseconductor" {
		t.Errorf("expected repo to parse, got %s", cfg.Repo)
	}
	if cfg.Version != "" {
		t.Errorf("colon-less line should be skipped, got version %s", cfg.Version)
	}
}

func TestLoad_IgnoresUnknownKeys(t *testing.T) {
	path := writeConfig(t, `repo: grokify/releaseconductor
future_key: something
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Repo != "grokify/releaseconductor" {
		t.Errorf("unexpected repo: %s", cfg.Repo)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestValidate_MissingRepo(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}

	cfg.Repo = "grokify/releaseconductor"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"true", true},
		{"True", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := parseBool(tt.in); got != tt.want {
			t.Errorf("parseBool(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
