package workflow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grokify/releaseconductor/internal/config"
)

func TestResolve_ExplicitVersion(t *testing.T) {
	cfg := config.Default()
	cfg.Repo = "grokify/ezenviron"
	cfg.Version = "9.9.9"
	cfg.ApplyDefaults()

	// Manifest absent: an explicit version must never read it.
	rel, err := Resolve(cfg, filepath.Join(t.TempDir(), "setup.py"))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if rel.Version != "9.9.9" {
		t.Errorf("expected version 9.9.9, got %s", rel.Version)
	}
	if rel.Tag != "v9.9.9" {
		t.Errorf("expected tag v9.9.9, got %s", rel.Tag)
	}
}

func TestResolve_AutoVersionFromManifest(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "setup.py")
	if err := os.WriteFile(manifestPath, []byte(`version = "1.2.3"`), 0600); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	cfg := config.Default()
	cfg.Repo = "grokify/ezenviron"
	cfg.Version = "auto"
	cfg.ApplyDefaults()

	rel, err := Resolve(cfg, manifestPath)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if rel.Tag != "v1.2.3" {
		t.Errorf("expected tag v1.2.3, got %s", rel.Tag)
	}
}

func TestResolve_CustomTagPrefix(t *testing.T) {
	cfg := config.Default()
	cfg.Repo = "grokify/ezenviron"
	cfg.Version = "1.0.0"
	cfg.TagPrefix = "release-"
	cfg.ApplyDefaults()

	rel, err := Resolve(cfg, "setup.py")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if rel.Tag != "release-1.0.0" {
		t.Errorf("expected tag release-1.0.0, got %s", rel.Tag)
	}
}

func TestResolve_NotesFilePresent(t *testing.T) {
	dir := t.TempDir()
	notesPath := filepath.Join(dir, "NOTES.md")
	if err := os.WriteFile(notesPath, []byte("## Changes\n"), 0600); err != nil {
		t.Fatalf("failed to write notes: %v", err)
	}

	cfg := config.Default()
	cfg.Repo = "grokify/ezenviron"
	cfg.Version = "1.0.0"
	cfg.ReleaseNotesFile = notesPath
	cfg.ApplyDefaults()

	rel, err := Resolve(cfg, "setup.py")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if rel.NotesFile != notesPath {
		t.Errorf("expected notes file %s, got %q", notesPath, rel.NotesFile)
	}
	if rel.NotesBody != "" {
		t.Errorf("expected no fallback body when notes file exists, got %q", rel.NotesBody)
	}
}

func TestResolve_NotesFileAbsentFallsBack(t *testing.T) {
	cfg := config.Default()
	cfg.Repo = "grokify/ezenviron"
	cfg.Version = "1.0.0"
	cfg.ReleaseNotesFile = filepath.Join(t.TempDir(), "missing.md")
	cfg.ApplyDefaults()

	rel, err := Resolve(cfg, "setup.py")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if rel.NotesFile != "" {
		t.Errorf("expected empty notes file, got %q", rel.NotesFile)
	}
	if rel.NotesBody != "Release v1.0.0" {
		t.Errorf("expected fallback body, got %q", rel.NotesBody)
	}
}
