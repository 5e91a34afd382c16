package builder

import (
	"os"
	"path/filepath"
	"testing"
)

func TestArtifacts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"pkg-1.0.0.tar.gz", "pkg-1.0.0-py3-none-any.whl"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("artifact"), 0600); err != nil {
			t.Fatalf("failed to write artifact: %v", err)
		}
	}

	artifacts, err := Artifacts(dir)
	if err != nil {
		t.Fatalf("Artifacts returned error: %v", err)
	}
	if len(artifacts) != 2 {
		t.Fatalf("expected 2 artifacts, got %d", len(artifacts))
	}
	if filepath.Base(artifacts[0]) != "pkg-1.0.0-py3-none-any.whl" {
		t.Errorf("expected sorted order, got %v", artifacts)
	}
}

func TestArtifacts_EmptyDir(t *testing.T) {
	artifacts, err := Artifacts(t.TempDir())
	if err != nil {
		t.Fatalf("Artifacts returned error: %v", err)
	}
	if len(artifacts) != 0 {
		t.Errorf("expected no artifacts, got %v", artifacts)
	}
}
