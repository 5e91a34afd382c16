// Package builder produces distributable package artifacts.
package builder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/grokify/releaseconductor/internal/shell"
)

// DefaultOutDir is the artifact output directory.
const DefaultOutDir = "dist"

// Builder defines the build operations used by the workflow.
type Builder interface {
	// EnsureTooling installs or upgrades the build tool.
	EnsureTooling(ctx context.Context) error

	// Build clears outDir and produces fresh source and binary
	// distributions into it. Clearing first avoids uploading stale
	// artifacts from a previous version.
	Build(ctx context.Context, outDir string) error
}

// Artifacts returns the built artifact paths under outDir, sorted.
func Artifacts(outDir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(outDir, "*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	sort.Strings(matches)
	return matches, nil
}

// Python builds sdist and wheel distributions with the PyPA build tool.
type Python struct {
	runner *shell.Runner

	// Interpreter is the Python executable. Default "python".
	Interpreter string
}

// NewPython creates a Python builder running commands through runner.
func NewPython(runner *shell.Runner) *Python {
	return &Python{runner: runner, Interpreter: "python"}
}

// EnsureTooling installs or upgrades the build package.
func (b *Python) EnsureTooling(ctx context.Context) error {
	_, err := b.runner.Run(ctx, b.Interpreter, "-m", "pip", "install", "--upgrade", "build")
	if err != nil {
		return fmt.Errorf("failed to install build tooling: %w", err)
	}
	return nil
}

// Build clears outDir and runs python -m build.
func (b *Python) Build(ctx context.Context, outDir string) error {
	if err := os.RemoveAll(outDir); err != nil {
		return fmt.Errorf("failed to clear %s: %w", outDir, err)
	}

	_, err := b.runner.Run(ctx, b.Interpreter, "-m", "build", "--sdist", "--wheel", "--outdir", outDir)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	return nil
}
