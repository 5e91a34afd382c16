// Package manifest resolves the release version from configuration or from
// a setup.py-style package manifest.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// DefaultPath is the manifest consulted during auto-detection.
const DefaultPath = "setup.py"

// VersionAuto is the config sentinel requesting manifest auto-detection.
const VersionAuto = "auto"

// ErrVersionNotFound indicates the manifest lacks a version literal.
var ErrVersionNotFound = errors.New("version not found in manifest")

// versionPattern matches a quoted version literal assigned to a version
// field, e.g. version="0.2.0" or version = '1.2.3'.
var versionPattern = regexp.MustCompile(`version\s*=\s*["']([^"']+)["']`)

// ResolveVersion returns the concrete version for a run. A configured
// literal is returned verbatim, with no validation of its shape. When the
// configured value is empty or the "auto" sentinel, the manifest at
// manifestPath is read and the first version literal wins. A missing
// manifest is fatal during auto-detection, never a fallback.
func ResolveVersion(configured, manifestPath string) (string, error) {
	if configured != "" && configured != VersionAuto {
		return configured, nil
	}
	return Extract(manifestPath)
}

// Extract reads the manifest and returns the first version literal.
func Extract(manifestPath string) (string, error) {
	data, err := os.ReadFile(filepath.Clean(manifestPath)) // #nosec G304
	if err != nil {
		return "", fmt.Errorf("failed to read manifest %s: %w", manifestPath, err)
	}

	m := versionPattern.FindSubmatch(data)
	if m == nil {
		return "", fmt.Errorf("%w: %s", ErrVersionNotFound, manifestPath)
	}
	return string(m[1]), nil
}
