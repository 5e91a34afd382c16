// Package config loads the flat release.yaml configuration file.
//
// The loader is intentionally a minimal flat "key: value" reader, not a
// YAML parser: it understands exactly the subset the release config uses
// (one key per line, optional quoting, # comments) and nothing else.
// Nested structures, lists and multi-line values are not supported. It is
// isolated behind Load so a structured parser could replace it without
// touching the orchestrator.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grokify/releaseconductor/pkg/model"
)

// DefaultPath is the config file consulted when no path is given.
const DefaultPath = "release.yaml"

var (
	// ErrNotFound indicates the config file does not exist.
	ErrNotFound = errors.New("config file not found")

	// ErrInvalid indicates a required key is missing or malformed.
	ErrInvalid = errors.New("invalid config")
)

// ReleaseConfig holds the recognized release.yaml keys.
type ReleaseConfig struct {
	// Repo is the owner/name repository identifier. Required.
	Repo string `json:"repo" yaml:"repo"`

	// PackageName is the display name used in release titles. Defaults to
	// the repository name.
	PackageName string `json:"package_name" yaml:"package_name"`

	// Version is a literal version or the sentinel "auto".
	Version string `json:"version" yaml:"version"`

	// TagPrefix is prepended to the version to form the tag. Default "v".
	TagPrefix string `json:"tag_prefix" yaml:"tag_prefix"`

	// TargetBranch is the branch released from. Default "main".
	TargetBranch string `json:"target_branch" yaml:"target_branch"`

	// ReleaseNotesFile is an optional path to the release body document.
	ReleaseNotesFile string `json:"release_notes_file" yaml:"release_notes_file"`

	// Draft marks the hosted release as a draft.
	Draft bool `json:"draft" yaml:"draft"`

	// Prerelease marks the hosted release as a prerelease.
	Prerelease bool `json:"prerelease" yaml:"prerelease"`
}

// Default returns a ReleaseConfig with all defaults applied.
func Default() *ReleaseConfig {
	return &ReleaseConfig{
		TagPrefix:    "v",
		TargetBranch: "main",
	}
}

// Load reads the config file at path and returns a ReleaseConfig with
// defaults applied for absent keys. Unknown keys are ignored.
func Load(path string) (*ReleaseConfig, error) {
	cleanPath := filepath.Clean(path)
	f, err := os.Open(cleanPath) // #nosec G304
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg := Default()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		cfg.set(key, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

// Validate checks required keys. It must pass before any mutating action.
func (c *ReleaseConfig) Validate() error {
	if strings.TrimSpace(c.Repo) == "" {
		return fmt.Errorf("%w: repo is required", ErrInvalid)
	}
	return nil
}

// ApplyDefaults fills derived defaults that depend on other keys.
func (c *ReleaseConfig) ApplyDefaults() {
	if c.PackageName == "" && c.Repo != "" {
		c.PackageName = model.ParseRepoRef(c.Repo).Name
	}
	if c.TagPrefix == "" {
		c.TagPrefix = "v"
	}
	if c.TargetBranch == "" {
		c.TargetBranch = "main"
	}
}

// RepoRef returns the parsed repository reference.
func (c *ReleaseConfig) RepoRef() model.RepoRef {
	return model.ParseRepoRef(c.Repo)
}

func (c *ReleaseConfig) set(key, value string) {
	switch key {
	case "repo":
		c.Repo = value
	case "package_name":
		c.PackageName = value
	case "version":
		c.Version = value
	case "tag_prefix":
		c.TagPrefix = value
	case "target_branch":
		c.TargetBranch = value
	case "release_notes_file":
		c.ReleaseNotesFile = value
	case "draft":
		c.Draft = parseBool(value)
	case "prerelease":
		c.Prerelease = parseBool(value)
	}
	// Unknown keys are ignored for forward compatibility.
}

// parseLine splits a "key: value" line. Blank lines, comments and lines
// without a colon separator are skipped.
func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", false
	}

	key = strings.TrimSpace(line[:idx])
	value = unquote(strings.TrimSpace(line[idx+1:]))
	if key == "" {
		return "", "", false
	}
	return key, value, true
}

// unquote strips one matching pair of single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		return true
	}
	return false
}
