// Package git provides the version-control operations the release
// workflow consumes.
package git

import (
	"context"

	"github.com/Masterminds/semver/v3"
)

// Client defines the version-control operations used by the workflow.
// The real implementation shells out to the git CLI; tests substitute a
// recording fake.
type Client interface {
	// MarkSafeDirectory marks dir as trusted for git operations.
	MarkSafeDirectory(ctx context.Context, dir string) error

	// Checkout switches the working tree to branch.
	Checkout(ctx context.Context, branch string) error

	// PullFastForward fast-forwards branch from remote. It fails when the
	// local history has diverged; this tool never merges or rebases.
	PullFastForward(ctx context.Context, remote, branch string) error

	// Status returns porcelain status output; empty means a clean tree.
	Status(ctx context.Context) (string, error)

	// TagExists reports whether tag exists locally.
	TagExists(ctx context.Context, tag string) (bool, error)

	// CreateTag creates an annotated tag with the given message.
	CreateTag(ctx context.Context, tag, message string) error

	// ListTags returns all local tag names.
	ListTags(ctx context.Context) ([]string, error)

	// Push publishes branch and all tags to remote.
	Push(ctx context.Context, remote, branch string) error
}

// LatestSemverTag returns the highest semantic version among tags, or ""
// when none parse as semver. A tag prefix such as "v" is tolerated.
func LatestSemverTag(tags []string) string {
	var latest *semver.Version
	var latestTag string

	for _, tag := range tags {
		v, err := semver.NewVersion(tag)
		if err != nil {
			continue
		}
		if latest == nil || v.GreaterThan(latest) {
			latest = v
			latestTag = tag
		}
	}
	return latestTag
}
