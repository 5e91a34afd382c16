// Package hosting provides the release-hosting operations the workflow
// consumes: session checks, release upsert and asset upload.
package hosting

import (
	"context"

	"github.com/grokify/releaseconductor/pkg/model"
)

// Host defines the release-hosting operations used by the workflow.
// Two implementations exist: GHCLI shells out to the gh command-line
// tool, GitHubAPI talks to the GitHub REST API directly.
type Host interface {
	// AuthStatus verifies the hosting session is valid.
	AuthStatus(ctx context.Context) error

	// Login establishes a session after AuthStatus fails.
	Login(ctx context.Context) error

	// ReleaseExists reports whether a release for tag already exists.
	ReleaseExists(ctx context.Context, repo model.RepoRef, tag string) (bool, error)

	// CreateRelease creates a hosted release.
	CreateRelease(ctx context.Context, req *model.ReleaseRequest) error

	// UploadAssets attaches artifacts to the release for tag, replacing
	// any same-named asset already present.
	UploadAssets(ctx context.Context, repo model.RepoRef, tag string, assets []string) error
}
