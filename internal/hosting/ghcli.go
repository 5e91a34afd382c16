package hosting

import (
	"context"
	"fmt"

	"github.com/grokify/releaseconductor/internal/shell"
	"github.com/grokify/releaseconductor/pkg/model"
)

// GHCLI implements Host by shelling out to the gh command-line tool.
type GHCLI struct {
	runner *shell.Runner
}

// NewGHCLI creates a gh-backed host running commands through runner.
func NewGHCLI(runner *shell.Runner) *GHCLI {
	return &GHCLI{runner: runner}
}

// AuthStatus verifies the gh session is valid.
func (h *GHCLI) AuthStatus(ctx context.Context) error {
	_, err := h.runner.Run(ctx, "gh", "auth", "status")
	if err != nil {
		return fmt.Errorf("gh session invalid: %w", err)
	}
	return nil
}

// Login runs the interactive gh login flow.
func (h *GHCLI) Login(ctx context.Context) error {
	if err := h.runner.RunInteractive(ctx, "gh", "auth", "login"); err != nil {
		return fmt.Errorf("gh login failed: %w", err)
	}
	return nil
}

// ReleaseExists reports whether a release for tag already exists. gh exits
// non-zero when the release is absent, so a failed view means "create it".
func (h *GHCLI) ReleaseExists(ctx context.Context, repo model.RepoRef, tag string) (bool, error) {
	_, err := h.runner.Run(ctx, "gh", "release", "view", tag, "--repo", repo.FullName())
	if err != nil {
		return false, nil
	}
	return true, nil
}

// CreateRelease creates a hosted release via gh release create.
func (h *GHCLI) CreateRelease(ctx context.Context, req *model.ReleaseRequest) error {
	args := []string{"release", "create", req.TagName,
		"--repo", req.Repo.FullName(),
		"--title", req.Title,
	}
	if req.NotesFile != "" {
		args = append(args, "--notes-file", req.NotesFile)
	} else {
		args = append(args, "--notes", req.NotesBody)
	}
	if req.Draft {
		args = append(args, "--draft")
	}
	if req.Prerelease {
		args = append(args, "--prerelease")
	}
	args = append(args, req.Assets...)

	if _, err := h.runner.Run(ctx, "gh", args...); err != nil {
		return fmt.Errorf("failed to create release %s: %w", req.TagName, err)
	}
	return nil
}

// UploadAssets attaches artifacts via gh release upload --clobber.
func (h *GHCLI) UploadAssets(ctx context.Context, repo model.RepoRef, tag string, assets []string) error {
	if len(assets) == 0 {
		return nil
	}

	args := []string{"release", "upload", tag}
	args = append(args, assets...)
	args = append(args, "--clobber", "--repo", repo.FullName())

	if _, err := h.runner.Run(ctx, "gh", args...); err != nil {
		return fmt.Errorf("failed to upload assets to %s: %w", tag, err)
	}
	return nil
}
