package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/grokify/releaseconductor/internal/shell"
)

// CLI implements Client by shelling out to the git command-line tool.
type CLI struct {
	runner *shell.Runner
}

// NewCLI creates a git CLI client running commands through runner.
func NewCLI(runner *shell.Runner) *CLI {
	return &CLI{runner: runner}
}

// MarkSafeDirectory marks dir as trusted for git operations.
func (c *CLI) MarkSafeDirectory(ctx context.Context, dir string) error {
	_, err := c.runner.Run(ctx, "git", "config", "--global", "--add", "safe.directory", dir)
	if err != nil {
		return fmt.Errorf("failed to mark safe directory: %w", err)
	}
	return nil
}

// Checkout switches the working tree to branch.
func (c *CLI) Checkout(ctx context.Context, branch string) error {
	_, err := c.runner.Run(ctx, "git", "checkout", branch)
	if err != nil {
		return fmt.Errorf("failed to checkout %s: %w", branch, err)
	}
	return nil
}

// PullFastForward fast-forwards branch from remote.
func (c *CLI) PullFastForward(ctx context.Context, remote, branch string) error {
	_, err := c.runner.Run(ctx, "git", "pull", "--ff-only", remote, branch)
	if err != nil {
		return fmt.Errorf("failed to fast-forward %s from %s: %w", branch, remote, err)
	}
	return nil
}

// Status returns porcelain status output.
func (c *CLI) Status(ctx context.Context) (string, error) {
	result, err := c.runner.Run(ctx, "git", "status", "--porcelain")
	if err != nil {
		return "", fmt.Errorf("failed to get status: %w", err)
	}
	return result.Output, nil
}

// TagExists reports whether tag exists locally.
func (c *CLI) TagExists(ctx context.Context, tag string) (bool, error) {
	result, err := c.runner.Run(ctx, "git", "tag", "--list", tag)
	if err != nil {
		return false, fmt.Errorf("failed to list tags: %w", err)
	}
	return strings.TrimSpace(result.Output) != "", nil
}

// CreateTag creates an annotated tag. It never moves an existing ref.
func (c *CLI) CreateTag(ctx context.Context, tag, message string) error {
	_, err := c.runner.Run(ctx, "git", "tag", "-a", tag, "-m", message)
	if err != nil {
		return fmt.Errorf("failed to create tag %s: %w", tag, err)
	}
	return nil
}

// ListTags returns all local tag names.
func (c *CLI) ListTags(ctx context.Context) ([]string, error) {
	result, err := c.runner.Run(ctx, "git", "tag", "--list")
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	var tags []string
	for _, line := range strings.Split(result.Output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			tags = append(tags, line)
		}
	}
	return tags, nil
}

// Push publishes branch and all tags to remote. No force-push.
func (c *CLI) Push(ctx context.Context, remote, branch string) error {
	_, err := c.runner.Run(ctx, "git", "push", remote, branch, "--tags")
	if err != nil {
		return fmt.Errorf("failed to push %s to %s: %w", branch, remote, err)
	}
	return nil
}
