// Package workflow sequences a release: authenticate, sync, clean-tree
// check, tag reconciliation, push, build, release reconciliation, asset
// upload. Strictly sequential; any step failure aborts the run. Steps are
// idempotent, so a failed run is corrected by re-invoking after fixing the
// cause — there is no rollback of a tag or release already published.
package workflow

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/fatih/color"

	"github.com/grokify/releaseconductor/internal/builder"
	"github.com/grokify/releaseconductor/internal/config"
	"github.com/grokify/releaseconductor/internal/git"
	"github.com/grokify/releaseconductor/internal/hosting"
	"github.com/grokify/releaseconductor/internal/shell"
	"github.com/grokify/releaseconductor/pkg/model"
)

var (
	stepColor = color.New(color.FgCyan, color.Bold)
	warnColor = color.New(color.FgYellow)
)

// Workflow holds the collaborators and settings for one release run.
// Collaborators are injected so each step is independently testable.
type Workflow struct {
	Config  *config.ReleaseConfig
	Release model.ResolvedRelease

	Git     git.Client
	Host    hosting.Host
	Builder builder.Builder

	// WorkDir is the repository working directory. Default ".".
	WorkDir string

	// DistDir receives built artifacts. Default "dist".
	DistDir string

	// Remote is the push target. Default "origin".
	Remote string

	// DryRun logs every step's command without executing anything
	// external. One consistent policy: in dry-run no command runs at
	// all, reads included, so a preview needs no credentials, remote or
	// build toolchain.
	DryRun bool

	Verbose bool

	// Out receives step banners and progress. Default os.Stderr.
	Out io.Writer
}

// Run executes the release sequence and returns the run summary. On abort
// the partial summary is returned alongside the error.
func (w *Workflow) Run(ctx context.Context) (*model.RunResult, error) {
	w.applyDefaults()

	// Required keys gate every mutating action.
	if err := w.Config.Validate(); err != nil {
		return nil, err
	}

	result := &model.RunResult{
		Timestamp:   time.Now(),
		DryRun:      w.DryRun,
		Repo:        w.Config.RepoRef(),
		PackageName: w.Config.PackageName,
		Version:     w.Release.Version,
		Tag:         w.Release.Tag,
	}

	steps := []struct {
		title string
		fn    func(context.Context, *model.RunResult) error
	}{
		{"Authenticate", w.authenticate},
		{"Sync " + w.Config.TargetBranch, w.sync},
		{"Check working tree", w.checkCleanTree},
		{"Reconcile tag " + w.Release.Tag, w.reconcileTag},
		{"Push branch and tags", w.publish},
		{"Build artifacts", w.build},
		{"Reconcile release", w.reconcileRelease},
		{"Upload assets", w.uploadAssets},
	}

	for _, step := range steps {
		stepColor.Fprintf(w.Out, "==> %s\n", step.title)
		if err := step.fn(ctx, result); err != nil {
			return result, err
		}
	}
	return result, nil
}

func (w *Workflow) applyDefaults() {
	if w.WorkDir == "" {
		w.WorkDir = "."
	}
	if w.DistDir == "" {
		w.DistDir = builder.DefaultOutDir
	}
	if w.Remote == "" {
		w.Remote = "origin"
	}
	if w.Out == nil {
		w.Out = os.Stderr
	}
}

func (w *Workflow) authenticate(ctx context.Context, result *model.RunResult) error {
	if w.DryRun {
		return w.plan(result, "authenticate", shell.CommandLine("gh", "auth", "status"))
	}

	if err := w.Host.AuthStatus(ctx); err != nil {
		w.logf("hosting session invalid, starting login: %v\n", err)
		if err := w.Host.Login(ctx); err != nil {
			return fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
		}
	}

	result.AddStep("authenticate", model.StepExecuted, "hosting session valid")
	return nil
}

func (w *Workflow) sync(ctx context.Context, result *model.RunResult) error {
	dir, err := filepath.Abs(w.WorkDir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSyncFailed, err)
	}

	if w.DryRun {
		return w.plan(result, "sync", strings.Join([]string{
			shell.CommandLine("git", "config", "--global", "--add", "safe.directory", dir),
			shell.CommandLine("git", "checkout", w.Config.TargetBranch),
			shell.CommandLine("git", "pull", "--ff-only", w.Remote, w.Config.TargetBranch),
		}, "; "))
	}

	if err := w.Git.MarkSafeDirectory(ctx, dir); err != nil {
		return fmt.Errorf("%w: %v", ErrSyncFailed, err)
	}
	if err := w.Git.Checkout(ctx, w.Config.TargetBranch); err != nil {
		return fmt.Errorf("%w: %v", ErrSyncFailed, err)
	}
	if err := w.Git.PullFastForward(ctx, w.Remote, w.Config.TargetBranch); err != nil {
		return fmt.Errorf("%w: %v", ErrSyncFailed, err)
	}

	result.AddStep("sync", model.StepExecuted, w.Config.TargetBranch+" fast-forwarded from "+w.Remote)
	return nil
}

func (w *Workflow) checkCleanTree(ctx context.Context, result *model.RunResult) error {
	if w.DryRun {
		return w.plan(result, "clean-tree", shell.CommandLine("git", "status", "--porcelain"))
	}

	status, err := w.Git.Status(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSyncFailed, err)
	}
	if strings.TrimSpace(status) != "" {
		fmt.Fprintln(w.Out, status)
		return fmt.Errorf("%w:\n%s", ErrDirtyWorkingTree, status)
	}

	result.AddStep("clean-tree", model.StepExecuted, "working tree clean")
	return nil
}

func (w *Workflow) reconcileTag(ctx context.Context, result *model.RunResult) error {
	tag := w.Release.Tag

	if w.DryRun {
		return w.plan(result, "tag",
			shell.CommandLine("git", "tag", "-a", tag, "-m", "Release "+tag)+" (reused when the tag exists)")
	}

	exists, err := w.Git.TagExists(ctx, tag)
	if err != nil {
		return fmt.Errorf("failed to check tag %s: %w", tag, err)
	}
	if exists {
		// Reuse, never re-point: moving a tag would need a force
		// operation this tool refuses to perform.
		w.logf("tag %s already exists, reusing\n", tag)
		result.AddStep("tag", model.StepSkipped, tag+" already exists")
		return nil
	}

	w.warnOnDowngrade(ctx)

	if err := w.Git.CreateTag(ctx, tag, "Release "+tag); err != nil {
		return fmt.Errorf("failed to create tag %s: %w", tag, err)
	}

	result.TagCreated = true
	result.AddStep("tag", model.StepExecuted, "created annotated tag "+tag)
	return nil
}

// warnOnDowngrade flags a resolved version below the highest existing
// semver tag. Advisory only; explicit versions are accepted verbatim.
func (w *Workflow) warnOnDowngrade(ctx context.Context) {
	if !w.Verbose {
		return
	}

	tags, err := w.Git.ListTags(ctx)
	if err != nil {
		return
	}
	latestTag := git.LatestSemverTag(tags)
	if latestTag == "" {
		return
	}

	latest, err := semver.NewVersion(latestTag)
	if err != nil {
		return
	}
	resolved, err := semver.NewVersion(w.Release.Version)
	if err != nil {
		return
	}
	if resolved.LessThan(latest) {
		warnColor.Fprintf(w.Out, "warning: resolved version %s is older than existing tag %s\n",
			w.Release.Version, latestTag)
	}
}

func (w *Workflow) publish(ctx context.Context, result *model.RunResult) error {
	if w.DryRun {
		return w.plan(result, "push",
			shell.CommandLine("git", "push", w.Remote, w.Config.TargetBranch, "--tags"))
	}

	if err := w.Git.Push(ctx, w.Remote, w.Config.TargetBranch); err != nil {
		return fmt.Errorf("%w: %v", ErrPushRejected, err)
	}

	result.AddStep("push", model.StepExecuted,
		"pushed "+w.Config.TargetBranch+" and tags to "+w.Remote)
	return nil
}

func (w *Workflow) build(ctx context.Context, result *model.RunResult) error {
	if w.DryRun {
		return w.plan(result, "build", strings.Join([]string{
			shell.CommandLine("python", "-m", "pip", "install", "--upgrade", "build"),
			"rm -rf " + w.DistDir,
			shell.CommandLine("python", "-m", "build", "--sdist", "--wheel", "--outdir", w.DistDir),
		}, "; "))
	}

	if err := w.Builder.EnsureTooling(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrBuildFailed, err)
	}
	if err := w.Builder.Build(ctx, w.DistDir); err != nil {
		return fmt.Errorf("%w: %v", ErrBuildFailed, err)
	}

	artifacts, err := builder.Artifacts(w.DistDir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildFailed, err)
	}
	if len(artifacts) == 0 {
		return fmt.Errorf("%w: no artifacts produced in %s", ErrBuildFailed, w.DistDir)
	}

	result.Artifacts = artifacts
	result.AddStep("build", model.StepExecuted,
		fmt.Sprintf("%d artifacts in %s", len(artifacts), w.DistDir))
	return nil
}

func (w *Workflow) reconcileRelease(ctx context.Context, result *model.RunResult) error {
	tag := w.Release.Tag
	title := w.Config.PackageName + " " + w.Release.Version

	if w.DryRun {
		detail := shell.CommandLine("gh", "release", "create", tag,
			"--repo", w.Config.Repo, "--title", title)
		if w.Config.Draft {
			detail += " --draft"
		}
		if w.Config.Prerelease {
			detail += " --prerelease"
		}
		return w.plan(result, "release", detail+" (skipped when the release exists)")
	}

	exists, err := w.Host.ReleaseExists(ctx, result.Repo, tag)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReleaseOperation, err)
	}
	if exists {
		w.logf("release for %s already exists, skipping creation\n", tag)
		result.AddStep("release", model.StepSkipped, "release for "+tag+" already exists")
		return nil
	}

	req := &model.ReleaseRequest{
		Repo:       result.Repo,
		TagName:    tag,
		Title:      title,
		NotesFile:  w.Release.NotesFile,
		NotesBody:  w.Release.NotesBody,
		Draft:      w.Config.Draft,
		Prerelease: w.Config.Prerelease,
		Assets:     result.Artifacts,
	}
	if err := w.Host.CreateRelease(ctx, req); err != nil {
		return fmt.Errorf("%w: %v", ErrReleaseOperation, err)
	}

	result.ReleaseNew = true
	result.AddStep("release", model.StepExecuted, "created release "+title)
	return nil
}

// uploadAssets always runs after release reconciliation, whether or not
// the release was just created, so re-runs refresh artifacts on an
// existing release.
func (w *Workflow) uploadAssets(ctx context.Context, result *model.RunResult) error {
	if w.DryRun {
		return w.plan(result, "upload", shell.CommandLine("gh", "release", "upload",
			w.Release.Tag, filepath.Join(w.DistDir, "*"), "--clobber", "--repo", w.Config.Repo))
	}

	if err := w.Host.UploadAssets(ctx, result.Repo, w.Release.Tag, result.Artifacts); err != nil {
		return fmt.Errorf("%w: %v", ErrReleaseOperation, err)
	}

	result.AddStep("upload", model.StepExecuted,
		fmt.Sprintf("uploaded %d assets (clobber)", len(result.Artifacts)))
	return nil
}

// plan records and prints a dry-run step. Plan lines mirror the CLI
// collaborators' command lines so the operator sees exactly what a real
// run would execute.
func (w *Workflow) plan(result *model.RunResult, name, detail string) error {
	fmt.Fprintf(w.Out, "[dry-run] %s\n", detail)
	result.AddStep(name, model.StepPlanned, detail)
	return nil
}

func (w *Workflow) logf(format string, args ...any) {
	if w.Verbose {
		fmt.Fprintf(w.Out, format, args...)
	}
}
