package workflow

import "errors"

// Workflow errors. Each step failure wraps one of these so callers can
// classify the abort; the process exit status and the printed diagnostic
// remain the primary error channel for this one-shot tool.
var (
	// ErrAuthenticationFailed indicates no valid hosting session could be
	// established.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrSyncFailed indicates the target branch could not be checked out
	// or fast-forwarded.
	ErrSyncFailed = errors.New("branch sync failed")

	// ErrDirtyWorkingTree indicates uncommitted changes exist.
	ErrDirtyWorkingTree = errors.New("working tree not clean")

	// ErrPushRejected indicates the remote refused the push.
	ErrPushRejected = errors.New("push rejected")

	// ErrBuildFailed indicates artifact production failed.
	ErrBuildFailed = errors.New("build failed")

	// ErrReleaseOperation indicates a hosted-release create, view or
	// upload operation failed.
	ErrReleaseOperation = errors.New("release operation failed")
)
