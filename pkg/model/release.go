package model

// ResolvedRelease is the immutable release identity for a single run,
// computed once from the configuration and the package manifest.
type ResolvedRelease struct {
	// Version is the concrete version string, e.g. "1.2.3".
	Version string `json:"version"`

	// Tag is the full tag name, tag prefix + version, e.g. "v1.2.3".
	Tag string `json:"tag"`

	// NotesFile is the path to the release notes file, or empty when the
	// configured file does not exist and the fallback body applies.
	NotesFile string `json:"notesFile,omitempty"`

	// NotesBody is the fallback release body used when NotesFile is empty.
	NotesBody string `json:"notesBody,omitempty"`
}

// ReleaseRequest contains the information needed to create a hosted release.
type ReleaseRequest struct {
	Repo       RepoRef `json:"repo"`
	TagName    string  `json:"tagName"`
	Title      string  `json:"title"`
	NotesFile  string  `json:"notesFile,omitempty"`
	NotesBody  string  `json:"notesBody,omitempty"`
	Draft      bool    `json:"draft"`
	Prerelease bool    `json:"prerelease"`

	// Assets are the artifact paths attached at creation time.
	Assets []string `json:"assets,omitempty"`
}
