package workflow

import (
	"os"

	"github.com/grokify/releaseconductor/internal/config"
	"github.com/grokify/releaseconductor/internal/manifest"
	"github.com/grokify/releaseconductor/pkg/model"
)

// Resolve computes the immutable release identity for a run: the concrete
// version, the tag name, and the notes source. Computed once per
// invocation; never persisted.
func Resolve(cfg *config.ReleaseConfig, manifestPath string) (model.ResolvedRelease, error) {
	version, err := manifest.ResolveVersion(cfg.Version, manifestPath)
	if err != nil {
		return model.ResolvedRelease{}, err
	}

	rel := model.ResolvedRelease{
		Version: version,
		Tag:     cfg.TagPrefix + version,
	}

	if cfg.ReleaseNotesFile != "" {
		if _, err := os.Stat(cfg.ReleaseNotesFile); err == nil {
			rel.NotesFile = cfg.ReleaseNotesFile
		}
	}
	if rel.NotesFile == "" {
		rel.NotesBody = "Release " + rel.Tag
	}
	return rel, nil
}
