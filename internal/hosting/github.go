package hosting

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/go-github/v84/github"
	"github.com/grokify/gogithub/release"
	"github.com/grokify/mogo/net/http/retryhttp"

	"github.com/grokify/releaseconductor/pkg/model"
)

// GitHubAPI implements Host against the GitHub REST API.
type GitHubAPI struct {
	client *github.Client
}

// APIConfig configures the API-backed host.
type APIConfig struct {
	// Token is the GitHub personal access token. Required.
	Token string

	// MaxRetries is the maximum number of retry attempts for API calls.
	MaxRetries int

	// InitialBackoff is the initial backoff duration for retries.
	InitialBackoff time.Duration
}

// NewGitHubAPI creates an API-backed host with the given token.
func NewGitHubAPI(token string) *GitHubAPI {
	return NewGitHubAPIWithConfig(APIConfig{Token: token})
}

// NewGitHubAPIWithConfig creates an API-backed host with configuration.
func NewGitHubAPIWithConfig(cfg APIConfig) *GitHubAPI {
	retryOpts := []retryhttp.Option{}

	if cfg.MaxRetries > 0 {
		retryOpts = append(retryOpts, retryhttp.WithMaxRetries(cfg.MaxRetries))
	}
	if cfg.InitialBackoff > 0 {
		retryOpts = append(retryOpts, retryhttp.WithInitialBackoff(cfg.InitialBackoff))
	}

	// Retry transport handles 429 rate limits automatically.
	rt := retryhttp.NewWithOptions(retryOpts...)
	httpClient := &http.Client{Transport: rt}

	client := github.NewClient(httpClient)
	if cfg.Token != "" {
		client = client.WithAuthToken(cfg.Token)
	}

	return &GitHubAPI{client: client}
}

// AuthStatus verifies the token by looking up the authenticated user.
func (h *GitHubAPI) AuthStatus(ctx context.Context) error {
	if _, _, err := h.client.Users.Get(ctx, ""); err != nil {
		return fmt.Errorf("token rejected: %w", err)
	}
	return nil
}

// Login is unavailable for the API host; the token must be provided up
// front via GITHUB_TOKEN or --token.
func (h *GitHubAPI) Login(ctx context.Context) error {
	return fmt.Errorf("api host has no interactive login; set GITHUB_TOKEN or use --token")
}

// ReleaseExists reports whether a release for tag already exists.
func (h *GitHubAPI) ReleaseExists(ctx context.Context, repo model.RepoRef, tag string) (bool, error) {
	_, resp, err := h.client.Repositories.GetReleaseByTag(ctx, repo.Owner, repo.Name, tag)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to view release %s: %w", tag, err)
	}
	return true, nil
}

// CreateRelease creates a hosted release, then uploads any assets named in
// the request.
func (h *GitHubAPI) CreateRelease(ctx context.Context, req *model.ReleaseRequest) error {
	body := req.NotesBody
	if req.NotesFile != "" {
		data, err := os.ReadFile(filepath.Clean(req.NotesFile)) // #nosec G304
		if err != nil {
			return fmt.Errorf("failed to read notes file: %w", err)
		}
		body = string(data)
	}

	ghRelease := &github.RepositoryRelease{
		TagName:    github.Ptr(req.TagName),
		Name:       github.Ptr(req.Title),
		Body:       github.Ptr(body),
		Draft:      github.Ptr(req.Draft),
		Prerelease: github.Ptr(req.Prerelease),
	}

	if _, err := release.CreateRelease(ctx, h.client, req.Repo.Owner, req.Repo.Name, ghRelease); err != nil {
		return fmt.Errorf("failed to create release %s: %w", req.TagName, err)
	}

	if len(req.Assets) > 0 {
		return h.UploadAssets(ctx, req.Repo, req.TagName, req.Assets)
	}
	return nil
}

// UploadAssets attaches artifacts to the release for tag, deleting any
// same-named asset first (clobber semantics).
func (h *GitHubAPI) UploadAssets(ctx context.Context, repo model.RepoRef, tag string, assets []string) error {
	rel, _, err := h.client.Repositories.GetReleaseByTag(ctx, repo.Owner, repo.Name, tag)
	if err != nil {
		return fmt.Errorf("failed to view release %s: %w", tag, err)
	}

	existing, err := h.listAssets(ctx, repo, rel.GetID())
	if err != nil {
		return err
	}

	for _, path := range assets {
		name := filepath.Base(path)

		if id, ok := existing[name]; ok {
			if _, err := h.client.Repositories.DeleteReleaseAsset(ctx, repo.Owner, repo.Name, id); err != nil {
				return fmt.Errorf("failed to replace asset %s: %w", name, err)
			}
		}

		f, err := os.Open(filepath.Clean(path)) // #nosec G304
		if err != nil {
			return fmt.Errorf("failed to open asset %s: %w", path, err)
		}

		opts := &github.UploadOptions{Name: name}
		_, _, err = h.client.Repositories.UploadReleaseAsset(ctx, repo.Owner, repo.Name, rel.GetID(), opts, f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("failed to upload asset %s: %w", name, err)
		}
	}
	return nil
}

func (h *GitHubAPI) listAssets(ctx context.Context, repo model.RepoRef, releaseID int64) (map[string]int64, error) {
	assets := make(map[string]int64)

	opt := &github.ListOptions{PerPage: 100}
	for {
		page, resp, err := h.client.Repositories.ListReleaseAssets(ctx, repo.Owner, repo.Name, releaseID, opt)
		if err != nil {
			return nil, fmt.Errorf("failed to list release assets: %w", err)
		}
		for _, a := range page {
			assets[a.GetName()] = a.GetID()
		}
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}
	return assets, nil
}
