// Package update checks GitHub for a newer release of remark.
//
// Only checking is supported: the result names the new version and where
// to get it, nothing is downloaded. Scheduled checks are throttled through
// a small JSON state file so a busy context menu does not hit the API on
// every click.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/blang/semver/v4"

	"github.com/raphi011/remark/internal/log"
	"github.com/raphi011/remark/internal/storage"
)

// AssetPrefix and AssetSuffix identify the Windows executable of a release.
const (
	AssetPrefix = "windows-folder-remark-"
	AssetSuffix = ".exe"
)

const requestTimeout = 10 * time.Second

// Release is a published release newer than the running version.
type Release struct {
	Version     string `json:"version"`
	URL         string `json:"url"`
	Notes       string `json:"notes,omitempty"`
	DownloadURL string `json:"download_url"`
}

// githubRelease is the subset of the GitHub release API we read.
type githubRelease struct {
	TagName    string `json:"tag_name"`
	HTMLURL    string `json:"html_url"`
	Body       string `json:"body"`
	Draft      bool   `json:"draft"`
	Prerelease bool   `json:"prerelease"`
	Assets     []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

// state is persisted between runs.
type state struct {
	NextCheck time.Time `json:"next_check"`
}

// Checker queries the release endpoint.
type Checker struct {
	URL       string        // latest-release API endpoint
	StatePath string        // throttle state file
	Interval  time.Duration // minimum time between scheduled checks
	Client    *http.Client  // nil uses a client honoring proxy env vars
	Now       func() time.Time
}

func (c *Checker) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Checker) client() *http.Client {
	if c.Client != nil {
		return c.Client
	}
	// http.DefaultTransport reads HTTP_PROXY/HTTPS_PROXY.
	return &http.Client{Timeout: requestTimeout}
}

// Latest fetches the latest published release. It returns nil without an
// error when the release is a draft or prerelease, or has no executable.
func (c *Checker) Latest(ctx context.Context) (*Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "windows-folder-remark")

	resp, err := c.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch latest release: %s", resp.Status)
	}

	var gr githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, fmt.Errorf("decode latest release: %w", err)
	}
	if gr.Draft || gr.Prerelease {
		return nil, nil
	}
	for _, a := range gr.Assets {
		if strings.HasPrefix(a.Name, AssetPrefix) && strings.HasSuffix(a.Name, AssetSuffix) {
			return &Release{
				Version:     strings.TrimPrefix(gr.TagName, "v"),
				URL:         gr.HTMLURL,
				Notes:       gr.Body,
				DownloadURL: a.BrowserDownloadURL,
			}, nil
		}
	}
	return nil, nil
}

// Newer reports whether latest is a higher version than current. Versions
// that do not parse (like "dev") never compare as newer.
func Newer(latest, current string) bool {
	lv, err := semver.ParseTolerant(latest)
	if err != nil {
		return false
	}
	cv, err := semver.ParseTolerant(current)
	if err != nil {
		return false
	}
	return lv.GT(cv)
}

// Force checks right away, ignoring the throttle. Errors are returned.
func (c *Checker) Force(ctx context.Context, current string) (*Release, error) {
	r, err := c.Latest(ctx)
	if err != nil || r == nil {
		return nil, err
	}
	if !Newer(r.Version, current) {
		return nil, nil
	}
	return r, nil
}

// Check is the scheduled check: it returns nil until the interval has
// passed since the last check, and swallows network errors.
func (c *Checker) Check(ctx context.Context, current string) *Release {
	l := log.FromContext(ctx)

	due, err := c.claim(ctx)
	if err != nil {
		l.Debug("update state unavailable", "err", err)
		return nil
	}
	if !due {
		return nil
	}

	r, err := c.Force(ctx, current)
	if err != nil {
		l.Debug("update check failed", "err", err)
		return nil
	}
	return r
}

// claim reports whether a check is due and, if so, pushes the next check
// out by the interval before the request is made.
func (c *Checker) claim(ctx context.Context) (bool, error) {
	due := false
	err := storage.WithLock(ctx, c.StatePath, func() error {
		var s state
		if err := storage.LoadJSON(c.StatePath, &s); err != nil && !errors.Is(err, os.ErrNotExist) {
			// Corrupted - check now and rewrite
			s = state{}
		}
		now := c.now()
		if now.Before(s.NextCheck) {
			return nil
		}
		due = true
		return storage.SaveJSON(c.StatePath, state{NextCheck: now.Add(c.Interval)})
	})
	return due, err
}
