// Package update provides version checking and self-update functionality.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/creativeprojects/go-selfupdate"
)

const (
	repoOwner     = "rabbitui"
	repoName      = "rabbitui"
	checkInterval = 24 * time.Hour
)

// updateCache stores the last update check result so common commands do
// not hit GitHub more than once a day.
type updateCache struct {
	LastCheck       time.Time `json:"last_check"`
	LatestVersion   string    `json:"latest_version,omitempty"`
	UpdateAvailable bool      `json:"update_available"`
}

func cachePath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "rabbitui", "update-cache.json")
}

func loadCache() *updateCache {
	path := cachePath()
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var cache updateCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil
	}
	return &cache
}

func saveCache(cache *updateCache) {
	path := cachePath()
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	data, err := json.Marshal(cache)
	if err != nil {
		return
	}
	_ = os.WriteFile(path, data, 0o644)
}

func newUpdater() (*selfupdate.Updater, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, fmt.Errorf("create GitHub source: %w", err)
	}
	updater, err := selfupdate.NewUpdater(selfupdate.Config{Source: source})
	if err != nil {
		return nil, fmt.Errorf("create updater: %w", err)
	}
	return updater, nil
}

// Release describes the latest published release.
type Release struct {
	Version    string
	ReleaseURL string
}

// CheckForUpdate reports whether a newer version than currentVersion is
// published. Dev builds are never considered outdated.
func CheckForUpdate(currentVersion string) (*Release, bool, error) {
	current := strings.TrimPrefix(currentVersion, "v")
	if current == "dev" || current == "" {
		return nil, false, nil
	}

	updater, err := newUpdater()
	if err != nil {
		return nil, false, err
	}

	latest, found, err := updater.DetectLatest(context.Background(), selfupdate.NewRepositorySlug(repoOwner, repoName))
	if err != nil {
		return nil, false, fmt.Errorf("detect latest version: %w", err)
	}
	if !found {
		return nil, false, nil
	}

	release := &Release{Version: latest.Version(), ReleaseURL: latest.ReleaseNotes}
	return release, latest.GreaterThan(current), nil
}

// Update downloads the latest release and replaces the running binary.
func Update(currentVersion string) error {
	current := strings.TrimPrefix(currentVersion, "v")
	if current == "dev" || current == "" {
		return fmt.Errorf("cannot update dev builds")
	}

	updater, err := newUpdater()
	if err != nil {
		return err
	}

	latest, found, err := updater.DetectLatest(context.Background(), selfupdate.NewRepositorySlug(repoOwner, repoName))
	if err != nil {
		return fmt.Errorf("detect latest version: %w", err)
	}
	if !found {
		return fmt.Errorf("no releases found")
	}
	if !latest.GreaterThan(current) {
		return fmt.Errorf("already at latest version (%s)", currentVersion)
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}
	if err := updater.UpdateTo(context.Background(), latest, exe); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}
	return nil
}

// CheckPeriodically checks for updates at most once per day and returns a
// notice string when a newer version is available.
func CheckPeriodically(currentVersion string) string {
	current := strings.TrimPrefix(currentVersion, "v")
	if current == "dev" || current == "" {
		return ""
	}

	if cache := loadCache(); cache != nil && time.Since(cache.LastCheck) < checkInterval {
		if cache.UpdateAvailable && cache.LatestVersion != "" &&
			strings.TrimPrefix(cache.LatestVersion, "v") != current {
			return notice(currentVersion, cache.LatestVersion)
		}
		return ""
	}

	release, hasUpdate, err := CheckForUpdate(currentVersion)
	cache := &updateCache{LastCheck: time.Now(), UpdateAvailable: hasUpdate && err == nil}
	if release != nil {
		cache.LatestVersion = release.Version
	}
	saveCache(cache)

	if err != nil || !hasUpdate {
		return ""
	}
	return notice(currentVersion, release.Version)
}

func notice(current, latest string) string {
	return fmt.Sprintf("Update available: %s -> %s (run: rabbitui upgrade)", current, latest)
}
