// Package update replaces the running binary with the latest GitHub release.
package update

import (
	"context"
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
	"github.com/creativeprojects/go-selfupdate"

	"github.com/namefinder/namefinder/internal/logging"
)

// Repo is the GitHub slug releases are fetched from.
const Repo = "namefinder/namefinder"

// Result holds the outcome of an update check or apply.
type Result struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
	Applied         bool
}

func newUpdater() (*selfupdate.Updater, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, fmt.Errorf("creating github source: %w", err)
	}
	updater, err := selfupdate.NewUpdater(selfupdate.Config{
		Source: source,
		OS:     runtime.GOOS,
		Arch:   runtime.GOARCH,
	})
	if err != nil {
		return nil, fmt.Errorf("creating updater: %w", err)
	}
	return updater, nil
}

// Newer reports whether latest should replace current. A current version
// that is not semver, such as "dev", is always older.
func Newer(current, latest string) bool {
	cur, err := semver.NewVersion(current)
	if err != nil {
		return true
	}
	next, err := semver.NewVersion(latest)
	if err != nil {
		return false
	}
	return next.GreaterThan(cur)
}

// Check queries GitHub for the latest release without installing it.
func Check(ctx context.Context, currentVersion string) (*Result, error) {
	updater, err := newUpdater()
	if err != nil {
		return nil, err
	}

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(Repo))
	if err != nil {
		return nil, fmt.Errorf("checking for updates: %w", err)
	}

	res := &Result{CurrentVersion: currentVersion}
	if found {
		res.LatestVersion = latest.Version()
		res.UpdateAvailable = Newer(currentVersion, res.LatestVersion)
	}
	return res, nil
}

// Apply downloads and installs the latest release in place of the running
// executable. It does nothing when already up to date.
func Apply(ctx context.Context, currentVersion string) (*Result, error) {
	logger := logging.For("update")

	res, err := Check(ctx, currentVersion)
	if err != nil {
		return nil, err
	}
	if !res.UpdateAvailable {
		return res, nil
	}

	updater, err := newUpdater()
	if err != nil {
		return nil, err
	}
	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(Repo))
	if err != nil {
		return nil, fmt.Errorf("checking for updates: %w", err)
	}
	if !found {
		return res, nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return nil, fmt.Errorf("finding executable path: %w", err)
	}
	if err := updater.UpdateTo(ctx, latest, exe); err != nil {
		return nil, fmt.Errorf("applying update: %w", err)
	}

	logger.Info().Str("from", currentVersion).Str("to", latest.Version()).Msg("updated")
	res.Applied = true
	return res, nil
}
