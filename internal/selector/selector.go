// Package selector enumerates the files eligible for moving: regular files
// directly inside the source directories whose base names match the pattern
// set and whose creation time falls inside the recency window.
package selector

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/harrison/mvr/internal/fileutil"
	"github.com/harrison/mvr/internal/models"
	"github.com/harrison/mvr/internal/pattern"
)

// creationTimeFunc is swappable in tests to fabricate file ages
var creationTimeFunc = fileutil.CreationTime

// Options configures a selection pass
type Options struct {
	// Directories are the scan roots, in flag order
	Directories []string
	// Patterns select files by base name
	Patterns pattern.Set
	// Window is the recency window; files created in [now-Window, now] qualify
	Window time.Duration
	// Destination is where matches will be moved; a source directory that
	// resolves to it is skipped
	Destination string
	// Now overrides the reference time (zero value means time.Now)
	Now time.Time
}

// DirScan records one scanned directory for verbose reporting
type DirScan struct {
	Path    string // Directory as configured
	Matched int    // Candidates contributed by this directory
}

// Result holds the selected candidates plus non-fatal scan diagnostics
type Result struct {
	// Candidates are the files to move, sorted by resolved path
	Candidates []models.Candidate
	// Errors are per-directory access problems (missing, unreadable)
	Errors []error
	// Scanned lists the directories visited, in order
	Scanned []DirScan
	// SkippedDestination lists source directories dropped because they
	// resolve to the destination
	SkippedDestination []string
}

// ModTimeFallbacks counts candidates whose age came from the modification
// time because the filesystem does not report creation times.
func (r *Result) ModTimeFallbacks() int {
	n := 0
	for _, c := range r.Candidates {
		if c.FromModTime {
			n++
		}
	}
	return n
}

// Select scans the configured directories and returns every regular file
// whose name matches the pattern set and whose creation time falls inside
// the window. Directories are deduplicated by resolved path before
// scanning; candidates are deduplicated by resolved path, first seen wins.
// Read-only: Select never mutates the filesystem.
func Select(opts Options) *Result {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	cutoff := now.Add(-opts.Window)

	result := &Result{}
	destReal := resolvePath(opts.Destination)

	seenDirs := make(map[string]struct{})
	seenFiles := make(map[string]struct{})

	for _, dir := range opts.Directories {
		real := resolvePath(dir)
		if _, ok := seenDirs[real]; ok {
			continue
		}
		seenDirs[real] = struct{}{}

		if real == destReal {
			result.SkippedDestination = append(result.SkippedDestination, dir)
			continue
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("failed to scan %s: %w", dir, err))
			continue
		}

		matched := 0
		for _, entry := range entries {
			name := entry.Name()
			if strings.HasPrefix(name, ".") {
				continue
			}
			if !opts.Patterns.Match(name) {
				continue
			}

			path := filepath.Join(dir, name)

			// Stat follows symlinks, so a symlink to a regular file
			// qualifies while a symlink to a directory does not.
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}

			created, ok := creationTimeFunc(path, info)
			fromModTime := false
			if !ok {
				created = info.ModTime()
				fromModTime = true
			}
			if created.Before(cutoff) || created.After(now) {
				continue
			}

			realPath, err := filepath.EvalSymlinks(path)
			if err != nil {
				continue
			}
			if _, ok := seenFiles[realPath]; ok {
				continue
			}
			seenFiles[realPath] = struct{}{}

			result.Candidates = append(result.Candidates, models.Candidate{
				SourcePath:  path,
				RealPath:    realPath,
				Name:        name,
				CreatedAt:   created,
				FromModTime: fromModTime,
			})
			matched++
		}
		result.Scanned = append(result.Scanned, DirScan{Path: dir, Matched: matched})
	}

	// Sort for deterministic output
	sort.Slice(result.Candidates, func(i, j int) bool {
		return result.Candidates[i].RealPath < result.Candidates[j].RealPath
	})

	return result
}

// resolvePath resolves symlinks where possible, falling back to a cleaned
// absolute path for targets that do not exist
func resolvePath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
