// Package mover relocates selected candidates into the destination
// directory, resolving name collisions with a numeric disambiguator and
// isolating per-file failures so one bad move never aborts the batch.
package mover

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/mvr/internal/fileutil"
	"github.com/harrison/mvr/internal/models"
)

// Mover moves candidate files into a destination directory
type Mover struct {
	// Destination receives the moved files
	Destination string
	// DryRun reports planned moves without touching the filesystem
	DryRun bool
}

// Move processes candidates in order and returns one result per candidate.
// Failures are per-candidate: a file that cannot be moved is recorded as
// failed and the batch continues.
func (m *Mover) Move(candidates []models.Candidate) []models.MoveResult {
	results := make([]models.MoveResult, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, m.moveOne(c))
	}
	return results
}

// moveOne finds a free name at the destination and moves the candidate to
// it. The existence check happens at move time (a no-replace rename), so a
// target created moments earlier by another process just advances the
// suffix instead of being overwritten.
func (m *Mover) moveOne(c models.Candidate) models.MoveResult {
	for n := 0; ; n++ {
		target := filepath.Join(m.Destination, disambiguate(c.Name, n))

		if m.DryRun {
			_, err := os.Lstat(target)
			switch {
			case err == nil:
				continue
			case errors.Is(err, fs.ErrNotExist):
				return models.MoveResult{Source: c.SourcePath, Target: target, Status: models.StatusWouldMove}
			default:
				return models.MoveResult{Source: c.SourcePath, Target: target, Status: models.StatusFailed, Err: err}
			}
		}

		err := fileutil.MoveFile(c.SourcePath, target)
		switch {
		case err == nil:
			return models.MoveResult{Source: c.SourcePath, Target: target, Status: models.StatusMoved}
		case errors.Is(err, fileutil.ErrTargetExists):
			continue
		default:
			return models.MoveResult{Source: c.SourcePath, Target: target, Status: models.StatusFailed, Err: err}
		}
	}
}

// disambiguate returns the nth alternative for a colliding filename: n 0 is
// the name itself, n 1 inserts " (1)" before the extension, and so on. A
// name without an extension gets the suffix appended; a leading-dot name
// whose extension equals the whole name is treated as extensionless.
func disambiguate(name string, n int) string {
	if n == 0 {
		return name
	}
	ext := filepath.Ext(name)
	if ext == name {
		ext = ""
	}
	base := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s (%d)%s", base, n, ext)
}
