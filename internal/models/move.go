package models

import "time"

// Move status constants
const (
	StatusMoved     = "moved"      // File relocated to the destination
	StatusWouldMove = "would-move" // Dry run, move was planned but not performed
	StatusFailed    = "failed"     // Move was attempted and failed
)

// Candidate represents a file selected for moving
type Candidate struct {
	SourcePath  string    // Absolute path as discovered in the source directory
	RealPath    string    // Symlink-resolved path, used for deduplication and ordering
	Name        string    // Base filename
	CreatedAt   time.Time // Creation time (birth time where the filesystem records it)
	FromModTime bool      // CreatedAt was substituted from the modification time
}

// MoveResult represents the outcome of moving a single candidate
type MoveResult struct {
	Source string // Candidate source path
	Target string // Destination path actually used, after collision resolution
	Status string // Status: "moved", "would-move", "failed"
	Err    error  // Underlying error when Status is "failed"
}

// Summary represents the aggregate outcome of a move batch
type Summary struct {
	Moved     int // Files relocated
	WouldMove int // Files that would be relocated (dry run)
	Failed    int // Files that could not be relocated
}

// Total returns the number of results the summary covers
func (s Summary) Total() int {
	return s.Moved + s.WouldMove + s.Failed
}

// Summarize tallies per-file move results into a Summary
func Summarize(results []MoveResult) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case StatusMoved:
			s.Moved++
		case StatusWouldMove:
			s.WouldMove++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}
