// Package pattern builds and evaluates the glob pattern sets that select
// files by base name. Patterns come from positional CLI arguments plus the
// built-in named groups (screenshots, images, videos).
package pattern

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Built-in group contents. Extension groups match case-insensitively so
// DSC_0001.JPG is picked up alongside photo.jpg.
var (
	screenshotGlobs = []string{"Screenshot*"}

	imageExtensions = []string{"jpg", "jpeg", "png", "gif", "bmp", "tiff", "webp", "heic"}
	videoExtensions = []string{"mov", "mp4", "mkv", "avi", "wmv", "flv", "webm", "m4v"}
)

// Pattern is a single glob matched against a base filename
type Pattern struct {
	// Glob is the pattern source text (e.g. "*.dmg", "Screenshot*")
	Glob string
	// FoldCase enables case-insensitive matching
	FoldCase bool
}

// Match reports whether the base filename matches the pattern
func (p Pattern) Match(name string) bool {
	if p.FoldCase {
		return doublestar.MatchUnvalidated(strings.ToLower(p.Glob), strings.ToLower(name))
	}
	return doublestar.MatchUnvalidated(p.Glob, name)
}

// Set is an ordered collection of patterns
type Set []Pattern

// Match reports whether the base filename matches at least one pattern
func (s Set) Match(name string) bool {
	for _, p := range s {
		if p.Match(name) {
			return true
		}
	}
	return false
}

// Globs returns the pattern source texts in order, for display purposes
func (s Set) Globs() []string {
	globs := make([]string, 0, len(s))
	for _, p := range s {
		globs = append(globs, p.Glob)
	}
	return globs
}

// Build assembles the effective pattern set from the group flags and any
// literal patterns given on the command line. Literal patterns are
// validated; a malformed glob is a usage error. With no groups and no
// literals the set matches every file.
func Build(screenshots, images, videos bool, literals []string) (Set, error) {
	var set Set

	if screenshots {
		for _, g := range screenshotGlobs {
			set = append(set, Pattern{Glob: g})
		}
	}
	if images {
		set = append(set, extensionPatterns(imageExtensions)...)
	}
	if videos {
		set = append(set, extensionPatterns(videoExtensions)...)
	}

	for _, lit := range literals {
		if !doublestar.ValidatePattern(lit) {
			return nil, fmt.Errorf("invalid pattern %q", lit)
		}
		set = append(set, Pattern{Glob: lit})
	}

	// Default to all files if no patterns specified
	if len(set) == 0 {
		set = append(set, Pattern{Glob: "*"})
	}

	return set, nil
}

// extensionPatterns expands bare extensions to case-folded *.ext globs
func extensionPatterns(exts []string) []Pattern {
	pats := make([]Pattern, 0, len(exts))
	for _, ext := range exts {
		pats = append(pats, Pattern{Glob: "*." + ext, FoldCase: true})
	}
	return pats
}
