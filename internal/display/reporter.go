package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/harrison/mvr/internal/models"
	"github.com/harrison/mvr/internal/selector"
)

// Reporter renders the output of a run. Results and progress go to out,
// warnings and failures to errOut so they remain visible when stdout is
// redirected.
type Reporter struct {
	out     io.Writer
	errOut  io.Writer
	verbose bool

	green  *color.Color
	yellow *color.Color
	red    *color.Color
}

// NewReporter builds a Reporter for the given writers. colorMode is one of
// "auto", "always" or "never"; in auto mode color is enabled only when out
// is a terminal and the NO_COLOR convention does not disable it.
func NewReporter(out, errOut io.Writer, colorMode string, verbose bool) *Reporter {
	enabled := colorEnabled(out, colorMode)
	return &Reporter{
		out:     out,
		errOut:  errOut,
		verbose: verbose,
		green:   newColor(color.FgGreen, enabled),
		yellow:  newColor(color.FgYellow, enabled),
		red:     newColor(color.FgRed, enabled),
	}
}

func newColor(attr color.Attribute, enabled bool) *color.Color {
	c := color.New(attr)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// colorEnabled resolves the configured color mode against the writer.
func colorEnabled(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if color.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// Found prints the header line before the per-file results.
func (r *Reporter) Found(n int) {
	fmt.Fprintf(r.out, "Found %d file(s):\n", n)
}

// NothingFound prints the message for a run with no candidates.
func (r *Reporter) NothingFound() {
	fmt.Fprintln(r.out, "No matching files found.")
}

// Result prints a single move outcome.
func (r *Reporter) Result(res models.MoveResult) {
	switch res.Status {
	case models.StatusMoved:
		fmt.Fprintf(r.out, "  %s %s -> %s\n", r.green.Sprint("Moved:"), res.Source, res.Target)
	case models.StatusWouldMove:
		fmt.Fprintf(r.out, "  %s %s -> %s\n", r.yellow.Sprint("[dry run] Would move:"), res.Source, res.Target)
	case models.StatusFailed:
		fmt.Fprintf(r.errOut, "  %s %s: %v\n", r.red.Sprint("Failed:"), res.Source, res.Err)
	}
}

// Summary prints the aggregate counts after the per-file lines. A run with
// nothing to report prints nothing.
func (r *Reporter) Summary(s models.Summary) {
	if s.Total() == 0 {
		return
	}
	var parts []string
	if s.Moved > 0 {
		parts = append(parts, fmt.Sprintf("%d moved", s.Moved))
	}
	if s.WouldMove > 0 {
		parts = append(parts, fmt.Sprintf("%d would move", s.WouldMove))
	}
	if s.Failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", s.Failed))
	}
	fmt.Fprintf(r.out, "\n%s\n", strings.Join(parts, ", "))
}

// Warnf prints a warning line to the error writer.
func (r *Reporter) Warnf(format string, args ...any) {
	fmt.Fprintf(r.errOut, "%s %s\n", r.yellow.Sprint("Warning:"), fmt.Sprintf(format, args...))
}

// ScanErrors reports directories that could not be read. These are
// non-fatal; the run continues with whatever was scanned.
func (r *Reporter) ScanErrors(errs []error) {
	for _, err := range errs {
		r.Warnf("%v", err)
	}
}

// ModTimeFallback notes, once per run, how many candidates were aged by
// modification time because the filesystem does not record creation times.
func (r *Reporter) ModTimeFallback(count int) {
	if count == 0 {
		return
	}
	r.Warnf("creation time unavailable for %d file(s); using last-modified time", count)
}

// Scans prints per-directory detail when verbose mode is on.
func (r *Reporter) Scans(scans []selector.DirScan, skippedDest []string) {
	if !r.verbose {
		return
	}
	for _, s := range scans {
		fmt.Fprintf(r.out, "Scanned %s: %d match(es)\n", s.Path, s.Matched)
	}
	for _, dir := range skippedDest {
		fmt.Fprintf(r.out, "Skipped %s: already the destination\n", dir)
	}
}
