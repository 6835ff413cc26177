// Package display renders the user-facing output of a run: per-file move
// results, scan warnings, and the closing summary.
//
// All output goes through a Reporter bound to a pair of writers, normally
// the command's stdout and stderr:
//
//	rep := display.NewReporter(os.Stdout, os.Stderr, "auto", verbose)
//	rep.Found(len(candidates))
//	for _, res := range results {
//	    rep.Result(res)
//	}
//	rep.Summary(models.Summarize(results))
//
// Results and progress are written to the first writer, warnings and
// failure lines to the second, so failures stay visible when stdout is
// redirected.
//
// # Color
//
// Colors come from github.com/fatih/color: green for completed moves,
// yellow for dry-run lines and warnings, red for failures. The "auto"
// mode enables color only when the output writer is a terminal and the
// NO_COLOR convention does not disable it; "always" and "never" force
// the decision either way, which keeps output deterministic under test.
package display
