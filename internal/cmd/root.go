package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/mvr/internal/config"
	"github.com/harrison/mvr/internal/display"
	"github.com/harrison/mvr/internal/models"
	"github.com/harrison/mvr/internal/mover"
	"github.com/harrison/mvr/internal/pattern"
	"github.com/harrison/mvr/internal/selector"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for mvr
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mvr [flags] [pattern ...]",
		Short: "Move recently created files into the current directory",
		Long: `mvr collects files created within a recency window from a fixed set of
source directories and moves them into the current working directory.

Files are matched by glob patterns and by the built-in pattern groups
(screenshots, images, videos). Matches are deduplicated across source
directories, name collisions in the destination are resolved with a
numeric suffix, and a dry run previews the moves without touching
anything.

Configuration is loaded from ~/.config/mvr/config.yaml if present.
CLI flags override configuration file settings.

Examples:
  # Pull screenshots taken in the last 5 minutes off the desktop
  mvr --desktop --scr

  # Collect recent images from the usual directories
  mvr --auto --images --window 30

  # Preview without moving anything
  mvr --dl --videos --dr

  # Explicit glob patterns (quote them so the shell does not expand)
  mvr --dl '*.pdf' 'invoice-*'

  # Use a custom config file
  mvr --config custom.yaml --scr`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		RunE:         runRoot,
	}

	cmd.Flags().Bool("docs", false, "Search ~/Documents")
	cmd.Flags().Bool("desktop", false, "Search ~/Desktop")
	cmd.Flags().Bool("dl", false, "Search ~/Downloads")
	cmd.Flags().Bool("auto", false, "Search the home, Downloads, Desktop and Documents directories")
	cmd.Flags().Bool("scr", false, "Match screenshot files (Screenshot*)")
	cmd.Flags().Bool("images", false, "Match common image extensions")
	cmd.Flags().Bool("videos", false, "Match common video extensions")
	cmd.Flags().Int("window", 5, "Only move files created within the last N minutes")
	cmd.Flags().Bool("dr", false, "Show what would be moved without moving anything")
	cmd.Flags().String("config", "", "Path to config file (default: ~/.config/mvr/config.yaml)")
	cmd.Flags().String("color", "", "Colored output: auto, always or never")
	cmd.Flags().BoolP("verbose", "v", false, "Show per-directory scan detail")

	return cmd
}

// runRoot implements the root command logic
func runRoot(cmd *cobra.Command, args []string) error {
	// Load configuration file
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Build flag pointers for merge (only values the user set)
	var windowPtr *int
	if cmd.Flags().Changed("window") {
		window, _ := cmd.Flags().GetInt("window")
		windowPtr = &window
	}
	var colorPtr *string
	if cmd.Flags().Changed("color") {
		colorMode, _ := cmd.Flags().GetString("color")
		colorPtr = &colorMode
	}

	// Merge CLI flags with config (flags take precedence)
	cfg.MergeWithFlags(windowPtr, colorPtr)

	// Validate merged configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Build the pattern set from group flags and positional globs
	screenshots, _ := cmd.Flags().GetBool("scr")
	images, _ := cmd.Flags().GetBool("images")
	videos, _ := cmd.Flags().GetBool("videos")
	patterns, err := pattern.Build(screenshots, images, videos, args)
	if err != nil {
		return err
	}

	dirs, err := sourceDirs(cmd)
	if err != nil {
		return err
	}

	dest, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	rep := display.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Color, verbose)

	result := selector.Select(selector.Options{
		Directories: dirs,
		Patterns:    patterns,
		Window:      time.Duration(cfg.WindowMinutes) * time.Minute,
		Destination: dest,
	})

	rep.Scans(result.Scanned, result.SkippedDestination)
	rep.ScanErrors(result.Errors)
	rep.ModTimeFallback(result.ModTimeFallbacks())

	if len(result.Candidates) == 0 {
		rep.NothingFound()
		return nil
	}
	rep.Found(len(result.Candidates))

	// Per-file move failures are reported but never abort the run
	dryRun, _ := cmd.Flags().GetBool("dr")
	mv := &mover.Mover{Destination: dest, DryRun: dryRun}
	results := mv.Move(result.Candidates)
	for _, res := range results {
		rep.Result(res)
	}
	rep.Summary(models.Summarize(results))

	return nil
}

// sourceDirs resolves the directories to scan from the directory flags.
// Without any directory flag the current directory is scanned.
func sourceDirs(cmd *cobra.Command) ([]string, error) {
	docs, _ := cmd.Flags().GetBool("docs")
	desktop, _ := cmd.Flags().GetBool("desktop")
	downloads, _ := cmd.Flags().GetBool("dl")
	auto, _ := cmd.Flags().GetBool("auto")

	if !docs && !desktop && !downloads && !auto {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		return []string{cwd}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}

	var dirs []string
	if docs {
		dirs = append(dirs, filepath.Join(home, "Documents"))
	}
	if desktop {
		dirs = append(dirs, filepath.Join(home, "Desktop"))
	}
	if downloads {
		dirs = append(dirs, filepath.Join(home, "Downloads"))
	}
	if auto {
		dirs = append(dirs,
			home,
			filepath.Join(home, "Downloads"),
			filepath.Join(home, "Desktop"),
			filepath.Join(home, "Documents"),
		)
	}
	return dirs, nil
}
