package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/docmend/go-docmend/internal/config"
)

// packageFs is the filesystem package directories are opened on. Tests
// substitute a wrapper that rejects writes.
var packageFs afero.Fs = afero.NewOsFs()

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// cfgFile allows specifying a custom config file.
	cfgFile string
	// formatFlag overrides the configured output format.
	formatFlag string
	// logLevelFlag overrides the configured log level.
	logLevelFlag string
	// quietFlag suppresses diagnostic logging.
	quietFlag bool

	// cfg is the effective configuration after file, env and flag merging.
	cfg = config.DefaultConfig()
	// cfgPath is the config file the values came from, empty for defaults.
	cfgPath string

	// rootCmd represents the base command when called without any subcommands.
	rootCmd = &cobra.Command{
		Use:   "docmend",
		Short: "Repair and validate unpacked DOCX packages",
		Long: TitleStyle.Render("docmend") + SubtitleStyle.Render(" - structural repair for unpacked DOCX packages") + `

docmend operates on an extracted document package directory. It repairs the
defect classes that direct XML edits leave behind (identifier collisions,
duplicate manifest entries, orphaned comment metadata, unpreserved
whitespace) and validates packages before repacking.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Extract a .docx archive into a directory
  2. Run: docmend repair <dir>
  3. Gate the repack step on: docmend validate <dir>

` + SubtitleStyle.Render("Examples:") + `
  docmend repair build/extracted           Repair in place, print the summary
  docmend validate build/extracted         Exit 1 if any check fails
  docmend repair --format json extracted   Machine-readable summary
  docmend config show                      Show effective configuration`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadRootConfig()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.docmend.yaml or $HOME/.docmend.yaml)")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "output format: text, json or yaml")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "suppress diagnostic logging")

	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	// fang.Execute provides the styled help and error output; the version is
	// passed through fang since it overrides rootCmd.Version.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// loadRootConfig merges the config file, environment and flags. Flags win.
// A broken file at the default locations degrades to defaults with a warning;
// an explicitly requested file must load.
func loadRootConfig() error {
	loaded, path, err := config.Load(cfgFile)
	if err != nil {
		if cfgFile != "" {
			return err
		}
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
		loaded = config.DefaultConfig()
		path = ""
	}

	if formatFlag != "" {
		loaded.Format = formatFlag
	}
	if logLevelFlag != "" {
		loaded.LogLevel = logLevelFlag
	}
	if quietFlag {
		loaded.Quiet = true
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	cfg = loaded
	cfgPath = path
	return nil
}

// newLogger builds the diagnostic logger the engine reports through.
func newLogger() *log.Logger {
	if cfg.Quiet {
		return log.New(io.Discard)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "docmend",
	})
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}
