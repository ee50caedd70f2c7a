package main

import (
	"github.com/spf13/cobra"

	"github.com/docmend/go-docmend/pkg/docmend"
)

// validateCmd runs the read-only checks and gates on the verdict.
var validateCmd = &cobra.Command{
	Use:   "validate <package-dir>",
	Short: "Validate an unpacked package without modifying it",
	Long: `Validate the structural integrity of an unpacked document package.

Five checks run: identifier uniqueness across annotation kinds, comment
start/end/reference consistency, comment artifact cross-references,
duplicate manifest entries and whitespace preservation. Nothing is
modified.

The exit status carries the verdict so pipelines can gate repacking on it:
0 for PASS, 1 for FAIL.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	pkg, err := docmend.OpenFs(packageFs, args[0], docmend.WithLogger(newLogger()))
	if err != nil {
		return err
	}

	report, err := pkg.Validate()
	if err != nil {
		return err
	}
	if err := renderValidationReport(cmd.OutOrStdout(), pkg.Root(), report); err != nil {
		return err
	}
	if !report.Passed() {
		// The report already communicates the FAIL; only the exit code is
		// needed beyond it.
		cmd.SilenceErrors = true
		return &ExitError{Code: 1}
	}
	return nil
}
