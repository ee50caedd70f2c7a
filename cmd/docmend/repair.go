package main

import (
	"github.com/spf13/cobra"

	"github.com/docmend/go-docmend/pkg/docmend"
)

// repairCmd runs all repair phases over a package directory.
var repairCmd = &cobra.Command{
	Use:   "repair <package-dir>",
	Short: "Repair structural defects in an unpacked package",
	Long: `Repair structural defects in an unpacked document package.

Four phases run in order: identifier deconfliction, relationship
deduplication, orphaned-metadata cleanup and whitespace preservation.
Parts are modified in place; a summary of the changes is always printed,
all-zero when the package was already clean.

Missing or unparseable parts are skipped, never fatal. A failure to write
a repaired part exits 1; the summary printed alongside may then overstate
what reached disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runRepair,
}

func runRepair(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	pkg, err := docmend.OpenFs(packageFs, args[0], docmend.WithLogger(newLogger()))
	if err != nil {
		return err
	}

	summary, repairErr := pkg.Repair()
	if err := renderRepairSummary(cmd.OutOrStdout(), pkg.Root(), summary); err != nil {
		return err
	}
	if repairErr != nil {
		return &ExitError{Code: 1, Err: repairErr}
	}
	return nil
}
