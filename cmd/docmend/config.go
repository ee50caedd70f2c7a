package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// configCmd groups configuration subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage docmend configuration",
	Long: `Manage docmend configuration.

Configuration is read from .docmend.yaml in the current directory or $HOME,
overridden by DOCMEND_* environment variables, overridden by flags.

Keys: format (text|json|yaml), log_level (debug|info|warn|error), quiet.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the configuration file in use",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgPath == "" {
			fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("(no config file, using defaults)"))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), cfgPath)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	return renderConfig(cmd.OutOrStdout(), cfg, cfgPath)
}
