// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package cli implements the lm command tree.
package cli

import (
	"encoding/json"
	"io"
	"os"

	"label-manager/internal/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	statusColor     = color.New(color.FgCyan)
	errorColor      = color.New(color.FgRed)
	successColor    = color.New(color.FgGreen)
	warnColor       = color.New(color.FgYellow)
	identifierColor = color.New(color.FgBlue)
	dimColor        = color.New(color.Faint)
)

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "lm",
		Short: "Label Manager CLI",
		Long: `A command-line interface to manage custom labels in Salesforce source.

Labels live in <target>/labels/<bundle>.labels-meta.xml. Defaults for the
target, bundle and language can be stored in ~/.config/label-manager/config.yaml.
Run lm without arguments to add a label through an interactive form.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.InitLogger(false, verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(
		newLabelCmd(),
		newConfigCmd(),
		newServeCmd(),
	)
	return rootCmd
}

// RunCLI executes the command tree and exits non-zero on failure.
func RunCLI() {
	if err := NewRootCommand().Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
