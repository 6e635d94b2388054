// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"

	"label-manager/internal/config"
	"label-manager/internal/metadata"

	"github.com/spf13/cobra"
)

// configSetting describes one configurable default.
type configSetting struct {
	key         string
	description string
	builtIn     string
	get         func(config.Config) string
	set         func(*config.Config, string)
}

var configSettings = []configSetting{
	{
		key:         "target",
		description: "source directory that holds the labels folder",
		builtIn:     metadata.DefaultTarget,
		get:         func(c config.Config) string { return c.Target },
		set:         func(c *config.Config, v string) { c.Target = v },
	},
	{
		key:         "bundle",
		description: "label bundle name",
		builtIn:     metadata.DefaultBundle,
		get:         func(c config.Config) string { return c.Bundle },
		set:         func(c *config.Config, v string) { c.Bundle = v },
	},
	{
		key:         "language",
		description: "language code for new labels",
		builtIn:     metadata.DefaultLanguage,
		get:         func(c config.Config) string { return c.Language },
		set:         func(c *config.Config, v string) { c.Language = v },
	},
}

// newConfigCmd is the parent command for all configuration-related subcommands
func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage label-manager configuration",
		Long: `Provides subcommands to manage the defaults used when a command does not
name a target directory, bundle or language. Explicit flags always win.`,
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Show the configuration file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	configCmd.AddCommand(pathCmd)

	for _, s := range configSettings {
		configCmd.AddCommand(newConfigSetCmd(s), newConfigGetCmd(s))
	}
	return configCmd
}

func newConfigSetCmd(s configSetting) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("set-%s <value>", s.key),
		Short: fmt.Sprintf("Set the default %s", s.description),
		Long: fmt.Sprintf(`Sets the default %s.
To revert to the built-in default (%s), set it to an empty string: lm config set-%s ""`,
			s.description, s.builtIn, s.key),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			s.set(&cfg, args[0])
			if err := config.SaveConfig(cfg); err != nil {
				return fmt.Errorf("saving configuration: %w", err)
			}

			if args[0] == "" {
				successColor.Fprintf(cmd.OutOrStdout(), "Default %s reset to %s.\n", s.key, s.builtIn)
			} else {
				successColor.Fprintf(cmd.OutOrStdout(), "Default %s set to: %s\n", s.key, args[0])
			}
			return nil
		},
	}
}

func newConfigGetCmd(s configSetting) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("get-%s", s.key),
		Short: fmt.Sprintf("Show the default %s", s.description),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			out := cmd.OutOrStdout()
			if v := s.get(cfg); v != "" {
				fmt.Fprintf(out, "Configured %s: %s\n", s.key, identifierColor.Sprint(v))
				if s.key == "target" {
					if resolved, err := config.ResolvePath(v); err == nil && resolved != v {
						fmt.Fprintf(out, "Resolved path: %s\n", resolved)
					}
				}
				return nil
			}
			fmt.Fprintf(out, "Configured %s: %s %s\n", s.key, identifierColor.Sprint(s.builtIn), dimColor.Sprint("(default)"))
			return nil
		},
	}
}
