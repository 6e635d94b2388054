// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"strings"

	"label-manager/internal/discovery"
	"label-manager/internal/labels"

	"github.com/spf13/cobra"
)

// completionTarget is the target directory a completion should look in:
// --target when it was typed, otherwise the configured or default target.
func completionTarget(cmd *cobra.Command) string {
	explicit, _ := changedString(cmd, "target")
	return discovery.GetTargetDirectory(explicit)
}

// bundleCompletionFunc completes --bundle with the bundles found under the target.
func bundleCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names, err := discovery.BundleNames(completionTarget(cmd))
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return filterPrefix(names, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// labelNameCompletionFunc completes label API names from the selected bundle.
func labelNameCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	opts, err := bundleOptionsFromFlags(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	all, err := labels.List(opts.Target, opts.Bundle)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	names := make([]string, 0, len(all))
	for _, l := range all {
		names = append(names, l.FullName)
	}
	return filterPrefix(names, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func filterPrefix(values []string, prefix string) []string {
	var out []string
	for _, v := range values {
		if strings.HasPrefix(v, prefix) {
			out = append(out, v)
		}
	}
	return out
}
