// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"os"
	"strings"

	"label-manager/internal/config"
	"label-manager/internal/discovery"
	"label-manager/internal/labels"
	"label-manager/internal/logger"
	"label-manager/internal/metadata"

	"github.com/spf13/cobra"
)

func newLabelCmd() *cobra.Command {
	labelCmd := &cobra.Command{
		Use:   "label",
		Short: "Manage custom labels in the local source",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a custom label in the local source",
		Long: `Appends a custom label to <target>/labels/<bundle>.labels-meta.xml, creating
the folder and file when they do not exist yet. Push it when you're done.

Without --name and --description both are derived from the text: common
stopwords are dropped, anything that is not a letter or digit is removed and
the result is cut to 80 characters.`,
		Example: `  lm label add -t "This is some Text"
  lm label add -t "Welcome back" -n Welcome_Back --categories Home,Nav --protected`,
		Args: cobra.NoArgs,
		RunE: runLabelAdd,
	}
	addCmd.Flags().StringP("text", "t", "", "the text you want to turn into a label")
	addCmd.Flags().String("bundle", metadata.DefaultBundle, "label bundle when you want to organize them more")
	addCmd.Flags().StringP("name", "n", "", "api name for your label")
	addCmd.Flags().StringP("description", "d", "", "description for your label")
	addCmd.Flags().Bool("protected", false, "mark as protected (packaged, subscribers cannot change the label)")
	addCmd.Flags().StringSlice("categories", nil, "categories to add to your custom label")
	addCmd.Flags().StringP("language", "l", metadata.DefaultLanguage, "language code")
	addCmd.Flags().String("target", metadata.DefaultTarget, "where to create the labels folder (if it doesn't exist already) and file")
	addCmd.Flags().Bool("json", false, "Print the updated bundle as JSON")
	_ = addCmd.MarkFlagRequired("text")
	_ = addCmd.RegisterFlagCompletionFunc("bundle", bundleCompletionFunc)
	_ = addCmd.MarkFlagDirname("target")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the labels of a bundle",
		Args:  cobra.NoArgs,
		RunE:  runLabelList,
	}
	addBundleFlags(listCmd)
	listCmd.Flags().Bool("json", false, "Print labels as JSON")

	showCmd := &cobra.Command{
		Use:               "show <name>",
		Short:             "Show one label by its API name",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: labelNameCompletionFunc,
		RunE:              runLabelShow,
	}
	addBundleFlags(showCmd)
	showCmd.Flags().Bool("json", false, "Print the label as JSON")

	bundlesCmd := &cobra.Command{
		Use:   "bundles",
		Short: "List the label bundles under the target directory",
		Args:  cobra.NoArgs,
		RunE:  runLabelBundles,
	}
	bundlesCmd.Flags().String("target", metadata.DefaultTarget, "source directory that holds the labels folder")
	_ = bundlesCmd.MarkFlagDirname("target")

	labelCmd.AddCommand(addCmd, listCmd, showCmd, bundlesCmd)
	return labelCmd
}

func addBundleFlags(cmd *cobra.Command) {
	cmd.Flags().String("bundle", metadata.DefaultBundle, "label bundle to read")
	cmd.Flags().String("target", metadata.DefaultTarget, "source directory that holds the labels folder")
	_ = cmd.RegisterFlagCompletionFunc("bundle", bundleCompletionFunc)
	_ = cmd.MarkFlagDirname("target")
}

// changedString returns the flag value only when it was set on the command
// line, so unset flags can fall back to the configuration.
func changedString(cmd *cobra.Command, name string) (string, error) {
	if cmd.Flags().Lookup(name) == nil || !cmd.Flags().Changed(name) {
		return "", nil
	}
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return value, nil
}

// resolveOptions layers explicit flags over the configuration file over the
// built-in defaults.
func resolveOptions(opts labels.AddOptions) labels.AddOptions {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warn("Could not load config, using built-in defaults", "error", err)
		warnColor.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	opts.Target = discovery.GetTargetDirectory(opts.Target)
	return opts.ApplyConfig(cfg).WithDefaults()
}

// bundleOptionsFromFlags reads --bundle and --target.
func bundleOptionsFromFlags(cmd *cobra.Command) (labels.AddOptions, error) {
	var opts labels.AddOptions
	var err error
	if opts.Bundle, err = changedString(cmd, "bundle"); err != nil {
		return opts, err
	}
	if opts.Target, err = changedString(cmd, "target"); err != nil {
		return opts, err
	}
	return resolveOptions(opts), nil
}

// addOptionsFromFlags builds the immutable options for one add.
func addOptionsFromFlags(cmd *cobra.Command) (labels.AddOptions, error) {
	flags := cmd.Flags()

	text, err := flags.GetString("text")
	if err != nil {
		return labels.AddOptions{}, err
	}
	name, err := flags.GetString("name")
	if err != nil {
		return labels.AddOptions{}, err
	}
	description, err := flags.GetString("description")
	if err != nil {
		return labels.AddOptions{}, err
	}
	protected, err := flags.GetBool("protected")
	if err != nil {
		return labels.AddOptions{}, err
	}
	categories, err := flags.GetStringSlice("categories")
	if err != nil {
		return labels.AddOptions{}, err
	}

	opts := labels.AddOptions{
		Text:        text,
		Name:        name,
		Description: description,
		Protected:   protected,
		Categories:  categories,
	}
	if opts.Bundle, err = changedString(cmd, "bundle"); err != nil {
		return opts, err
	}
	if opts.Language, err = changedString(cmd, "language"); err != nil {
		return opts, err
	}
	if opts.Target, err = changedString(cmd, "target"); err != nil {
		return opts, err
	}
	return resolveOptions(opts), nil
}

func runLabelAdd(cmd *cobra.Command, args []string) error {
	opts, err := addOptionsFromFlags(cmd)
	if err != nil {
		return err
	}

	res, err := labels.Add(opts)
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		return printJSON(cmd.OutOrStdout(), res.Document)
	}
	successColor.Fprintf(cmd.OutOrStdout(), "Added %s to %s in local source\n",
		identifierColor.Sprint(res.Label.FullName), res.Path)
	return nil
}

func runLabelList(cmd *cobra.Command, args []string) error {
	opts, err := bundleOptionsFromFlags(cmd)
	if err != nil {
		return err
	}

	all, err := labels.List(opts.Target, opts.Bundle)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return printJSON(out, all)
	}

	if len(all) == 0 {
		fmt.Fprintf(out, "No labels in %s\n", opts.Path())
		return nil
	}

	statusColor.Fprintf(out, "Labels in %s:\n", opts.Path())
	fmt.Fprintf(out, "  %-40s %-8s %-9s %s\n", "NAME", "LANGUAGE", "PROTECTED", "VALUE")
	fmt.Fprintf(out, "  %-40s %-8s %-9s %s\n", strings.Repeat("-", 4), strings.Repeat("-", 8), strings.Repeat("-", 9), strings.Repeat("-", 5))
	for _, l := range all {
		protected := ""
		if l.Protected {
			protected = "yes"
		}
		fmt.Fprintf(out, "  %-40s %-8s %-9s %s\n", identifierColor.Sprint(l.FullName), l.Language, protected, l.Value)
	}
	return nil
}

func runLabelShow(cmd *cobra.Command, args []string) error {
	opts, err := bundleOptionsFromFlags(cmd)
	if err != nil {
		return err
	}

	doc, err := metadata.Load(opts.Path())
	if err != nil {
		return err
	}
	label, ok := doc.Find(args[0])
	if !ok {
		return fmt.Errorf("label %s not found in %s", args[0], opts.Path())
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return printJSON(out, label)
	}

	fmt.Fprintf(out, "Name:         %s\n", identifierColor.Sprint(label.FullName))
	fmt.Fprintf(out, "Description:  %s\n", label.ShortDescription)
	fmt.Fprintf(out, "Language:     %s\n", label.Language)
	fmt.Fprintf(out, "Protected:    %t\n", label.Protected)
	if label.Categories != "" {
		fmt.Fprintf(out, "Categories:   %s\n", label.Categories)
	}
	fmt.Fprintf(out, "Value:        %s\n", label.Value)
	return nil
}

func runLabelBundles(cmd *cobra.Command, args []string) error {
	explicit, err := changedString(cmd, "target")
	if err != nil {
		return err
	}
	target := discovery.GetTargetDirectory(explicit)

	bundles, err := discovery.FindBundles(target)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(bundles) == 0 {
		fmt.Fprintf(out, "No label bundles found in %s\n", metadata.Dir(target))
		return nil
	}
	for _, b := range bundles {
		fmt.Fprintf(out, "- %s %s\n", identifierColor.Sprint(b.Name), dimColor.Sprintf("(%s)", b.Path))
	}
	return nil
}
