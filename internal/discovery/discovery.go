// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package discovery locates the source target directory and the label
// bundles that live in its labels folder.
package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"label-manager/internal/config"
	"label-manager/internal/logger"
	"label-manager/internal/metadata"
)

// Bundle is a label bundle file found under a target directory.
type Bundle struct {
	Name string // Bundle name, the file name without .labels-meta.xml
	Path string // Path to the bundle file
}

// GetTargetDirectory picks the source target: the explicit value when given,
// then the configured target, then the built-in default.
func GetTargetDirectory(explicit string) string {
	if explicit != "" {
		logger.Debug("Using explicit target directory", "path", explicit)
		return explicit
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warn("Could not load config to check target", "error", err)
	} else if cfg.Target != "" {
		resolved, resolveErr := cfg.ResolvedTarget()
		if resolveErr != nil {
			logger.Warn("Could not resolve configured target path",
				"configured_path", cfg.Target,
				"error", resolveErr)
			return cfg.Target
		}
		logger.Debug("Using configured target directory", "path", resolved, "resolved_from", cfg.Target)
		return resolved
	}

	logger.Debug("No target configured, using default", "path", metadata.DefaultTarget)
	return metadata.DefaultTarget
}

// FindBundles lists the bundle files in <target>/labels sorted by name.
// A missing labels folder has no bundles.
func FindBundles(target string) ([]Bundle, error) {
	dir := metadata.Dir(target)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug("Labels directory not found", "directory", dir)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read labels directory %s: %w", dir, err)
	}

	var bundles []Bundle
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name, ok := metadata.BundleName(entry.Name())
		if !ok {
			continue
		}
		bundles = append(bundles, Bundle{Name: name, Path: filepath.Join(dir, entry.Name())})
	}

	sort.Slice(bundles, func(i, j int) bool { return bundles[i].Name < bundles[j].Name })
	logger.Debug("Bundle discovery completed", "directory", dir, "bundle_count", len(bundles))
	return bundles, nil
}

// BundleNames returns just the names from FindBundles.
func BundleNames(target string) ([]string, error) {
	bundles, err := FindBundles(target)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(bundles))
	for _, b := range bundles {
		names = append(names, b.Name)
	}
	return names, nil
}
