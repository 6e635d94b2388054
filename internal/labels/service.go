// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package labels adds custom labels to label bundles. Add is the whole
// pipeline: ensure the labels folder, load or default the bundle, derive the
// candidate, reject duplicates, append and write the file back.
package labels

import (
	"label-manager/internal/logger"
	"label-manager/internal/metadata"
)

// Result is the outcome of a successful Add.
type Result struct {
	Label    metadata.CustomLabel
	Path     string
	Document *metadata.CustomLabels
}

// Add appends a new label described by opts to its bundle file and returns
// the updated document. Nothing is written when an error is returned.
func Add(opts AddOptions) (*Result, error) {
	if opts.Text == "" {
		return nil, ErrTextRequired
	}
	opts = opts.WithDefaults()
	path := opts.Path()

	if err := metadata.EnsureDir(opts.Target); err != nil {
		return nil, err
	}

	doc, err := metadata.Load(path)
	if err != nil {
		return nil, err
	}

	label := Derive(opts)
	logger.Debug("Derived label", "full_name", label.FullName, "bundle", opts.Bundle)

	if err := label.Validate(); err != nil {
		return nil, err
	}

	if err := CheckUnique(doc.Labels, label); err != nil {
		logger.Warn("Duplicate label rejected", "full_name", label.FullName, "path", path)
		return nil, err
	}

	doc.Append(label)
	if err := metadata.Save(path, doc); err != nil {
		return nil, err
	}

	logger.Info("Label added", "full_name", label.FullName, "path", path, "label_count", len(doc.Labels))
	return &Result{Label: label, Path: path, Document: doc}, nil
}

// List returns the labels of a bundle in file order. A missing bundle file
// has no labels.
func List(target, bundle string) ([]metadata.CustomLabel, error) {
	opts := AddOptions{Target: target, Bundle: bundle}.WithDefaults()
	doc, err := metadata.Load(opts.Path())
	if err != nil {
		return nil, err
	}
	return doc.Labels, nil
}
