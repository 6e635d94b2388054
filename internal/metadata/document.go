// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package metadata

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"label-manager/internal/logger"
)

const (
	labelsDir  = "labels"
	fileSuffix = ".labels-meta.xml"

	xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"
	indent         = "    "
)

// Dir returns the labels folder under a source target directory.
func Dir(target string) string {
	return filepath.Join(target, labelsDir)
}

// Path returns the file that holds a bundle: <target>/labels/<bundle>.labels-meta.xml.
func Path(target, bundle string) string {
	return filepath.Join(Dir(target), bundle+fileSuffix)
}

// BundleName strips the directory and suffix from a bundle file path.
// The second result is false when the file is not a label bundle.
func BundleName(path string) (string, bool) {
	base := filepath.Base(path)
	if len(base) <= len(fileSuffix) || base[len(base)-len(fileSuffix):] != fileSuffix {
		return "", false
	}
	return base[:len(base)-len(fileSuffix)], true
}

// EnsureDir creates the labels folder under target if it does not exist.
func EnsureDir(target string) error {
	dir := Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create labels directory %s: %w", dir, err)
	}
	return nil
}

// Load reads the bundle at path. A missing file is not an error: the
// default document is returned instead. The result is always normalized.
func Load(path string) (*CustomLabels, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug("Label bundle not found, using default document", "path", path)
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read label bundle %s: %w", path, err)
	}

	doc, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse label bundle %s: %w", path, err)
	}
	logger.Debug("Label bundle loaded", "path", path, "label_count", len(doc.Labels))
	return doc, nil
}

// Unmarshal decodes a bundle document and normalizes it.
func Unmarshal(data []byte) (*CustomLabels, error) {
	var doc CustomLabels
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return Normalize(&doc), nil
}

// Marshal encodes a bundle with the fixed output format: XML declaration,
// four-space indentation, CustomLabels root and a trailing newline.
// The root attributes are fixed up first. Labels holding characters XML
// cannot represent are rejected rather than altered.
func Marshal(doc *CustomLabels) ([]byte, error) {
	for _, l := range doc.Labels {
		if err := l.Validate(); err != nil {
			return nil, err
		}
	}
	FixAttributes(doc)

	body, err := xml.MarshalIndent(doc, "", indent)
	if err != nil {
		return nil, fmt.Errorf("failed to encode label bundle: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(len(xmlDeclaration) + len(body) + 1)
	buf.WriteString(xmlDeclaration)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Save encodes doc and overwrites the file at path in full.
func Save(path string, doc *CustomLabels) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write label bundle %s: %w", path, err)
	}
	logger.Debug("Label bundle written", "path", path, "label_count", len(doc.Labels))
	return nil
}
