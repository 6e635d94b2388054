// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package labels

import (
	"label-manager/internal/config"
	"label-manager/internal/metadata"
)

// AddOptions is everything one add needs. It is built once per invocation
// and passed by value through the pipeline.
type AddOptions struct {
	Text        string   `json:"text"`
	Bundle      string   `json:"bundle,omitempty"`
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Protected   bool     `json:"protected,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Language    string   `json:"language,omitempty"`
	Target      string   `json:"target,omitempty"`
}

// WithDefaults fills bundle, language and target from the built-in defaults
// when they are empty.
func (o AddOptions) WithDefaults() AddOptions {
	if o.Bundle == "" {
		o.Bundle = metadata.DefaultBundle
	}
	if o.Language == "" {
		o.Language = metadata.DefaultLanguage
	}
	if o.Target == "" {
		o.Target = metadata.DefaultTarget
	}
	return o
}

// Path is the bundle file the options point at.
func (o AddOptions) Path() string {
	return metadata.Path(o.Target, o.Bundle)
}

// ApplyConfig fills empty bundle and language from the user configuration.
// Explicit values always win. The target is resolved separately by
// discovery.GetTargetDirectory.
func (o AddOptions) ApplyConfig(cfg config.Config) AddOptions {
	if o.Bundle == "" {
		o.Bundle = cfg.Bundle
	}
	if o.Language == "" {
		o.Language = cfg.Language
	}
	return o
}
