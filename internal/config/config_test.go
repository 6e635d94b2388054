// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoadConfigMissingFile(t *testing.T) {
	useTempConfigDir(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestSaveAndLoadConfig(t *testing.T) {
	dir := useTempConfigDir(t)

	want := Config{Target: "~/src/app/main/default", Bundle: "Greetings", Language: "de"}
	require.NoError(t, SaveConfig(want))
	assert.FileExists(t, filepath.Join(dir, "label-manager", "config.yaml"))

	got, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := useTempConfigDir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "label-manager"), 0750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "label-manager", "config.yaml"), []byte("target: [unclosed"), 0640))

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestResolvePath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ResolvePath("~/project")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "project"), got)

	got, err = ResolvePath("force-app/main/default")
	require.NoError(t, err)
	assert.Equal(t, "force-app/main/default", got)
}

func TestResolvedTargetEmpty(t *testing.T) {
	got, err := Config{}.ResolvedTarget()
	require.NoError(t, err)
	assert.Empty(t, got)
}
