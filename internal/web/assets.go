// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package web provides access to the embedded label form served by lm serve.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed all:assets
var embeddedFiles embed.FS

// GetFileSystem returns an http.FileSystem that serves the embedded web assets
func GetFileSystem() http.FileSystem {
	webUI, err := fs.Sub(embeddedFiles, "assets")
	if err != nil {
		panic(err)
	}
	return http.FS(webUI)
}
