// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"net/http"
	"time"

	"label-manager/internal/api"
	"label-manager/internal/logger"
	"label-manager/internal/web"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API for label bundles",
		Long: `Starts an HTTP server exposing label bundles:

  GET  /api/bundles           bundle names under the target
  GET  /api/labels            labels of a bundle
  GET  /api/labels/{name}     one label
  POST /api/labels            add a label

Every route accepts bundle and target query parameters. Any other path
serves a small page for browsing and adding labels.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			return runWebServer(cmd, addr)
		},
	}
	serveCmd.Flags().String("addr", "127.0.0.1:8080", "address to listen on")
	return serveCmd
}

// runWebServer starts the HTTP server and blocks until it fails.
func runWebServer(cmd *cobra.Command, addr string) error {
	router := api.NewRouter()
	// Registered after the API routes so they take precedence.
	router.PathPrefix("/").Handler(http.FileServer(web.GetFileSystem()))

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	statusColor.Fprintf(cmd.OutOrStdout(), "Starting web server on %s\n", addr)
	logger.Info("Starting web server", "addr", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Errorf("Web server stopped: %v", err)
		return err
	}
	return nil
}
