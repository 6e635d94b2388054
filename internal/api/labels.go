// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package api exposes label bundles over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"label-manager/internal/config"
	"label-manager/internal/discovery"
	"label-manager/internal/labels"
	"label-manager/internal/logger"
	"label-manager/internal/metadata"

	"github.com/gorilla/mux"
)

// addMu serializes adds made through this process.
var addMu sync.Mutex

// NewRouter returns a router with every API route registered.
func NewRouter() *mux.Router {
	router := mux.NewRouter()
	RegisterLabelRoutes(router)
	return router
}

// RegisterLabelRoutes registers the API routes for label bundles.
func RegisterLabelRoutes(router *mux.Router) {
	router.HandleFunc("/api/bundles", listBundlesHandler).Methods("GET")
	router.HandleFunc("/api/labels", listLabelsHandler).Methods("GET")
	router.HandleFunc("/api/labels", addLabelHandler).Methods("POST")
	router.HandleFunc("/api/labels/{name}", getLabelHandler).Methods("GET")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("Failed to encode API response", "error", err)
	}
}

// requestOptions resolves bundle and target from the query string, falling
// back to the user configuration and built-in defaults.
func requestOptions(r *http.Request) labels.AddOptions {
	q := r.URL.Query()
	return resolveOptions(labels.AddOptions{
		Bundle: q.Get("bundle"),
		Target: q.Get("target"),
	})
}

func resolveOptions(opts labels.AddOptions) labels.AddOptions {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warn("Could not load config, using built-in defaults", "error", err)
	}
	opts.Target = discovery.GetTargetDirectory(opts.Target)
	return opts.ApplyConfig(cfg).WithDefaults()
}

// listBundlesHandler handles requests to list the bundles of a target.
func listBundlesHandler(w http.ResponseWriter, r *http.Request) {
	opts := requestOptions(r)
	names, err := discovery.BundleNames(opts.Target)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error finding bundles: %v", err), http.StatusInternalServerError)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, names)
}

// listLabelsHandler handles requests to list all labels of a bundle.
func listLabelsHandler(w http.ResponseWriter, r *http.Request) {
	opts := requestOptions(r)
	all, err := labels.List(opts.Target, opts.Bundle)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error loading bundle: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, all)
}

// getLabelHandler handles requests to get one label by fullName.
func getLabelHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	opts := requestOptions(r)

	all, err := labels.List(opts.Target, opts.Bundle)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error loading bundle: %v", err), http.StatusInternalServerError)
		return
	}
	for _, l := range all {
		if l.FullName == name {
			writeJSON(w, http.StatusOK, l)
			return
		}
	}
	http.Error(w, "Label not found", http.StatusNotFound)
}

// addLabelHandler handles requests to add a new label.
func addLabelHandler(w http.ResponseWriter, r *http.Request) {
	var req labels.AddOptions
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, labels.ErrTextRequired.Error(), http.StatusBadRequest)
		return
	}

	addMu.Lock()
	res, err := labels.Add(resolveOptions(req))
	addMu.Unlock()

	switch {
	case errors.Is(err, labels.ErrDuplicateLabel):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, metadata.ErrInvalidCharacter):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case err != nil:
		http.Error(w, fmt.Sprintf("Error adding label: %v", err), http.StatusInternalServerError)
	default:
		writeJSON(w, http.StatusCreated, res.Label)
	}
}
