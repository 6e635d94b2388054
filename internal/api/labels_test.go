// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"label-manager/internal/logger"
	"label-manager/internal/metadata"
)

func TestMain(m *testing.M) {
	logger.Discard()
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	srv := httptest.NewServer(NewRouter())
	t.Cleanup(srv.Close)
	return srv, t.TempDir()
}

func postLabel(t *testing.T, srv *httptest.Server, body map[string]any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(srv.URL+"/api/labels", "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestAddAndListLabels(t *testing.T) {
	srv, target := newTestServer(t)

	resp := postLabel(t, srv, map[string]any{
		"text":       "Welcome back",
		"categories": []string{"Home", "Nav"},
		"target":     target,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created metadata.CustomLabel
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "Welcomeback", created.FullName)
	assert.Equal(t, "Home,Nav", created.Categories)
	assert.Equal(t, "en_US", created.Language)

	q := url.Values{"target": {target}}
	listResp, err := http.Get(srv.URL + "/api/labels?" + q.Encode())
	require.NoError(t, err)
	defer listResp.Body.Close()
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var all []metadata.CustomLabel
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&all))
	assert.Equal(t, []metadata.CustomLabel{created}, all)

	bundlesResp, err := http.Get(srv.URL + "/api/bundles?" + q.Encode())
	require.NoError(t, err)
	defer bundlesResp.Body.Close()
	var bundles []string
	require.NoError(t, json.NewDecoder(bundlesResp.Body).Decode(&bundles))
	assert.Equal(t, []string{"CustomLabels"}, bundles)
}

func TestAddDuplicateReturnsConflict(t *testing.T) {
	srv, target := newTestServer(t)

	first := postLabel(t, srv, map[string]any{"text": "Hello", "name": "Foo", "target": target})
	require.Equal(t, http.StatusCreated, first.StatusCode)

	second := postLabel(t, srv, map[string]any{"text": "Other", "name": "Foo", "target": target})
	assert.Equal(t, http.StatusConflict, second.StatusCode)
}

func TestAddRejectsBadRequests(t *testing.T) {
	srv, target := newTestServer(t)

	resp := postLabel(t, srv, map[string]any{"target": target})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	raw, err := http.Post(srv.URL+"/api/labels", "application/json", bytes.NewBufferString("{"))
	require.NoError(t, err)
	defer raw.Body.Close()
	assert.Equal(t, http.StatusBadRequest, raw.StatusCode)
}

func TestGetLabel(t *testing.T) {
	srv, target := newTestServer(t)
	postLabel(t, srv, map[string]any{"text": "Hi", "name": "Greeting", "bundle": "Home", "target": target})

	q := url.Values{"target": {target}, "bundle": {"Home"}}
	resp, err := http.Get(srv.URL + "/api/labels/Greeting?" + q.Encode())
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got metadata.CustomLabel
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "Hi", got.Value)

	missing, err := http.Get(srv.URL + "/api/labels/Nope?" + q.Encode())
	require.NoError(t, err)
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestListMissingBundleIsEmpty(t *testing.T) {
	srv, target := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/labels?" + url.Values{"target": {target}}.Encode())
	require.NoError(t, err)
	defer resp.Body.Close()

	var all []metadata.CustomLabel
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&all))
	assert.Empty(t, all)
}

func TestAddRejectsTextXMLCannotCarry(t *testing.T) {
	srv, target := newTestServer(t)

	resp := postLabel(t, srv, map[string]any{"text": "It's 'x'\x0b end", "target": target})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NoFileExists(t, metadata.Path(target, metadata.DefaultBundle))
}
