// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package metadata

import (
	"os"
	"slices"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"label-manager/internal/logger"
)

const singleLabelDoc = `<?xml version="1.0" encoding="UTF-8"?>
<CustomLabels xmlns="http://soap.sforce.com/2006/04/metadata">
    <labels>
        <fullName>Greeting</fullName>
        <categories>Home</categories>
        <language>en_US</language>
        <protected>true</protected>
        <shortDescription>Greeting</shortDescription>
        <value>Hello there</value>
    </labels>
</CustomLabels>
`

func TestMain(m *testing.M) {
	logger.Discard()
	os.Exit(m.Run())
}

var ignoreXMLName = cmpopts.IgnoreFields(CustomLabels{}, "XMLName")

func TestUnmarshalSingleLabelYieldsList(t *testing.T) {
	doc, err := Unmarshal([]byte(singleLabelDoc))
	require.NoError(t, err)

	want := &CustomLabels{
		Xmlns: Namespace,
		Labels: []CustomLabel{{
			FullName:         "Greeting",
			Categories:       "Home",
			Language:         "en_US",
			Protected:        true,
			ShortDescription: "Greeting",
			Value:            "Hello there",
		}},
	}
	if diff := cmp.Diff(want, doc, ignoreXMLName); diff != "" {
		t.Fatalf("decoded document mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	tests := []struct {
		name string
		doc  *CustomLabels
		want int
	}{
		{name: "nil document", doc: nil, want: 0},
		{name: "nil labels", doc: &CustomLabels{Xmlns: Namespace}, want: 0},
		{name: "one label", doc: &CustomLabels{Labels: []CustomLabel{{FullName: "A"}}}, want: 1},
		{name: "two labels", doc: &CustomLabels{Labels: []CustomLabel{{FullName: "A"}, {FullName: "B"}}}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := Normalize(tt.doc)
			require.NotNil(t, once.Labels)
			assert.Len(t, once.Labels, tt.want)

			snapshot := slices.Clone(once.Labels)
			twice := Normalize(once)
			assert.Same(t, once, twice)
			assert.Equal(t, snapshot, twice.Labels)
		})
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	doc, err := Load(filepath.Join(t.TempDir(), "labels", "Nope.labels-meta.xml"))
	require.NoError(t, err)
	assert.Equal(t, Namespace, doc.Xmlns)
	assert.NotNil(t, doc.Labels)
	assert.Empty(t, doc.Labels)
}

func TestLoadMalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Bad.labels-meta.xml")
	require.NoError(t, os.WriteFile(path, []byte("<CustomLabels><labels>"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoadWrongRootElement(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Other.labels-meta.xml")
	require.NoError(t, os.WriteFile(path, []byte("<Profile></Profile>"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestMarshalFormat(t *testing.T) {
	doc := Default()
	doc.Append(CustomLabel{
		FullName:         "Hello",
		Language:         "en_US",
		ShortDescription: "Hello",
		Value:            "Hello",
	})

	data, err := Marshal(doc)
	require.NoError(t, err)

	want := `<?xml version="1.0" encoding="UTF-8"?>
<CustomLabels xmlns="http://soap.sforce.com/2006/04/metadata">
    <labels>
        <fullName>Hello</fullName>
        <language>en_US</language>
        <protected>false</protected>
        <shortDescription>Hello</shortDescription>
        <value>Hello</value>
    </labels>
</CustomLabels>
`
	assert.Equal(t, want, string(data))
}

func TestRoundTripKeepsSingleNamespace(t *testing.T) {
	doc, err := Unmarshal([]byte(singleLabelDoc))
	require.NoError(t, err)

	data, err := Marshal(doc)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(string(data), "xmlns="))
	assert.Equal(t, singleLabelDoc, string(data))
}

func TestFixAttributesRestoresNamespace(t *testing.T) {
	doc := &CustomLabels{}
	FixAttributes(doc)
	assert.Equal(t, Namespace, doc.Xmlns)
	assert.Equal(t, RootElement, doc.XMLName.Local)
	assert.Empty(t, doc.XMLName.Space)

	custom := &CustomLabels{Xmlns: "urn:other"}
	FixAttributes(custom)
	assert.Equal(t, "urn:other", custom.Xmlns)
}

const extraRootAttrsDoc = `<?xml version="1.0" encoding="UTF-8"?>
<CustomLabels xmlns="http://soap.sforce.com/2006/04/metadata" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="urn:labels labels.xsd" xml:lang="en">
    <labels>
        <fullName>Greeting</fullName>
        <language>en_US</language>
        <protected>false</protected>
        <shortDescription>Greeting</shortDescription>
        <value>Hello</value>
    </labels>
</CustomLabels>
`

func TestRoundTripKeepsExtraRootAttributes(t *testing.T) {
	doc, err := Unmarshal([]byte(extraRootAttrsDoc))
	require.NoError(t, err)

	data, err := Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, extraRootAttrsDoc, string(data))

	// A second pass over the fixed-up document changes nothing.
	again, err := Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, extraRootAttrsDoc, string(again))
}

func TestSaveKeepsExtraRootAttributesWhenAppending(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CustomLabels.labels-meta.xml")
	require.NoError(t, os.WriteFile(path, []byte(extraRootAttrsDoc), 0644))

	doc, err := Load(path)
	require.NoError(t, err)
	doc.Append(CustomLabel{FullName: "Bye", Language: "en_US", ShortDescription: "Bye", Value: "Bye"})
	require.NoError(t, Save(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"`)
	assert.Contains(t, string(data), `xsi:schemaLocation="urn:labels labels.xsd"`)
	assert.Contains(t, string(data), `xml:lang="en"`)
	assert.Equal(t, 1, strings.Count(string(data), `xmlns="`))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, reloaded.Labels, 2)
}

func TestValidateRejectsCharactersOutsideXML(t *testing.T) {
	tests := []struct {
		name  string
		label CustomLabel
		ok    bool
	}{
		{name: "plain", label: CustomLabel{FullName: "A", Value: "Tab\tand\nnewline, \"quotes\" & <tags>"}, ok: true},
		{name: "non-ascii", label: CustomLabel{FullName: "A", Value: "Grüße 😀"}, ok: true},
		{name: "vertical tab", label: CustomLabel{FullName: "A", Value: "It's 'x'\x0b end"}},
		{name: "nul in description", label: CustomLabel{FullName: "A", ShortDescription: "a\x00b"}},
		{name: "invalid utf-8", label: CustomLabel{FullName: "A", Value: "bad \xff byte"}},
		{name: "noncharacter", label: CustomLabel{FullName: "A", Value: "\uFFFE"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.label.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidCharacter)
		})
	}
}

func TestSaveRejectsInvalidCharacterWithoutWriting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CustomLabels.labels-meta.xml")
	doc := Default()
	doc.Append(CustomLabel{FullName: "Bad", Language: "en_US", ShortDescription: "Bad", Value: "It's 'x'\x0b end"})

	err := Save(path, doc)
	require.ErrorIs(t, err, ErrInvalidCharacter)
	assert.Contains(t, err.Error(), "U+000B")
	assert.NoFileExists(t, path)
}

func TestSaveOverwritesFile(t *testing.T) {
	target := t.TempDir()
	require.NoError(t, EnsureDir(target))
	path := Path(target, DefaultBundle)
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", 4096)), 0644))

	doc := Default()
	doc.Append(CustomLabel{FullName: "A", Language: "en_US", ShortDescription: "A", Value: "A"})
	require.NoError(t, Save(path, doc))

	reloaded, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(doc.Labels, reloaded.Labels); diff != "" {
		t.Fatalf("labels changed on reload (-want +got):\n%s", diff)
	}
}

func TestPathHelpers(t *testing.T) {
	path := Path("force-app/main/default", "Greetings")
	assert.Equal(t, filepath.Join("force-app", "main", "default", "labels", "Greetings.labels-meta.xml"), path)

	name, ok := BundleName(path)
	assert.True(t, ok)
	assert.Equal(t, "Greetings", name)

	_, ok = BundleName("notes.xml")
	assert.False(t, ok)
	_, ok = BundleName(".labels-meta.xml")
	assert.False(t, ok)
}

func TestFind(t *testing.T) {
	doc := Default()
	doc.Append(CustomLabel{FullName: "Foo"})

	_, ok := doc.Find("foo")
	assert.False(t, ok)
	got, ok := doc.Find("Foo")
	assert.True(t, ok)
	assert.Equal(t, "Foo", got.FullName)
}
