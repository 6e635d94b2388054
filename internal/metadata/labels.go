// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package metadata reads and writes custom label bundles, the
// <bundle>.labels-meta.xml documents of a Salesforce source tree.
// Documents are strongly typed; the single-vs-list ambiguity of the XML
// form is resolved when a file is decoded so callers always see a list.
package metadata

import (
	"encoding/xml"
	"errors"
	"fmt"
	"unicode/utf8"
)

const (
	// RootElement is the root tag of every label bundle, whatever the bundle is called.
	RootElement = "CustomLabels"

	// Namespace is the metadata API namespace written on the root element.
	Namespace = "http://soap.sforce.com/2006/04/metadata"

	// DefaultBundle is the bundle name used when none is given.
	DefaultBundle = "CustomLabels"

	// DefaultLanguage is the locale assigned to new labels.
	DefaultLanguage = "en_US"

	// DefaultTarget is the source directory that holds the labels folder.
	DefaultTarget = "force-app/main/default"

	xmlnsPrefix  = "xmlns"
	xmlNamespace = "http://www.w3.org/XML/1998/namespace"
)

// ErrInvalidCharacter is returned for label text that XML 1.0 cannot carry,
// such as most control characters or invalid UTF-8.
var ErrInvalidCharacter = errors.New("character not allowed in XML")

// CustomLabel is one entry in a label bundle. Field order matches the
// element order the metadata API expects.
type CustomLabel struct {
	FullName string `xml:"fullName" json:"fullName"`

	// Categories is a comma separated list; empty means the element is absent.
	Categories string `xml:"categories,omitempty" json:"categories,omitempty"`

	Language         string `xml:"language" json:"language"`
	Protected        bool   `xml:"protected" json:"protected"`
	ShortDescription string `xml:"shortDescription" json:"shortDescription"`
	Value            string `xml:"value" json:"value"`
}

// Validate fails with ErrInvalidCharacter when a field holds text that
// cannot be written to the bundle unchanged.
func (l CustomLabel) Validate() error {
	fields := []struct{ name, value string }{
		{"fullName", l.FullName},
		{"categories", l.Categories},
		{"language", l.Language},
		{"shortDescription", l.ShortDescription},
		{"value", l.Value},
	}
	for _, f := range fields {
		if err := checkText(f.value); err != nil {
			return fmt.Errorf("%s of label %q: %w", f.name, l.FullName, err)
		}
	}
	return nil
}

func checkText(s string) error {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return fmt.Errorf("%w: invalid UTF-8 at byte %d", ErrInvalidCharacter, i)
		}
		if !isXMLChar(r) {
			return fmt.Errorf("%w: %U at byte %d", ErrInvalidCharacter, r, i)
		}
		i += size
	}
	return nil
}

// isXMLChar matches the Char production of XML 1.0.
func isXMLChar(r rune) bool {
	return r == 0x09 ||
		r == 0x0A ||
		r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

// CustomLabels is the document root of a label bundle.
type CustomLabels struct {
	XMLName xml.Name      `xml:"CustomLabels" json:"-"`
	Xmlns   string        `xml:"xmlns,attr" json:"xmlns"`
	Attrs   []xml.Attr    `xml:",any,attr" json:"-"`
	Labels  []CustomLabel `xml:"labels" json:"labels"`
}

// Default returns an empty bundle carrying the metadata namespace.
func Default() *CustomLabels {
	return &CustomLabels{
		XMLName: xml.Name{Local: RootElement},
		Xmlns:   Namespace,
		Labels:  []CustomLabel{},
	}
}

// Find returns the label with the given fullName. Matching is case-sensitive.
func (d *CustomLabels) Find(fullName string) (CustomLabel, bool) {
	for _, l := range d.Labels {
		if l.FullName == fullName {
			return l, true
		}
	}
	return CustomLabel{}, false
}

// Append adds a label to the end of the bundle.
func (d *CustomLabels) Append(label CustomLabel) {
	d.Labels = append(d.Labels, label)
}

// Normalize makes sure the label field is a list. Decoding a document with a
// single <labels> element already yields a one-element slice; a document
// with none yields nil, which becomes an empty list here. Calling it again
// is a no-op.
func Normalize(doc *CustomLabels) *CustomLabels {
	if doc == nil {
		return Default()
	}
	if doc.Labels == nil {
		doc.Labels = []CustomLabel{}
	}
	return doc
}

// FixAttributes restores the root attributes before the document is written.
// A decoded root name carries the document namespace in XMLName.Space, which
// encoding/xml would emit as a second xmlns attribute, so the name is reset
// and the namespace lives only in Xmlns. Other root attributes read from the
// file (xmlns:xsi, xsi:schemaLocation, ...) are written back under the
// prefixes they were declared with.
func FixAttributes(doc *CustomLabels) *CustomLabels {
	doc.XMLName = xml.Name{Local: RootElement}
	if doc.Xmlns == "" {
		doc.Xmlns = Namespace
	}

	// The decoder replaces a bound prefix with its namespace URL.
	prefixes := make(map[string]string)
	for _, a := range doc.Attrs {
		if a.Name.Space == xmlnsPrefix {
			prefixes[a.Value] = a.Name.Local
		}
	}

	attrs := doc.Attrs[:0]
	for _, a := range doc.Attrs {
		switch {
		case a.Name.Space == "" && a.Name.Local == xmlnsPrefix:
			continue
		case a.Name.Space == "":
		case a.Name.Space == xmlnsPrefix:
			a.Name = xml.Name{Local: xmlnsPrefix + ":" + a.Name.Local}
		case a.Name.Space == xmlNamespace:
			a.Name = xml.Name{Local: "xml:" + a.Name.Local}
		default:
			prefix, ok := prefixes[a.Name.Space]
			if !ok {
				// Unbound prefixes are left as written.
				prefix = a.Name.Space
			}
			a.Name = xml.Name{Local: prefix + ":" + a.Name.Local}
		}
		attrs = append(attrs, a)
	}
	doc.Attrs = attrs
	return doc
}
