//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package iconmap

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// Icon is a single entry of the generated map.
type Icon struct {
	Name string
	// Codepoint holds the hexadecimal digits exactly as found in the source.
	Codepoint string
}

// Schema selects the layout of the icon metadata JSON.
type Schema string

const (
	// SchemaAuto picks SchemaList when the document has an "icons" array
	// and SchemaMapping for any other object.
	SchemaAuto Schema = "auto"
	// SchemaMapping is an object keyed by icon name whose values carry
	// a "unicode" field:
	//
	//	{"star": {"unicode": "f005"}, ...}
	SchemaMapping Schema = "mapping"
	// SchemaList is an object with an "icons" array of objects carrying
	// "id" and "unicode" fields:
	//
	//	{"icons": [{"id": "star", "unicode": "f005"}, ...]}
	SchemaList Schema = "list"
)

// Valid reports whether s is one of the known schemas.
func (s Schema) Valid() bool {
	switch s {
	case SchemaAuto, SchemaMapping, SchemaList:
		return true
	}
	return false
}

var errUnrecognizedSchema = errors.New("unrecognized icon schema")

// DetectSchema returns the schema of the given JSON document, or an error if
// the document is neither a mapping nor a list of icons.
func DetectSchema(data []byte) (Schema, error) {
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return "", fmt.Errorf("%w: top-level value is not an object", errUnrecognizedSchema)
	}
	if doc.Get("icons").IsArray() {
		return SchemaList, nil
	}
	if isMapping(doc) {
		return SchemaMapping, nil
	}
	return "", fmt.Errorf("%w: no \"icons\" array and no icon objects", errUnrecognizedSchema)
}

// isMapping reports whether doc is an object that is empty or has at least
// one object-valued entry.
func isMapping(doc gjson.Result) bool {
	if !doc.IsObject() {
		return false
	}
	empty, found := true, false
	doc.ForEach(func(_, value gjson.Result) bool {
		empty = false
		found = value.IsObject()
		return !found
	})
	return empty || found
}

// ExtractIcons returns the icons found in data, in document order. Entries
// without a name or without a hexadecimal codepoint are skipped. The returned Schema is
// the one actually used, which differs from schema only for SchemaAuto.
// data must be valid JSON.
func ExtractIcons(data []byte, schema Schema) ([]Icon, Schema, error) {
	if schema == "" {
		schema = SchemaAuto
	}
	if schema == SchemaAuto {
		detected, err := DetectSchema(data)
		if err != nil {
			return nil, "", err
		}
		schema = detected
	}

	doc := gjson.ParseBytes(data)
	switch schema {
	case SchemaMapping:
		if !isMapping(doc) {
			return nil, "", fmt.Errorf("%w: mapping schema needs a top-level object of icon objects", errUnrecognizedSchema)
		}
		return extractMapping(doc), schema, nil
	case SchemaList:
		list := doc.Get("icons")
		if !doc.IsObject() || !list.IsArray() {
			return nil, "", fmt.Errorf("%w: list schema needs an \"icons\" array", errUnrecognizedSchema)
		}
		return extractList(list), schema, nil
	}
	return nil, "", fmt.Errorf("unknown schema %q", schema)
}

func extractMapping(doc gjson.Result) []Icon {
	var icons []Icon
	doc.ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() {
			return true
		}
		if icon, ok := newIcon(key.String(), value.Get("unicode")); ok {
			icons = append(icons, icon)
		}
		return true
	})
	return icons
}

func extractList(list gjson.Result) []Icon {
	var icons []Icon
	list.ForEach(func(_, value gjson.Result) bool {
		if !value.IsObject() {
			return true
		}
		id := value.Get("id")
		if id.Type != gjson.String {
			return true
		}
		if icon, ok := newIcon(id.String(), value.Get("unicode")); ok {
			icons = append(icons, icon)
		}
		return true
	})
	return icons
}

func newIcon(name string, codepoint gjson.Result) (Icon, bool) {
	if name == "" {
		return Icon{}, false
	}
	// codepoints are usually strings, but accept bare numbers like 1234
	if codepoint.Type != gjson.String && codepoint.Type != gjson.Number {
		return Icon{}, false
	}
	cp := codepoint.String()
	if codepoint.Type == gjson.Number {
		cp = codepoint.Raw
	}
	if !isHex(cp) {
		return Icon{}, false
	}
	return Icon{Name: name, Codepoint: cp}, true
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
