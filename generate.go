//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package iconmap

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"
)

// DefaultMapName is the name of the generated dictionary.
const DefaultMapName = "fontAwesomeIconMap"

// RenderOptions controls the content of the generated file.
type RenderOptions struct {
	// FileName is shown in the header comment.
	FileName string
	// Source is shown in the "Generated from" line.
	Source string
	// Author, if set, adds a "Created by" line to the header.
	Author string
	// Date is the creation date shown in the header. Set it to get
	// reproducible output: the zero value means the current time.
	Date time.Time
	// MapName is the name of the declared dictionary.
	MapName string
}

var swiftTemplate = template.Must(template.New("swift").Funcs(template.FuncMap{
	"quote": swiftQuote,
}).Parse(`//
//  {{ .FileName }}
//
{{- if .Author }}
//  Created by {{ .Author }} on {{ .Date }}
//
{{- end }}

// Generated from {{ .Source }}
let {{ .MapName }}: [String: String] = [
{{- range .Icons }}
    {{ quote .Name }}: "\u{ {{- .Codepoint -}} }",
{{- end }}
]
`))

// Render writes the Swift dictionary declaration for icons to w.
func Render(w io.Writer, icons []Icon, opts RenderOptions) error {
	date := opts.Date
	if date.IsZero() {
		date = time.Now()
	}
	mapName := opts.MapName
	if mapName == "" {
		mapName = DefaultMapName
	}
	return swiftTemplate.Execute(w, map[string]any{
		"FileName": opts.FileName,
		"Source":   opts.Source,
		"Author":   opts.Author,
		"Date":     date.Format("01/02/06"),
		"MapName":  mapName,
		"Icons":    icons,
	})
}

var swiftEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func swiftQuote(s string) string {
	return `"` + swiftEscaper.Replace(s) + `"`
}

// GenerateOptions configures Generate.
type GenerateOptions struct {
	Schema Schema
	RenderOptions
}

// GenerateResult summarizes a completed generation.
type GenerateResult struct {
	Output string
	Schema Schema
	Count  int
}

// Generate reads the icon metadata from the JSON file input and writes the
// generated dictionary to output, replacing any previous content.
func Generate(input string, output string, opts GenerateOptions) (*GenerateResult, error) {
	fail := func(kind Kind, op string, path string, err error) (*GenerateResult, error) {
		logger.Errorf("error generating %s: %s: %s", output, kind, err)
		return nil, &Error{Kind: kind, Op: op, Path: path, Err: err}
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fail(KindGenerate, "read", input, err)
	}
	if err := checkJSON(data); err != nil {
		return fail(KindMalformedJSON, "parse", input, err)
	}
	logger.Debugf("loaded %s (%d bytes)", input, len(data))

	icons, schema, err := ExtractIcons(data, opts.Schema)
	if err != nil {
		return fail(KindGenerate, "extract", input, err)
	}
	logger.Debugf("found %d icons using the %s schema", len(icons), schema)
	if len(icons) > 0 {
		logger.Debugf("first icon: %+v", icons[0])
	} else {
		logger.Warningf("no icons found in %s using the %s schema", input, schema)
	}

	ro := opts.RenderOptions
	if ro.FileName == "" {
		ro.FileName = filepath.Base(output)
	}
	if ro.Source == "" {
		ro.Source = filepath.Base(input)
	}
	var buf bytes.Buffer
	if err := Render(&buf, icons, ro); err != nil {
		return fail(KindGenerate, "render", output, err)
	}
	if err := writeFile(output, buf.Bytes()); err != nil {
		return fail(KindGenerate, "write", output, err)
	}
	return &GenerateResult{Output: output, Schema: schema, Count: len(icons)}, nil
}

func writeFile(file string, data []byte) (err error) {
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("creating %s: %w", file, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", file, cerr)
		}
	}()
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", file, err)
	}
	return nil
}
