//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package iconmap

import (
	"bytes"
	"errors"
	"fmt"
)

// Kind classifies the errors returned by the pipeline stages.
type Kind int

const (
	// KindResolve is returned when the source URL cannot be resolved.
	KindResolve Kind = iota + 1
	// KindTransport covers network and HTTP faults during the download.
	KindTransport
	// KindMalformedJSON is returned when a file does not parse as JSON.
	KindMalformedJSON
	// KindGenerate covers any other fault while generating the output.
	KindGenerate
)

func (k Kind) String() string {
	switch k {
	case KindResolve:
		return "resolve error"
	case KindTransport:
		return "transport error"
	case KindMalformedJSON:
		return "malformed JSON"
	case KindGenerate:
		return "generate error"
	}
	return fmt.Sprintf("unknown error kind %d", int(k))
}

// Error is the error returned by the pipeline stages.
type Error struct {
	Kind Kind
	// Op is the operation that failed, for example "download" or "validate".
	Op string
	// Path is the URL or file the operation was working on, if any.
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s: %s: %s", e.Op, e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err, or any error it wraps, is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// SyntaxError describes where a JSON document stopped being valid.
type SyntaxError struct {
	Offset  int64
	Line    int
	Column  int
	Excerpt string
	Err     error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s (line %d, column %d, near %q)", e.Err, e.Line, e.Column, e.Excerpt)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// excerptRadius is the number of bytes shown on each side of a syntax error.
const excerptRadius = 40

// newSyntaxError computes the 1-based line and column of the offending byte
// in data, together with the raw text around it. offset is the number of
// bytes consumed by the decoder when it failed, as reported by encoding/json.
func newSyntaxError(data []byte, offset int64, err error) *SyntaxError {
	pos := int(min(max(offset-1, 0), int64(len(data))))
	before := data[:pos]
	line := bytes.Count(before, []byte{'\n'}) + 1
	column := pos - bytes.LastIndexByte(before, '\n')

	from := max(0, pos-excerptRadius)
	to := min(len(data), pos+excerptRadius)
	return &SyntaxError{
		Offset:  offset,
		Line:    line,
		Column:  column,
		Excerpt: string(data[from:to]),
		Err:     err,
	}
}
