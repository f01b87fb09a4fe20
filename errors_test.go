//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package iconmap

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSyntaxErrorPosition(t *testing.T) {
	data, err := os.ReadFile("testdata/malformed.json")
	require.NoError(t, err)

	err = checkJSON(data)
	require.Error(t, err)
	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	require.Equal(t, 3, syntaxErr.Line)
	require.Equal(t, 31, syntaxErr.Column)
	require.Contains(t, syntaxErr.Excerpt, `"f004",}`)
	require.Contains(t, syntaxErr.Error(), "line 3, column 31")
}

func TestSyntaxErrorFirstLine(t *testing.T) {
	err := checkJSON([]byte(`{"a":}`))
	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	require.Equal(t, 1, syntaxErr.Line)
	require.Equal(t, 6, syntaxErr.Column)
	require.Equal(t, `{"a":}`, syntaxErr.Excerpt)
}

func TestSyntaxErrorEmptyInput(t *testing.T) {
	err := checkJSON(nil)
	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	require.Equal(t, 1, syntaxErr.Line)
	require.Equal(t, 1, syntaxErr.Column)
	require.Empty(t, syntaxErr.Excerpt)
}

func TestIsKind(t *testing.T) {
	err := &Error{Kind: KindTransport, Op: "download", Path: "http://x", Err: errors.New("boom")}
	wrapped := errors.Join(errors.New("other"), err)
	require.True(t, IsKind(wrapped, KindTransport))
	require.False(t, IsKind(wrapped, KindGenerate))
	require.False(t, IsKind(errors.New("plain"), KindTransport))
	require.Equal(t, "download http://x: transport error: boom", err.Error())
}
