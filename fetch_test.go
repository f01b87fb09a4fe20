//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package iconmap

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	srv := serveFile(t, "testdata/icons-mapping.json")
	tmpFile := makeTmpFile(t)

	res, err := Fetch(context.Background(), srv.URL, tmpFile, GetDefaultConfig())
	require.NoError(t, err)
	require.Equal(t, srv.URL, res.URL)
	require.Equal(t, tmpFile, res.File)
	require.Equal(t, res.Size, res.Written)
	require.GreaterOrEqual(t, res.Rate(), 0.0)

	file1, err := os.ReadFile("testdata/icons-mapping.json")
	require.NoError(t, err)
	file2, err := os.ReadFile(tmpFile)
	require.NoError(t, err)
	require.Equal(t, file1, file2)
}

func TestFetchMalformedJSON(t *testing.T) {
	srv := serveFile(t, "testdata/malformed.json")
	tmpFile := makeTmpFile(t)

	res, err := Fetch(context.Background(), srv.URL, tmpFile, GetDefaultConfig())
	require.Error(t, err)
	require.Nil(t, res)
	require.True(t, IsKind(err, KindMalformedJSON))
	require.False(t, IsKind(err, KindTransport))
	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	require.Equal(t, 3, syntaxErr.Line)
	require.Equal(t, 31, syntaxErr.Column)
}

func TestFetchResultRate(t *testing.T) {
	require.Zero(t, (&FetchResult{Written: 100}).Rate())
	require.Equal(t, 50.0, (&FetchResult{Written: 100, Duration: 2e9}).Rate())
}
