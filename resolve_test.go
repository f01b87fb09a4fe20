//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package iconmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveRawURL(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{
			"https://github.com/OWNER/REPO/blob/REF/PATH",
			"https://raw.githubusercontent.com/OWNER/REPO/REF/PATH",
		},
		{
			"https://github.com/FortAwesome/Font-Awesome/blob/6.x/metadata/icons.json",
			"https://raw.githubusercontent.com/FortAwesome/Font-Awesome/6.x/metadata/icons.json",
		},
		{
			"https://www.github.com/o/r/blob/main/a/b/c.json#L10",
			"https://raw.githubusercontent.com/o/r/main/a/b/c.json",
		},
		// a repository named "blob" is not the viewer segment
		{
			"https://github.com/o/blob/blob/main/blob.json",
			"https://raw.githubusercontent.com/o/blob/main/blob.json",
		},
		// passthrough
		{
			"https://raw.githubusercontent.com/o/r/main/icons.json",
			"https://raw.githubusercontent.com/o/r/main/icons.json",
		},
		{
			"https://example.com/o/r/blob/main/icons.json",
			"https://example.com/o/r/blob/main/icons.json",
		},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			out, err := ResolveRawURL(test.in)
			require.NoError(t, err)
			require.Equal(t, test.out, out)
		})
	}
}

func TestResolveRawURLErrors(t *testing.T) {
	_, err := ResolveRawURL("")
	require.Error(t, err)
	require.True(t, IsKind(err, KindResolve))

	_, err = ResolveRawURL("https://github.com/%zz")
	require.Error(t, err)
	require.True(t, IsKind(err, KindResolve))
}
