//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package iconmap downloads an icon metadata JSON file and generates a
// source file containing a dictionary literal that maps icon names to their
// unicode code points.
//
// The work is split in three stages that are run one after the other:
// ResolveRawURL turns a repository web URL into a raw-content URL, Fetch
// streams the file to disk with progress reporting and checks that it is
// valid JSON, and Generate projects the icons into the output file.
package iconmap
