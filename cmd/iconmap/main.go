//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// iconmap downloads the Font Awesome icon metadata and generates a Swift
// dictionary mapping icon names to their unicode code points.
package main

import (
	"os"

	"go.bug.st/iconmap/cmd/iconmap/cmd"
)

func main() {
	os.Exit(cmd.ExecuteArgs(os.Stdout, os.Stderr, os.Args[1:]))
}
