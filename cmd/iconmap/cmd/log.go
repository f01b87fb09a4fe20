//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package cmd

import (
	"fmt"
	"io"

	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("iconmap.cmd")

// setupLogging sends log entries to w as "LEVEL message" lines.
func setupLogging(w io.Writer, verbose bool) error {
	_, err := loggo.ReplaceDefaultWriter(loggo.NewSimpleWriter(w, func(entry loggo.Entry) string {
		return fmt.Sprintf("%s %s", entry.Level, entry.Message)
	}))
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	levels := "<root>=INFO"
	if verbose {
		levels = "<root>=DEBUG"
	}
	return loggo.ConfigureLoggers(levels)
}
