//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.bug.st/iconmap"
)

func newResolveCmd(f *flags, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [URL]",
		Short: "Print the raw-content URL of a GitHub file URL",
		Long:  "Prints the raw-content URL of the given GitHub file URL, or of the configured source URL.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.config(cmd)
			if err != nil {
				return err
			}
			webURL := cfg.SourceURL
			if len(args) == 1 {
				webURL = args[0]
			}
			rawURL, err := iconmap.ResolveRawURL(webURL)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, rawURL)
			return nil
		},
	}
}
