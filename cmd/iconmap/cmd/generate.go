//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package cmd

import (
	"io"

	"github.com/spf13/cobra"
)

func newGenerateCmd(f *flags, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate the Swift dictionary from an already downloaded JSON file",
		Long:  "Reads the JSON file at --json-output and writes the Swift dictionary to --output.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.config(cmd)
			if err != nil {
				return err
			}
			return generate(stdout, cfg, cfg.JSONOutputPath)
		},
	}
}
