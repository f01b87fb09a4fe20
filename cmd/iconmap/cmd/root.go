//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.bug.st/iconmap"
)

// flags shared by all the commands.
type flags struct {
	configFile        string
	verbose           bool
	sourceURL         string
	jsonOutputPath    string
	outputPath        string
	schema            string
	mapName           string
	author            string
	inactivityTimeout time.Duration
}

// config loads the configuration file and environment, then applies the
// flags that were explicitly set on the command line.
func (f *flags) config(cmd *cobra.Command) (iconmap.Config, error) {
	cfg, err := iconmap.LoadConfig(f.configFile)
	if err != nil {
		return cfg, err
	}
	set := cmd.Flags().Changed
	if set("source-url") {
		cfg.SourceURL = f.sourceURL
	}
	if set("json-output") {
		cfg.JSONOutputPath = f.jsonOutputPath
	}
	if set("output") {
		cfg.GeneratedOutputPath = f.outputPath
	}
	if set("schema") {
		cfg.Schema = iconmap.Schema(f.schema)
	}
	if set("map-name") {
		cfg.MapName = f.mapName
	}
	if set("author") {
		cfg.Author = f.author
	}
	if set("inactivity-timeout") {
		cfg.InactivityTimeout = f.inactivityTimeout
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// NewRootCmd returns the iconmap command. Console output goes to stdout,
// logs go to stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	f := &flags{}
	rootCmd := &cobra.Command{
		Use:   "iconmap",
		Short: "Generate a Swift icon map from the Font Awesome metadata",
		Long: "Downloads the icon metadata JSON from a GitHub repository and generates\n" +
			"a Swift dictionary mapping icon names to their unicode code points.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(stderr, f.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.config(cmd)
			if err != nil {
				return err
			}
			return runPipeline(cmd.Context(), cfg, stdout)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.configFile, "config", "", "YAML configuration file")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&f.sourceURL, "source-url", iconmap.DefaultSourceURL, "GitHub URL of the icon metadata JSON")
	pf.StringVar(&f.jsonOutputPath, "json-output", iconmap.DefaultJSONOutputPath, "path of the downloaded JSON file")
	pf.StringVarP(&f.outputPath, "output", "o", iconmap.DefaultGeneratedOutputPath, "path of the generated Swift file")
	pf.StringVar(&f.schema, "schema", string(iconmap.SchemaAuto), "JSON layout: auto, mapping or list")
	pf.StringVar(&f.mapName, "map-name", iconmap.DefaultMapName, "name of the generated dictionary")
	pf.StringVar(&f.author, "author", "", "author credited in the generated file header")
	pf.DurationVar(&f.inactivityTimeout, "inactivity-timeout", 30*time.Second, "abort the download after this long without data (0 disables)")

	rootCmd.AddCommand(newResolveCmd(f, stdout))
	rootCmd.AddCommand(newGenerateCmd(f, stdout))
	return rootCmd
}

// ExecuteArgs runs the command with the given arguments and returns the
// process exit status: 0 on success, 1 after printing a failure banner.
func ExecuteArgs(stdout, stderr io.Writer, args []string) int {
	rootCmd := NewRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stdout, "\n❌ Script failed!")
		fmt.Fprintf(stdout, "Error: %s\n", err)
		return 1
	}
	return 0
}
