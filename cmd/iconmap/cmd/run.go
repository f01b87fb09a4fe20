//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"go.bug.st/iconmap"
)

// runPipeline resolves, downloads and generates, stopping at the first error.
func runPipeline(ctx context.Context, cfg iconmap.Config, out io.Writer) error {
	fmt.Fprintln(out, "\n=== Phase 1: Converting to Raw URL ===")
	rawURL, err := iconmap.ResolveRawURL(cfg.SourceURL)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Generated raw URL: %s\n", rawURL)

	fmt.Fprintln(out, "\n=== Phase 2: Downloading JSON File ===")
	fmt.Fprintf(out, "Downloading JSON from: %s\n", rawURL)
	fc := cfg.FetchConfig()
	bar := newProgressBar(out)
	fc.Progress = bar.Update
	res, err := iconmap.Fetch(ctx, rawURL, cfg.JSONOutputPath, fc)
	bar.Finish()
	if err != nil {
		return err
	}
	printFetchSummary(out, res)

	fmt.Fprintln(out, "\n=== Phase 3: Generating Swift Dictionary ===")
	if err := generate(out, cfg, cfg.SourceURL); err != nil {
		return err
	}

	fmt.Fprintln(out, "\n✅ All phases completed successfully!")
	return nil
}

func printFetchSummary(out io.Writer, res *iconmap.FetchResult) {
	size := res.Size
	if size < 0 {
		size = res.Written
	}
	fmt.Fprintln(out, "\nDownload completed:")
	fmt.Fprintf(out, "Total size: %s\n", humanize.IBytes(uint64(size)))
	fmt.Fprintf(out, "Average speed: %s/s\n", humanize.IBytes(uint64(res.Rate())))
	fmt.Fprintf(out, "Time taken: %.2f seconds\n", res.Duration.Seconds())
	fmt.Fprintf(out, "Successfully saved to: %s\n", res.File)
}

func generate(out io.Writer, cfg iconmap.Config, source string) error {
	fmt.Fprintf(out, "Reading JSON file: %s\n", cfg.JSONOutputPath)
	fmt.Fprintf(out, "Generating Swift dictionary file: %s\n", cfg.GeneratedOutputPath)
	res, err := iconmap.Generate(cfg.JSONOutputPath, cfg.GeneratedOutputPath, cfg.GenerateOptions(source))
	if err != nil {
		return err
	}
	logger.Debugf("icons extracted using the %s schema", res.Schema)
	fmt.Fprintf(out, "Successfully generated Swift dictionary with %d icons\n", res.Count)
	return nil
}
