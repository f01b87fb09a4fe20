//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package iconmap

import (
	"context"
	"fmt"
	"os"
	"time"
)

// FetchResult summarizes a completed download.
type FetchResult struct {
	URL  string
	File string
	// Size is the size declared by the server, or -1 if unknown.
	Size int64
	// Written is the number of bytes stored in File.
	Written  int64
	Duration time.Duration
}

// Rate returns the average transfer rate in bytes per second.
func (r *FetchResult) Rate() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Written) / r.Duration.Seconds()
}

// Fetch downloads reqURL into file and then checks that the file content is
// a well-formed JSON document. The parsed document is not kept: it is up to
// the caller to read the file again.
func Fetch(ctx context.Context, reqURL string, file string, config FetchConfig) (*FetchResult, error) {
	start := time.Now()
	d, err := Download(ctx, file, reqURL, config)
	if err != nil {
		return nil, err
	}
	if err := d.Run(); err != nil {
		return nil, err
	}
	res := &FetchResult{
		URL:      reqURL,
		File:     file,
		Size:     d.Size(),
		Written:  d.Completed(),
		Duration: time.Since(start),
	}

	if err := validateJSONFile(file); err != nil {
		return nil, err
	}
	return res, nil
}

func validateJSONFile(file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		logger.Errorf("error reading downloaded file %s: %s", file, err)
		return &Error{Kind: KindTransport, Op: "validate", Path: file, Err: fmt.Errorf("reading downloaded file: %w", err)}
	}
	if err := checkJSON(data); err != nil {
		logger.Errorf("downloaded file %s is not valid JSON: %s", file, err)
		return &Error{Kind: KindMalformedJSON, Op: "validate", Path: file, Err: err}
	}
	return nil
}
