//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package iconmap

import (
	"net/http"
	"time"
)

// DefaultChunkSize is the size of the chunks written to disk while downloading.
const DefaultChunkSize = 1024

// ProgressFunc receives the number of bytes downloaded so far and the total
// size of the download, or -1 if the server doesn't provide it.
type ProgressFunc func(completed, total int64)

// FetchConfig contains the configuration for the download
type FetchConfig struct {
	// HttpClient to use to perform HTTP requests
	HttpClient http.Client
	// ExtraHeaders to add to the HTTP request.
	ExtraHeaders map[string]string
	// AcceptFunc is an optional function that will be called with the
	// response, before any byte is written to the output file.
	// If the function returns an error, the download is aborted.
	AcceptFunc func(resp *http.Response) error
	// InactivityTimeout is the duration after which, if no data is received,
	// the download is aborted. If set to 0, no timeout is applied.
	InactivityTimeout time.Duration
	// ChunkSize is the size of the buffer used to copy the response body.
	// If set to 0, DefaultChunkSize is used.
	ChunkSize int
	// Progress, if not nil, is called after every chunk written to disk.
	Progress ProgressFunc
}

// GetDefaultConfig returns the default download configuration.
func GetDefaultConfig() FetchConfig {
	return FetchConfig{
		ChunkSize: DefaultChunkSize,
	}
}

func (c FetchConfig) chunkSize() int {
	if c.ChunkSize <= 0 {
		return DefaultChunkSize
	}
	return c.ChunkSize
}
