//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package iconmap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Downloader streams the body of an HTTP response into a local file.
type Downloader struct {
	URL       string
	File      string
	Resp      *http.Response
	ctx       context.Context
	wd        *watchdog
	out       *os.File
	config    FetchConfig
	completed int64
	size      int64
	closed    bool
	err       error
}

// Close the download. It is safe to call Close more than once.
func (d *Downloader) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.wd.Stop()
	err1 := d.out.Close()
	err2 := d.Resp.Body.Close()
	if err1 != nil {
		return fmt.Errorf("closing output file: %w", err1)
	}
	if err2 != nil {
		return fmt.Errorf("closing input stream: %w", err2)
	}
	return nil
}

// Size return the size of the download (or -1 if the server doesn't provide it)
func (d *Downloader) Size() int64 {
	return d.size
}

// Completed returns the bytes written so far
func (d *Downloader) Completed() int64 {
	return d.completed
}

// Error returns the error during download or nil if no errors happened
func (d *Downloader) Error() error {
	return d.err
}

// Run copies the response body to the output file, one chunk at a time,
// calling the configured progress function after each chunk. It returns
// when the body is exhausted or a fault occurs; in both cases the output
// file and the response body are closed.
func (d *Downloader) Run() error {
	defer func() {
		if err := d.Close(); err != nil && d.err == nil {
			d.err = d.fault("close", err)
		}
	}()

	d.report()
	buff := make([]byte, d.config.chunkSize())
	for {
		n, err := d.Resp.Body.Read(buff)
		if n > 0 {
			d.wd.Kick()
			if _, werr := d.out.Write(buff[:n]); werr != nil {
				d.err = d.fault("write", fmt.Errorf("writing %s: %w", d.File, werr))
				return d.err
			}
			d.completed += int64(n)
			d.report()
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			if cause := context.Cause(d.ctx); cause != nil {
				err = cause
			}
			d.err = d.fault("download", err)
			return d.err
		}
	}
	if d.size >= 0 && d.completed != d.size {
		d.err = d.fault("download", fmt.Errorf("%w: received %d of %d bytes", io.ErrUnexpectedEOF, d.completed, d.size))
	}
	return d.err
}

func (d *Downloader) report() {
	if d.config.Progress != nil {
		d.config.Progress(d.completed, d.size)
	}
}

func (d *Downloader) fault(op string, err error) error {
	logger.Errorf("error downloading %s: %s", d.URL, err)
	return &Error{Kind: KindTransport, Op: op, Path: d.URL, Err: err}
}

// Download performs the HTTP GET request for the specified url and returns a
// Downloader that will write the response body into the specified file.
// The file is created, or truncated if it already exists, only after the
// server answered with a 2xx status code and the optional AcceptFunc agreed.
// Call Run to transfer the data.
func Download(ctx context.Context, file string, reqURL string, config FetchConfig) (*Downloader, error) {
	transportError := func(op string, err error) error {
		logger.Errorf("error downloading %s: %s", reqURL, err)
		return &Error{Kind: KindTransport, Op: op, Path: reqURL, Err: err}
	}

	ctx, wd := newWatchdog(ctx, config.InactivityTimeout)
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		wd.Stop()
		return nil, transportError("request", fmt.Errorf("setting up HTTP request: %w", err))
	}
	for k, v := range config.ExtraHeaders {
		req.Header.Set(k, v)
	}
	resp, err := config.HttpClient.Do(req)
	if err != nil {
		if cause := context.Cause(ctx); cause != nil && !errors.Is(err, cause) {
			err = fmt.Errorf("%w: %w", cause, err)
		}
		wd.Stop()
		return nil, transportError("request", err)
	}
	abort := func(err error) (*Downloader, error) {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
		wd.Stop()
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return abort(transportError("request", fmt.Errorf("server returned %s", resp.Status)))
	}
	if config.AcceptFunc != nil {
		if err := config.AcceptFunc(resp); err != nil {
			return abort(transportError("accept", err))
		}
	}

	f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return abort(transportError("open", fmt.Errorf("opening %s for writing: %w", file, err)))
	}
	wd.Kick()

	return &Downloader{
		URL:    reqURL,
		File:   file,
		Resp:   resp,
		ctx:    ctx,
		wd:     wd,
		out:    f,
		config: config,
		size:   resp.ContentLength, // -1 if server doesn't send Content-Length
	}, nil
}
