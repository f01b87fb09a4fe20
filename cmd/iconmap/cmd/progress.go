//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package cmd

import (
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// progressBar renders download progress on a terminal. The bar is created on
// the first update, when the size of the download is known; a size of -1
// shows a spinner instead of a bar.
type progressBar struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

// newProgressBar returns a bar drawing on w, or a silent one if w is not a terminal.
func newProgressBar(w io.Writer) *progressBar {
	if f, ok := w.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		w = io.Discard
	}
	return &progressBar{w: w}
}

// Update is an iconmap.ProgressFunc.
func (p *progressBar) Update(completed, total int64) {
	if p.bar == nil {
		p.bar = progressbar.NewOptions64(total,
			progressbar.OptionSetWriter(p.w),
			progressbar.OptionSetDescription("Downloading"),
			progressbar.OptionShowBytes(true),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetWidth(30),
			progressbar.OptionThrottle(50*time.Millisecond),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetRenderBlankState(true),
		)
	}
	_ = p.bar.Set64(completed)
}

// Finish completes the bar, if one was started.
func (p *progressBar) Finish() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
	_, _ = io.WriteString(p.w, "\n")
}
