//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package iconmap

import (
	"context"
	"os"
	"time"
)

// watchdog cancels its context when it is not kicked for longer than timeout.
type watchdog struct {
	cancel  context.CancelCauseFunc
	timer   *time.Timer
	timeout time.Duration
}

func newWatchdog(parent context.Context, timeout time.Duration) (context.Context, *watchdog) {
	ctx, cancel := context.WithCancelCause(parent)
	wd := &watchdog{cancel: cancel, timeout: timeout}
	if timeout > 0 {
		wd.timer = time.AfterFunc(timeout, func() {
			cancel(os.ErrDeadlineExceeded)
		})
	}
	return ctx, wd
}

// Kick postpones the inactivity deadline.
func (wd *watchdog) Kick() {
	if wd.timer != nil {
		wd.timer.Reset(wd.timeout)
	}
}

// Stop releases the timer and the context.
func (wd *watchdog) Stop() {
	if wd.timer != nil {
		wd.timer.Stop()
	}
	wd.cancel(nil)
}
