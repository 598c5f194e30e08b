// Copyright ©2026 The las3 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package las3

import "log"

// Logger is the diagnostic sink Init writes its error, timing and
// numerical-warning lines to; Sample writes nothing to it. *log.Logger satisfies it directly; a
// caller wanting structured logging need only adapt its own logger to
// this one-method shape.
type Logger interface {
	Printf(format string, v ...interface{})
}

// nopLogger discards everything; it is the default when a Config
// leaves Log nil, so the hot paths never need a nil check.
type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

var _ Logger = nopLogger{}
var _ Logger = (*log.Logger)(nil)
