// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import "errors"

// ErrNotCompiled is the value Execute panics with when Compile has not yet
// been called for the current frame.
var ErrNotCompiled = errors.New("framegraph: Execute called before Compile")

// InvariantError reports a broken internal invariant: a bug in the graph's
// own bookkeeping rather than a caller mistake. Recoverable misuse (an
// invalid handle passed to Read or Write) is logged as a warning and
// degrades gracefully instead; InvariantError is reserved for conditions
// that make the rest of Compile or Execute meaningless to run, such as a
// resource ending up with more than one writer or an alias naming an
// out-of-range handle index.
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return "framegraph: invariant violated in " + e.Op + ": " + e.Detail
}
