// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import "github.com/gogpu/framegraph/driver"

// Execute runs every surviving pass, in registration order, against d:
// for each pass it devirtualizes (creates) the resources whose lifetime
// begins there, invokes the pass's execute callback, then destroys the
// resources whose lifetime ends there. Culled passes (RefCount reaching
// zero with no Present pinning them) are skipped entirely.
//
// Execute panics if Compile has not been called since the last Execute or
// since the graph was created; doing so is a caller bug, not a recoverable
// runtime condition.
//
// Execute always runs to completion or panics — it never returns an
// error. On return, the graph is reset and ready to be rebuilt for the
// next frame.
func (fg *FrameGraph) Execute(d driver.Driver) {
	if !fg.compiled {
		panic(ErrNotCompiled)
	}

	for _, p := range fg.passes {
		if p.Culled {
			continue
		}

		for _, idx := range p.Devirtualize {
			fg.registry[idx].create(d)
		}

		if p.executor != nil {
			p.executor.execute(&PassResources{fg: fg}, d)
		}

		for _, idx := range p.Destroy {
			fg.registry[idx].destroy(d)
		}
	}

	fg.reset()
}
