// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

// Alias records a request to reroute a destination logical resource
// through a source's backing record. Aliases are recorded during
// registration and applied once, in registration order, during Compile.
//
// moveResource performs no validation of From or To — in particular it
// does not check that From is left unwritten after the move, that To is
// freshly created, or that the two have compatible descriptors. This
// mirrors the upstream behavior this frame graph is modeled on, which
// leaves those questions to future work; see DESIGN.md.
type Alias struct {
	From Handle
	To   Handle
}

// MoveResource records an alias rerouting to's backing resource through
// from's. It must be called before Compile; an alias recorded after Compile
// has run is not applied to that frame, and Execute's reset discards it.
func (fg *FrameGraph) MoveResource(from, to Handle) {
	fg.aliases = append(fg.aliases, Alias{From: from, To: to})
}
