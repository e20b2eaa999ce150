// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

// Builder is the scope a pass's setup callback uses to declare resource
// reads and writes. A Builder is only valid for the duration of the
// addPass call that created it.
type Builder struct {
	fg   *FrameGraph
	pass *PassNode
}

// CreateTexture allocates a fresh logical resource and returns a handle to
// its version-0 view. name is used only for diagnostics (logs, graphviz
// labels).
func (b *Builder) CreateTexture(name string, desc Descriptor) Handle {
	return b.fg.createTexture(name, desc)
}

// Read declares that the builder's pass reads h with the given attachment
// flags. If h is invalid, this records nothing and returns the sentinel
// invalid handle; otherwise it returns h unchanged.
func (b *Builder) Read(h Handle, flags RWFlags) Handle {
	return b.fg.read(b.pass, h, flags)
}

// Write declares that the builder's pass writes h with the given
// attachment flags. If h is invalid, this records nothing and returns the
// sentinel invalid handle; otherwise it bumps h's version and returns the
// new handle. Any handle to the pre-write version becomes stale and fails
// validation from this point on.
func (b *Builder) Write(h Handle, flags RWFlags) Handle {
	return b.fg.write(b.pass, h, flags)
}
