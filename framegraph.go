// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import "github.com/gogpu/framegraph/driver"

// FrameGraph assembles a single frame's declared passes and resources into
// a DAG, culls dead work, and drives execution against a driver.Driver. A
// FrameGraph is reusable across frames: Execute resets all per-frame state
// before returning.
//
// A FrameGraph is not safe for concurrent use; at most one goroutine may
// touch a given instance at a time. Multiple FrameGraph instances may be
// used concurrently on different goroutines.
type FrameGraph struct {
	passes        []*PassNode
	resourceNodes []*ResourceNode
	registry      []*Resource
	aliases       []Alias
	compiled      bool
}

// New creates an empty FrameGraph.
func New() *FrameGraph {
	return &FrameGraph{}
}

// CreateTexture allocates a fresh logical resource (version 0) and returns
// a handle to it. name is used only for diagnostics.
func (fg *FrameGraph) CreateTexture(name string, desc Descriptor) Handle {
	return fg.createTexture(name, desc)
}

func (fg *FrameGraph) createTexture(name string, desc Descriptor) Handle {
	index := len(fg.resourceNodes)
	fg.resourceNodes = append(fg.resourceNodes, &ResourceNode{
		Name:       name,
		Index:      index,
		Version:    0,
		Descriptor: desc,
	})
	return Handle{Index: uint16(index), Version: 0}
}

func (fg *FrameGraph) read(pass *PassNode, h Handle, flags RWFlags) Handle {
	if !fg.IsValid(h) {
		Logger().Warn("read of invalid handle", "pass", pass.Name, "index", h.Index, "version", h.Version)
		return invalidHandle
	}
	node := fg.resourceNodes[h.Index]
	node.ReadFlags |= flags
	pass.Reads = append(pass.Reads, h)
	return h
}

func (fg *FrameGraph) write(pass *PassNode, h Handle, flags RWFlags) Handle {
	if !fg.IsValid(h) {
		Logger().Warn("write of invalid handle", "pass", pass.Name, "index", h.Index, "version", h.Version)
		return invalidHandle
	}
	node := fg.resourceNodes[h.Index]
	node.WriteFlags |= flags
	node.Version++
	newHandle := Handle{Index: h.Index, Version: node.Version}
	pass.Writes = append(pass.Writes, newHandle)
	return newHandle
}

// AddPass registers a pass. setup runs immediately, scoped to a Builder
// that records the pass's reads and writes; execute runs later, during
// Execute, for passes that survive culling. Either callback may be nil.
//
// AddPass is a function rather than a FrameGraph method because Go does
// not allow a method to introduce its own type parameter; this is the
// idiomatic stand-in for the source's templated addPass<DataT>.
func AddPass[T any](fg *FrameGraph, name string, setup func(*Builder, *T), execute func(*PassResources, *T, driver.Driver)) *PassNode {
	pass := &PassNode{
		Name: name,
		ID:   PassID(len(fg.passes)),
	}
	fg.passes = append(fg.passes, pass)

	var data T
	if setup != nil {
		setup(&Builder{fg: fg, pass: pass}, &data)
	}
	pass.executor = &passExecutor[T]{data: data, fn: execute}
	return pass
}

type presentData struct{}

// Present pins a terminal resource so Compile does not cull its producer.
// It registers a convenience pass with a single read of h and an empty
// executor. The read defaults to Color, matching the unqualified read this
// is modeled on.
func (fg *FrameGraph) Present(h Handle) *PassNode {
	return AddPass(fg, "Present", func(b *Builder, d *presentData) {
		b.Read(h, Color)
	}, nil)
}

// IsValid reports whether h refers to the current version of a resource
// node created in this FrameGraph. A handle is valid iff its index is in
// range and its version equals the current version of that node.
func (fg *FrameGraph) IsValid(h Handle) bool {
	if h.IsInvalid() {
		return false
	}
	idx := int(h.Index)
	if idx < 0 || idx >= len(fg.resourceNodes) {
		return false
	}
	return fg.resourceNodes[idx].Version == h.Version
}

// GetTextureDesc returns the descriptor of the resource h refers to, or
// nil if h is not valid.
func (fg *FrameGraph) GetTextureDesc(h Handle) *Descriptor {
	if !fg.IsValid(h) {
		return nil
	}
	desc := fg.resourceNodes[h.Index].Descriptor
	return &desc
}

// resolve returns the backing Resource for h, panicking with an
// InvariantError if h's index is out of range. Compile's internal phases
// use this once handles are known to have come from validated read/write
// calls; an out-of-range index at this point means the graph's own
// bookkeeping is broken, not a client mistake.
func (fg *FrameGraph) resolve(h Handle) *Resource {
	idx := int(h.Index)
	if idx < 0 || idx >= len(fg.resourceNodes) {
		panic(&InvariantError{Op: "resolve", Detail: "handle index out of range"})
	}
	return fg.resourceNodes[idx].resource
}

// reset clears all per-frame state. Called at the end of Execute.
func (fg *FrameGraph) reset() {
	fg.passes = fg.passes[:0]
	fg.resourceNodes = fg.resourceNodes[:0]
	fg.registry = fg.registry[:0]
	fg.aliases = fg.aliases[:0]
	fg.compiled = false
}
