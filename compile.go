// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

// Compile assembles the resource registry, applies aliases, counts
// references, culls dead passes, and attaches lifetime windows to the
// passes that devirtualize and destroy each surviving resource.
//
// Compile never returns an error. Ill-formed-but-survivable graphs (a
// resource that ends up with no writer) are logged and skipped; a broken
// graph (writer-count or first/last-set invariant violated, or an
// out-of-range alias index) panics with an *InvariantError, per the
// "execute runs to completion or panics" contract — all such checks
// happen here so Execute itself never needs to fail.
func (fg *FrameGraph) Compile() {
	fg.materializeResources()
	fg.applyAliases()
	fg.countReferences()
	fg.cull()
	fg.attachLifetimes()
	fg.compiled = true
}

// materializeResources is Compile phase 1: for every ResourceNode, allocate
// a fresh Resource in a stable registry (ordering matches node indices)
// and point the node at it.
func (fg *FrameGraph) materializeResources() {
	fg.registry = make([]*Resource, len(fg.resourceNodes))
	for i, node := range fg.resourceNodes {
		r := &Resource{
			Name:       node.Name,
			Descriptor: node.Descriptor,
			ReadFlags:  node.ReadFlags,
			WriteFlags: node.WriteFlags,
			First:      NoPass,
			Last:       NoPass,
		}
		fg.registry[i] = r
		node.resource = r
	}
}

// applyAliases is Compile phase 2. Multiple aliases are applied in
// registration order; later ones win.
func (fg *FrameGraph) applyAliases() {
	for _, a := range fg.aliases {
		fromIdx, toIdx := int(a.From.Index), int(a.To.Index)
		if fromIdx < 0 || fromIdx >= len(fg.resourceNodes) || toIdx < 0 || toIdx >= len(fg.resourceNodes) {
			panic(&InvariantError{Op: "applyAliases", Detail: "alias references an out-of-range handle index"})
		}
		fg.resourceNodes[toIdx].resource = fg.resourceNodes[fromIdx].resource
	}
}

// countReferences is Compile phase 3: seed each pass's refCount from its
// write count, then walk passes in order accumulating reader/writer counts
// and the first/last touching pass on each backing Resource.
func (fg *FrameGraph) countReferences() {
	for _, p := range fg.passes {
		p.RefCount = len(p.Writes)
	}
	for _, p := range fg.passes {
		for _, h := range p.Reads {
			r := fg.resolve(h)
			r.ReaderCount++
			if r.First == NoPass {
				r.First = p.ID
			}
			r.Last = p.ID
		}
		for _, h := range p.Writes {
			r := fg.resolve(h)
			r.Writer = p
			r.WriterCount++
			if r.First == NoPass {
				r.First = p.ID
			}
			r.Last = p.ID
		}
	}
}

// cull is Compile phase 4. It seeds a stack with every Resource nobody
// reads, then repeatedly pops a resource, decrementing its writer's
// refCount; when a writer's refCount reaches zero the pass is culled and
// its own reads are, in turn, decremented.
func (fg *FrameGraph) cull() {
	stack := make([]*Resource, 0, len(fg.registry))
	for _, r := range fg.registry {
		if r.ReaderCount == 0 {
			stack = append(stack, r)
		}
	}

	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if r.WriterCount > 1 {
			panic(&InvariantError{Op: "cull", Detail: "resource " + r.Name + " has more than one writer"})
		}
		if r.Writer == nil {
			Logger().Debug("resource has no writer, skipping", "name", r.Name)
			continue
		}

		w := r.Writer
		w.RefCount--
		if w.RefCount == 0 {
			w.Culled = true
			for _, h := range w.Reads {
				rr := fg.resolve(h)
				rr.ReaderCount--
				if rr.ReaderCount == 0 {
					stack = append(stack, rr)
				}
			}
		}
	}
}

// attachLifetimes is Compile phase 5. For every Resource that survives
// culling with a writer, append its registry index to its first user's
// devirtualize list and its last user's destroy list. A resource that is
// read but never written is logged and left out of realization entirely.
func (fg *FrameGraph) attachLifetimes() {
	for i, r := range fg.registry {
		if r.WriterCount > 1 {
			panic(&InvariantError{Op: "attachLifetimes", Detail: "resource " + r.Name + " has more than one writer"})
		}
		if r.ReaderCount == 0 {
			continue
		}
		if r.WriterCount == 0 {
			Logger().Warn("resource has readers but no writer, skipping realization", "name", r.Name)
			continue
		}
		if (r.First == NoPass) != (r.Last == NoPass) {
			panic(&InvariantError{Op: "attachLifetimes", Detail: "resource " + r.Name + " has first set without last, or vice versa"})
		}
		if r.First == NoPass {
			continue
		}
		fg.passes[r.First].Devirtualize = append(fg.passes[r.First].Devirtualize, i)
		fg.passes[r.Last].Destroy = append(fg.passes[r.Last].Destroy, i)
	}
}
