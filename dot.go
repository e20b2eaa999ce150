// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import (
	"fmt"
	"io"
	"strings"
)

// ExportGraphviz writes the current graph in DOT form to w, for
// debugging with `dot -Tpng`. It is pure read: it never mutates the
// graph, and may be called before or after Compile (a pass's Culled flag
// reflects whatever compilation state the graph is currently in; before
// Compile no pass is culled).
//
// One node is emitted per pass, orange, dimmed if culled. One node is
// emitted per (resource, version) pair up to the current version,
// skyblue, dimmed if no emitted pass reads or writes it. Red
// edges run pass -> resource for each write; green edges run
// resource -> pass for each read; yellow dashed edges run from -> to
// for each alias. If skipCulled is true, culled pass nodes and their
// edges are omitted.
func (fg *FrameGraph) ExportGraphviz(w io.Writer, skipCulled bool) error {
	var b strings.Builder
	b.WriteString("digraph framegraph {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  bgcolor=black;\n")
	b.WriteString("  node [shape=rectangle, style=filled, fontname=\"helvetica\"];\n")

	referenced := make(map[string]bool, len(fg.resourceNodes))

	for _, p := range fg.passes {
		if skipCulled && p.Culled {
			continue
		}
		color := "orange"
		if p.Culled {
			color = "orange4"
		}
		fmt.Fprintf(&b, "  %s [label=%q, shape=box, fillcolor=%s];\n", passNodeID(p.ID), p.Name, color)

		for _, h := range p.Writes {
			id := resourceNodeID(h)
			referenced[id] = true
			fmt.Fprintf(&b, "  %s -> %s [color=red];\n", passNodeID(p.ID), id)
		}
		for _, h := range p.Reads {
			id := resourceNodeID(h)
			referenced[id] = true
			fmt.Fprintf(&b, "  %s -> %s [color=green];\n", id, passNodeID(p.ID))
		}
	}

	for _, node := range fg.resourceNodes {
		for v := uint16(0); v <= node.Version; v++ {
			id := resourceNodeID(Handle{Index: uint16(node.Index), Version: v})
			color := "skyblue"
			if !referenced[id] {
				color = "skyblue4"
			}
			fmt.Fprintf(&b, "  %s [label=%q, shape=ellipse, fillcolor=%s];\n", id, fmt.Sprintf("%s v%d", node.Name, v), color)
		}
	}

	for _, a := range fg.aliases {
		fmt.Fprintf(&b, "  %s -> %s [color=yellow, style=dashed];\n", resourceNodeID(a.From), resourceNodeID(a.To))
	}

	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func passNodeID(id PassID) string {
	return fmt.Sprintf("P%d", id)
}

func resourceNodeID(h Handle) string {
	return fmt.Sprintf("R%d_%d", h.Index, h.Version)
}
