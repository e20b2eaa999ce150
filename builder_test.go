// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import "testing"

func TestRWFlagsHas(t *testing.T) {
	flags := Color | Depth
	if !flags.Has(Color) || !flags.Has(Depth) {
		t.Error("Color|Depth should report having both Color and Depth")
	}
	if (Color).Has(Depth) {
		t.Error("Color alone should not report having Depth")
	}
}

func TestBuilderCreateTextureInsideSetup(t *testing.T) {
	fg := New()
	var created Handle
	AddPass(fg, "A", func(b *Builder, d *struct{}) {
		created = b.CreateTexture("inline", colorDesc())
		b.Write(created, Color)
	}, nil)

	if created.IsInvalid() {
		t.Error("Builder.CreateTexture should hand back a valid handle")
	}
	if len(fg.resourceNodes) != 1 {
		t.Errorf("expected exactly one resource node, got %d", len(fg.resourceNodes))
	}
}

func TestReadAccumulatesFlagsAcrossMultipleCalls(t *testing.T) {
	fg := New()
	h := fg.CreateTexture("gbuf", colorDesc())
	writer := AddPass(fg, "Producer", func(b *Builder, d *struct{}) {
		b.Write(h, Color|Depth)
	}, nil)

	AddPass(fg, "ReadColor", func(b *Builder, d *struct{}) {
		b.Read(writer.Writes[0], Color)
	}, nil)
	AddPass(fg, "ReadDepth", func(b *Builder, d *struct{}) {
		b.Read(writer.Writes[0], Depth)
	}, nil)

	node := fg.resourceNodes[0]
	if !node.ReadFlags.Has(Color) || !node.ReadFlags.Has(Depth) {
		t.Error("reads from separate passes should accumulate onto the node's ReadFlags")
	}
}
