// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import (
	"testing"

	"github.com/gogpu/framegraph/driver"
	"github.com/gogpu/framegraph/driver/software"
)

func TestCompileTrivialPresent(t *testing.T) {
	fg := New()
	color := fg.CreateTexture("color", colorDesc())

	gbuffer := AddPass(fg, "GBuffer", func(b *Builder, d *struct{}) {
		b.Write(color, Color)
	}, nil)
	fg.Present(gbuffer.Writes[0])

	fg.Compile()

	if gbuffer.RefCount == 0 || gbuffer.Culled {
		t.Error("GBuffer should survive culling with a positive refCount")
	}

	colorRes := fg.registry[0]
	if len(gbuffer.Devirtualize) != 1 || gbuffer.Devirtualize[0] != 0 {
		t.Errorf("color should be devirtualized by GBuffer, got %v", gbuffer.Devirtualize)
	}
	present := fg.passes[len(fg.passes)-1]
	if len(present.Destroy) != 1 || present.Destroy[0] != 0 {
		t.Errorf("color should be destroyed by Present, got %v", present.Destroy)
	}
	if colorRes.WriterCount != 1 {
		t.Errorf("WriterCount = %d, want 1", colorRes.WriterCount)
	}
}

func TestCompileCullsDeadWriter(t *testing.T) {
	fg := New()
	shadow := fg.CreateTexture("shadow", colorDesc())
	final := fg.CreateTexture("final", colorDesc())

	passA := AddPass(fg, "A", func(b *Builder, d *struct{}) {
		b.Write(shadow, Color)
	}, nil)
	passB := AddPass(fg, "B", func(b *Builder, d *struct{}) {
		b.Write(final, Color)
	}, nil)
	fg.Present(passB.Writes[0])

	fg.Compile()

	if !passA.Culled {
		t.Error("A should be culled: its only output is never read")
	}
	if passB.Culled {
		t.Error("B should survive: its output reaches present")
	}
	if len(passA.Devirtualize) != 0 {
		t.Error("shadow should never be realized")
	}
}

func TestCompileAliasSharesBackingResource(t *testing.T) {
	fg := New()
	src := fg.CreateTexture("src", colorDesc())
	dst := fg.CreateTexture("dst", colorDesc())

	// Only dst gets a writer pass: once aliased, src and dst share one
	// backing Resource, and a writer on each side would give it two
	// writers, which Compile rejects (see TestCompileMultipleWritersPanics).
	wd := AddPass(fg, "WriteDst", func(b *Builder, d *struct{}) {
		b.Write(dst, Color)
	}, nil)
	fg.MoveResource(src, dst)
	fg.Present(wd.Writes[0])

	fg.Compile()

	srcNode := fg.resourceNodes[0]
	dstNode := fg.resourceNodes[1]
	if srcNode.resource != dstNode.resource {
		t.Error("aliased resource nodes should share the same backing Resource after Compile")
	}
}

func TestCompileDepthOnlyReadResolvesDefaultToDepthSlot(t *testing.T) {
	fg := New()
	gbuf := fg.CreateTexture("gbuf", colorDesc())

	producer := AddPass(fg, "Producer", func(b *Builder, d *struct{}) {
		b.Write(gbuf, Color|Depth)
	}, nil)

	// The Reader's own read keeps Producer alive. No Present is added:
	// Present reads with Color, which would make the read-flag set
	// Color|Depth and resolve Default to the color slot.
	var gotColor, gotDepth driver.TextureHandle
	AddPass(fg, "Reader", func(b *Builder, d *struct{}) {
		b.Read(producer.Writes[0], Depth)
	}, func(r *PassResources, d *struct{}, drv driver.Driver) {
		gotDepth = r.GetTexture(producer.Writes[0], Default)
		gotColor = r.GetTexture(producer.Writes[0], ColorAttachment)
	})

	backend := software.New()
	fg.Compile()
	fg.Execute(backend)

	if gotDepth == driver.NoTexture {
		t.Fatal("depth texture handle should not be zero")
	}
	if gotColor == gotDepth {
		t.Error("GetTexture(DEFAULT) on a depth-only read should not equal the color slot")
	}
}

func TestCompileWriterlessResourceIsSkippedNotFatal(t *testing.T) {
	fg := New()
	orphan := fg.CreateTexture("orphan", colorDesc())
	fg.Present(orphan)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("a writerless but read resource should be logged and skipped, not panic: %v", r)
		}
	}()
	fg.Compile()
}

func TestCompileMultipleWritersPanics(t *testing.T) {
	// Two different passes writing into the same underlying node violate
	// writer uniqueness: write() bumps the node's version but every
	// version still resolves to the same backing Resource, so a second
	// pass writing the fresh handle from the first still counts as a
	// second writer of one Resource.
	fg := New()
	h := fg.CreateTexture("x", colorDesc())

	h1 := Handle{}
	AddPass(fg, "A", func(b *Builder, d *struct{}) {
		h1 = b.Write(h, Color)
	}, nil)
	AddPass(fg, "B", func(b *Builder, d *struct{}) {
		b.Write(h1, Color)
	}, nil)
	fg.Present(h1)

	defer func() {
		if recover() == nil {
			t.Error("Compile should panic when a resource ends up with more than one writer")
		}
	}()
	fg.Compile()
}
