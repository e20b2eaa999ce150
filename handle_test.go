// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func colorDesc() Descriptor {
	return Descriptor{Format: gputypes.TextureFormatRGBA8Unorm, Width: 4, Height: 4, Depth: 1, Levels: 1, Samples: 1}
}

func TestIsValidAfterCreate(t *testing.T) {
	fg := New()
	h := fg.CreateTexture("x", colorDesc())
	if !fg.IsValid(h) {
		t.Error("IsValid should be true immediately after CreateTexture")
	}
}

func TestWriteBumpsVersionAndInvalidatesOldHandle(t *testing.T) {
	fg := New()
	h0 := fg.CreateTexture("x", colorDesc())

	AddPass(fg, "A", func(b *Builder, d *struct{}) {
		h1 := b.Write(h0, Color)
		if h1.Version != h0.Version+1 {
			t.Errorf("write should bump version by exactly 1, got %d -> %d", h0.Version, h1.Version)
		}
	}, nil)

	if fg.IsValid(h0) {
		t.Error("the pre-write handle should be invalid after a write bumps the node's version")
	}
}

func TestReadOfInvalidHandleIsNoOp(t *testing.T) {
	fg := New()
	stale := fg.CreateTexture("x", colorDesc())
	AddPass(fg, "A", func(b *Builder, d *struct{}) {
		b.Write(stale, Color)
	}, nil)

	var pass *PassNode
	AddPass(fg, "B", func(b *Builder, d *struct{}) {
		pass = b.pass
		got := b.Read(stale, Color)
		if !got.IsInvalid() {
			t.Error("reading a stale handle should return the invalid sentinel")
		}
	}, nil)

	if len(pass.Reads) != 0 {
		t.Error("no read should be recorded for an invalid handle")
	}
}

func TestGetTextureDescInvalidHandle(t *testing.T) {
	fg := New()
	if fg.GetTextureDesc(InvalidHandle()) != nil {
		t.Error("GetTextureDesc should return nil for the invalid sentinel handle")
	}
}
