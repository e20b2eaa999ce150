// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"testing"

	"github.com/gogpu/framegraph/driver"
	"github.com/gogpu/gputypes"
)

func TestCreateTextureColor(t *testing.T) {
	b := New()
	h := b.CreateTexture(driver.TextureDescriptor{
		Type:   driver.Texture2D,
		Format: gputypes.TextureFormatRGBA8Unorm,
		Width:  64,
		Height: 32,
	})
	if h == driver.NoTexture {
		t.Fatal("CreateTexture returned the zero handle")
	}
	img := b.ColorImage(h)
	if img == nil {
		t.Fatal("ColorImage returned nil for a color texture")
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 32 {
		t.Errorf("image bounds = %v, want 64x32", img.Bounds())
	}
}

func TestCreateTextureDepthHasNoColorImage(t *testing.T) {
	b := New()
	h := b.CreateTexture(driver.TextureDescriptor{
		Type:   driver.Texture2D,
		Format: gputypes.TextureFormatDepth24PlusStencil8,
		Width:  64,
		Height: 32,
	})
	if img := b.ColorImage(h); img != nil {
		t.Error("ColorImage should be nil for a depth-format texture")
	}
}

func TestDestroyTextureRemovesIt(t *testing.T) {
	b := New()
	h := b.CreateTexture(driver.TextureDescriptor{Format: gputypes.TextureFormatRGBA8Unorm, Width: 4, Height: 4})
	b.DestroyTexture(h)
	if img := b.ColorImage(h); img != nil {
		t.Error("ColorImage should be nil after DestroyTexture")
	}
}

func TestLiveTracksOutstandingObjects(t *testing.T) {
	b := New()
	if textures, targets := b.Live(); textures != 0 || targets != 0 {
		t.Fatalf("fresh backend Live() = (%d, %d), want (0, 0)", textures, targets)
	}

	tex := b.CreateTexture(driver.TextureDescriptor{Format: gputypes.TextureFormatRGBA8Unorm, Width: 4, Height: 4})
	rt := b.CreateRenderTarget(driver.RenderTargetDescriptor{Width: 4, Height: 4, Color: tex})

	if textures, targets := b.Live(); textures != 1 || targets != 1 {
		t.Fatalf("Live() after creation = (%d, %d), want (1, 1)", textures, targets)
	}

	b.DestroyTexture(tex)
	b.DestroyRenderTarget(rt)

	if textures, targets := b.Live(); textures != 0 || targets != 0 {
		t.Fatalf("Live() after destruction = (%d, %d), want (0, 0)", textures, targets)
	}
}

func TestDestroyZeroHandlesIsNoOp(t *testing.T) {
	b := New()
	b.DestroyTexture(driver.NoTexture)
	b.DestroyRenderTarget(driver.NoRenderTarget)
}

func TestBackendSelfRegisters(t *testing.T) {
	if _, ok := driver.Get(BackendName); !ok {
		t.Error("software backend should self-register under BackendName on import")
	}
}
