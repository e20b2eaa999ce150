// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package software provides a CPU-backed driver.Driver implementation.
//
// It is useful for headless tests, demos, and CI where no GPU device is
// available. Color textures are backed by *image.RGBA; depth textures are
// backed by *image.Gray16 as a stand-in for a 24-bit depth format. Render
// targets bundle the handles of the color/depth textures they were created
// with.
//
// The backend self-registers under the name "software" from an init
// function, so importing the package for side effects is enough to make it
// available through driver.Get("software"):
//
//	import _ "github.com/gogpu/framegraph/driver/software"
package software

import (
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/framegraph/driver"
	"github.com/gogpu/gputypes"
)

// BackendName is the name this backend registers itself under.
const BackendName = "software"

func init() {
	driver.Register(BackendName, New())
}

// texture is the backing store for a single CreateTexture call.
type texture struct {
	desc  driver.TextureDescriptor
	color *image.RGBA   // populated when the texture can hold color data
	depth *image.Gray16 // populated for depth-format textures
}

// renderTarget bundles the textures a render target was created from.
type renderTarget struct {
	desc driver.RenderTargetDescriptor
}

// Backend is a CPU-backed driver.Driver.
type Backend struct {
	mu       sync.Mutex
	nextID   uint64
	textures map[driver.TextureHandle]*texture
	targets  map[driver.RenderTargetHandle]*renderTarget
}

// New creates a new software backend.
func New() *Backend {
	return &Backend{
		textures: make(map[driver.TextureHandle]*texture),
		targets:  make(map[driver.RenderTargetHandle]*renderTarget),
	}
}

func (b *Backend) allocID() uint64 {
	b.nextID++
	return b.nextID
}

// isDepthFormat reports whether format is a depth/stencil format this
// backend represents with a Gray16 image rather than RGBA.
func isDepthFormat(format gputypes.TextureFormat) bool {
	return format == gputypes.TextureFormatDepth24PlusStencil8
}

// CreateTexture implements driver.Driver.
func (b *Backend) CreateTexture(desc driver.TextureDescriptor) driver.TextureHandle {
	b.mu.Lock()
	defer b.mu.Unlock()

	t := &texture{desc: desc}
	bounds := image.Rect(0, 0, int(desc.Width), int(desc.Height))
	if isDepthFormat(desc.Format) {
		t.depth = image.NewGray16(bounds)
	} else {
		t.color = image.NewRGBA(bounds)
	}

	h := driver.TextureHandle(b.allocID())
	b.textures[h] = t
	driver.Logger().Debug("software: texture created",
		"handle", h, "width", desc.Width, "height", desc.Height, "format", desc.Format)
	return h
}

// CreateRenderTarget implements driver.Driver.
func (b *Backend) CreateRenderTarget(desc driver.RenderTargetDescriptor) driver.RenderTargetHandle {
	b.mu.Lock()
	defer b.mu.Unlock()

	h := driver.RenderTargetHandle(b.allocID())
	b.targets[h] = &renderTarget{desc: desc}
	driver.Logger().Debug("software: render target created",
		"handle", h, "width", desc.Width, "height", desc.Height)
	return h
}

// DestroyTexture implements driver.Driver.
func (b *Backend) DestroyTexture(h driver.TextureHandle) {
	if h == driver.NoTexture {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.textures, h)
	driver.Logger().Debug("software: texture destroyed", "handle", h)
}

// DestroyRenderTarget implements driver.Driver.
func (b *Backend) DestroyRenderTarget(h driver.RenderTargetHandle) {
	if h == driver.NoRenderTarget {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.targets, h)
	driver.Logger().Debug("software: render target destroyed", "handle", h)
}

// ColorImage returns the color pixels for a live texture handle, for tests
// and demos that want to inspect or save what a pass rendered into. It
// returns nil if the handle is unknown or the texture is depth-only.
func (b *Backend) ColorImage(h driver.TextureHandle) *image.RGBA {
	b.mu.Lock()
	defer b.mu.Unlock()
	t, ok := b.textures[h]
	if !ok {
		return nil
	}
	return t.color
}

// Live reports the number of textures and render targets currently
// allocated, for tests asserting that Execute released everything it
// created.
func (b *Backend) Live() (textures, targets int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.textures), len(b.targets)
}

// Ensure Backend implements driver.Driver.
var _ driver.Driver = (*Backend)(nil)

// String implements fmt.Stringer for diagnostics.
func (b *Backend) String() string {
	return fmt.Sprintf("software.Backend{textures:%d, targets:%d}", len(b.textures), len(b.targets))
}
