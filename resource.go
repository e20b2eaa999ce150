// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import (
	"github.com/gogpu/framegraph/driver"
	"github.com/gogpu/gputypes"
)

// depthFormat is the fixed 24-bit depth format used for depth attachments
// devirtualized by the frame graph, independent of a resource's own
// Descriptor.Format (which describes its color aspect).
const depthFormat = gputypes.TextureFormatDepth24PlusStencil8

// ResourceNode is a versioned view of a logical resource — the "virtual"
// side of the frame graph. One is created per FrameGraph.CreateTexture
// call and lives for a single frame.
type ResourceNode struct {
	Name       string
	Index      int
	Version    uint16
	Descriptor Descriptor
	ReadFlags  RWFlags
	WriteFlags RWFlags

	resource *Resource // backing record, set during Compile
}

// Resource is the backing record for a logical resource — the "physical"
// side of the frame graph. It is created in Compile and carries the driver
// objects obtained during Execute's devirtualize step.
type Resource struct {
	Name       string
	Descriptor Descriptor
	ReadFlags  RWFlags
	WriteFlags RWFlags

	First       PassID
	Last        PassID
	Writer      *PassNode
	ReaderCount int
	WriterCount int

	Color        driver.TextureHandle
	DepthTexture driver.TextureHandle
	RenderTarget driver.RenderTargetHandle
}

// create asks d to realize the driver objects this resource's flag sets
// call for. The read/write split decides what role the physical object
// plays (sampleable texture vs. attachment); the descriptor decides its
// shape.
func (r *Resource) create(d driver.Driver) {
	if r.ReaderCount > 0 && r.ReadFlags.Has(Color) {
		r.Color = d.CreateTexture(driver.TextureDescriptor{
			Type:    r.Descriptor.Type,
			Levels:  r.Descriptor.Levels,
			Format:  r.Descriptor.Format,
			Samples: r.Descriptor.Samples,
			Width:   r.Descriptor.Width,
			Height:  r.Descriptor.Height,
			Depth:   r.Descriptor.Depth,
			Usage:   driver.TextureUsageTextureBinding | driver.TextureUsageRenderAttachment,
		})
	}
	if r.ReaderCount > 0 && r.ReadFlags.Has(Depth) {
		r.DepthTexture = d.CreateTexture(driver.TextureDescriptor{
			Type:    driver.Texture2D,
			Levels:  1,
			Format:  depthFormat,
			Samples: r.Descriptor.Samples,
			Width:   r.Descriptor.Width,
			Height:  r.Descriptor.Height,
			Depth:   1,
			Usage:   driver.TextureUsageRenderAttachment,
		})
	}
	if r.WriterCount > 0 {
		r.RenderTarget = d.CreateRenderTarget(driver.RenderTargetDescriptor{
			Attachments: r.WriteFlags.toAttachment(),
			Width:       r.Descriptor.Width,
			Height:      r.Descriptor.Height,
			Samples:     r.Descriptor.Samples,
			Format:      r.Descriptor.Format,
			Color:       r.Color,
			Depth:       r.DepthTexture,
		})
	}
}

// destroy releases any driver objects created for this resource.
func (r *Resource) destroy(d driver.Driver) {
	if r.Color != driver.NoTexture {
		d.DestroyTexture(r.Color)
		r.Color = driver.NoTexture
	}
	if r.DepthTexture != driver.NoTexture {
		d.DestroyTexture(r.DepthTexture)
		r.DepthTexture = driver.NoTexture
	}
	if r.RenderTarget != driver.NoRenderTarget {
		d.DestroyRenderTarget(r.RenderTarget)
		r.RenderTarget = driver.NoRenderTarget
	}
}
