// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import "github.com/gogpu/framegraph/driver"

// PassResources is the view an executing pass gets of its own
// devirtualized resources. It is only valid for the duration of the
// pass's execute callback.
type PassResources struct {
	fg *FrameGraph
}

// GetTexture returns the backend texture handle bound to h for the given
// usage. ColorAttachment always resolves to the color slot and
// DepthAttachment always resolves to the depth slot; Default falls
// through to the depth slot only when the resource's read-flag set is
// exactly Depth, and to the color slot otherwise — a bitwise-equality
// rule, so a resource read as Color|Depth still resolves Default to
// color, which may surprise depth-sampling passes.
//
// GetTexture panics with an InvariantError if h does not resolve to a
// registered resource — by the time a pass is executing, every handle it
// holds has already passed Builder.Read/Write validation, so a failure
// here means Compile's own bookkeeping is broken.
func (r *PassResources) GetTexture(h Handle, usage AttachmentUsage) driver.TextureHandle {
	res := r.fg.resolve(h)
	if res == nil {
		panic(&InvariantError{Op: "GetTexture", Detail: "handle does not resolve to a realized resource"})
	}
	switch usage {
	case DepthAttachment:
		return res.DepthTexture
	case ColorAttachment:
		return res.Color
	default:
		if res.ReadFlags == Depth {
			return res.DepthTexture
		}
		return res.Color
	}
}

// GetRenderTarget returns the backend render target handle bound to h.
func (r *PassResources) GetRenderTarget(h Handle) driver.RenderTargetHandle {
	res := r.fg.resolve(h)
	if res == nil {
		panic(&InvariantError{Op: "GetRenderTarget", Detail: "handle does not resolve to a realized resource"})
	}
	return res.RenderTarget
}
