// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package framegraph implements a per-frame declarative scheduler for GPU
// rendering work.
//
// # Overview
//
// Client code describes passes as black boxes that declare which logical
// resources they read and write. The FrameGraph assembles this into a
// directed acyclic graph, culls unused work, computes each resource's
// realization window, and drives execution by instantiating concrete GPU
// objects just in time, invoking each pass's executor, and releasing
// objects when no further pass needs them.
//
// # Quick Start
//
//	fg := framegraph.New()
//
//	color := fg.CreateTexture("color", framegraph.Descriptor{
//	    Width: 1920, Height: 1080, Format: gputypes.TextureFormatRGBA8Unorm,
//	})
//
//	type gbufferData struct{ color framegraph.Handle }
//	pass := framegraph.AddPass(fg, "GBuffer",
//	    func(b *framegraph.Builder, d *gbufferData) {
//	        d.color = b.Write(color, framegraph.Color)
//	    },
//	    func(r *framegraph.PassResources, d *gbufferData, drv driver.Driver) {
//	        rt := r.GetRenderTarget(d.color)
//	        _ = rt // issue draw calls against rt
//	    })
//	color = pass.Writes[0]
//
//	fg.Present(color)
//	fg.Compile()
//	fg.Execute(drv)
//
// # Three Layers
//
//  1. Registration (Builder): passes and resource declarations are recorded,
//     resource versions are bumped on each write, and opaque handles are
//     returned.
//  2. Compile: a resource registry is materialized, aliases are applied,
//     references are counted, dead passes are culled, and per-pass
//     devirtualize/destroy lists are computed.
//  3. Execute: passes run in registration order; live resources are
//     realized through a driver.Driver just before their first user and
//     released just after their last, then all per-frame state is reset.
//
// # Non-goals
//
// The frame graph does not schedule across frames, does not itself issue
// draw calls, does not optimize memory layout beyond lifetime windows and
// 1:1 aliasing, does not validate that a pass executor only touches the
// resources it declared, and does not support multithreaded submission —
// Execute is a single linear pass in declaration order.
package framegraph
