// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package driver

import "github.com/gogpu/gputypes"

// TextureHandle is an opaque handle to a GPU texture created by a Driver.
type TextureHandle uint64

// NoTexture is the zero value, representing the absence of a texture.
const NoTexture TextureHandle = 0

// RenderTargetHandle is an opaque handle to a GPU render target created by
// a Driver.
type RenderTargetHandle uint64

// NoRenderTarget is the zero value, representing the absence of a render
// target.
const NoRenderTarget RenderTargetHandle = 0

// TextureType identifies the dimensionality of a texture.
type TextureType uint8

// Recognized texture types.
const (
	Texture2D TextureType = iota
	Texture2DArray
	TextureCube
	Texture3D
)

// TextureUsage is a bitmask specifying how a texture will be used.
// These flags can be combined with bitwise OR.
type TextureUsage uint32

// Texture usage flags.
const (
	// TextureUsageCopySrc allows the texture to be used as a copy source.
	TextureUsageCopySrc TextureUsage = 1 << iota

	// TextureUsageCopyDst allows the texture to be used as a copy destination.
	TextureUsageCopyDst

	// TextureUsageTextureBinding allows the texture to be sampled.
	TextureUsageTextureBinding

	// TextureUsageRenderAttachment allows the texture to be bound as a
	// color or depth/stencil attachment.
	TextureUsageRenderAttachment
)

// Attachment is a bitmask over {Color, Depth} identifying which attachment
// role(s) a render target binds.
type Attachment uint8

// Attachment roles.
const (
	AttachmentColor Attachment = 1 << iota
	AttachmentDepth
)

// TextureDescriptor describes the parameters for creating a texture.
type TextureDescriptor struct {
	Type    TextureType
	Levels  uint32
	Format  gputypes.TextureFormat
	Samples uint32
	Width   uint32
	Height  uint32
	Depth   uint32
	Usage   TextureUsage
}

// RenderTargetDescriptor describes the parameters for creating a render
// target. Color and Depth hold the textures the target binds to slots 0
// and 1 respectively; either may be NoTexture if the corresponding
// Attachments bit is not set.
type RenderTargetDescriptor struct {
	Attachments Attachment
	Width       uint32
	Height      uint32
	Samples     uint32
	Format      gputypes.TextureFormat
	Color       TextureHandle
	Depth       TextureHandle
}

// Driver is the opaque GPU-resource sink the frame graph core depends on.
//
// Implementations are not required to be safe for concurrent use from
// multiple goroutines; the frame graph never calls a Driver from more than
// one goroutine at a time.
type Driver interface {
	// CreateTexture allocates a texture and returns a handle to it.
	CreateTexture(desc TextureDescriptor) TextureHandle

	// CreateRenderTarget allocates a render target bound to the textures
	// named in desc and returns a handle to it.
	CreateRenderTarget(desc RenderTargetDescriptor) RenderTargetHandle

	// DestroyTexture releases a texture previously returned by
	// CreateTexture. Destroying NoTexture is a no-op.
	DestroyTexture(h TextureHandle)

	// DestroyRenderTarget releases a render target previously returned by
	// CreateRenderTarget. Destroying NoRenderTarget is a no-op.
	DestroyRenderTarget(h RenderTargetHandle)
}
