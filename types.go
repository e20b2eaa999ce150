// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import (
	"github.com/gogpu/framegraph/driver"
	"github.com/gogpu/gputypes"
)

// Descriptor describes the desired properties of a logical texture.
type Descriptor struct {
	Type    driver.TextureType
	Levels  uint32
	Format  gputypes.TextureFormat
	Width   uint32
	Height  uint32
	Depth   uint32
	Samples uint32
}

// RWFlags is a bit set over {Color, Depth} identifying which attachment
// role(s) an access refers to. The zero value means "unspecified".
type RWFlags uint8

// Attachment roles. These share their bit layout with driver.Attachment.
const (
	Color RWFlags = 1 << iota
	Depth
)

// Has reports whether all bits in other are set in f.
func (f RWFlags) Has(other RWFlags) bool {
	return f&other == other
}

func (f RWFlags) toAttachment() driver.Attachment {
	return driver.Attachment(f)
}

// Handle is an opaque client reference to a logical resource at a specific
// version.
type Handle struct {
	Index   uint16
	Version uint16
}

// invalidHandle is the sentinel value denoting "no resource" or a handle
// that failed validation. Both fields are all-ones.
var invalidHandle = Handle{Index: 0xFFFF, Version: 0xFFFF}

// InvalidHandle returns the sentinel handle value. Reads and writes through
// an invalid handle are no-ops that return this same value.
func InvalidHandle() Handle { return invalidHandle }

// IsInvalid reports whether h is the sentinel invalid handle. This is a
// cheap structural check; it does not consult a FrameGraph, so it cannot
// detect a stale handle whose version has been bumped by a later write —
// use FrameGraph.IsValid for that.
func (h Handle) IsInvalid() bool {
	return h == invalidHandle
}

// AttachmentUsage selects which attachment role a pass wants when
// resolving a texture through PassResources.GetTexture.
type AttachmentUsage uint8

// Recognized attachment usages.
const (
	// Default resolves to the depth slot only when the resource's
	// read-flag set is exactly Depth; otherwise it resolves to color.
	Default AttachmentUsage = iota
	ColorAttachment
	DepthAttachment
)
