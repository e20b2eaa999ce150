// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package driver defines the opaque GPU-resource sink that the frame graph
// core drives during Execute.
//
// # Key Principle
//
// The frame graph never creates a GPU device itself; it is handed a Driver
// and calls exactly four operations on it: CreateTexture, CreateRenderTarget,
// DestroyTexture, and DestroyRenderTarget. Driver return values are opaque
// handles and the frame graph assumes every call succeeds — Driver failure
// is not modeled at this layer (see the core package's error handling
// notes).
//
// # Implementations
//
//   - driver/software: a CPU-backed Driver for headless tests, demos, and
//     CI, using *image.RGBA-backed textures.
//   - A production Driver wraps a real GPU device; the corpus's own
//     "library receives, never owns, the device" pattern (a DeviceHandle
//     parameter on the backend's constructor) applies there, but is left
//     until such a backend exists since the CPU-only software backend, like
//     the corpus's own PixmapTarget, needs no device at all.
//
// # Registry
//
// Concrete Driver backends register themselves under a name via Register,
// typically from an init function triggered by a blank import, mirroring
// the corpus's accelerator-registration convention.
package driver
