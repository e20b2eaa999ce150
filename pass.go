// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import "github.com/gogpu/framegraph/driver"

// PassID identifies a registered pass by its registration order, which is
// also its execution order.
type PassID int32

// NoPass is the sentinel value for "no pass" in First/Last/Writer-adjacent
// fields that track an optional pass reference.
const NoPass PassID = -1

// executor is the type-erased entry point a PassNode invokes during
// Execute. AddPass wraps a caller's typed setup/execute pair in a
// passExecutor[T] satisfying this interface.
type executor interface {
	execute(r *PassResources, d driver.Driver)
}

// passExecutor closes over a pass's user data and its execute callback,
// giving the type-erased PassNode a single entry point while keeping the
// caller's data strongly typed.
type passExecutor[T any] struct {
	data T
	fn   func(*PassResources, *T, driver.Driver)
}

func (e *passExecutor[T]) execute(r *PassResources, d driver.Driver) {
	if e.fn != nil {
		e.fn(r, &e.data, d)
	}
}

// PassNode is a registered pass.
type PassNode struct {
	Name string
	ID   PassID

	Reads  []Handle
	Writes []Handle

	// Devirtualize and Destroy name resource-registry indices, populated
	// by Compile's lifetime-attachment phase.
	Devirtualize []int
	Destroy      []int

	RefCount int

	// Culled is set by Compile's cull phase when RefCount is decremented to
	// zero by the algorithm. It is distinct from "RefCount == 0 from
	// registration", which also holds for sink passes like Present that
	// declare no writes at all — those are never culled and always run.
	Culled bool

	executor executor
}
