// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package driver

import (
	"fmt"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]Driver, 1)
)

// Register registers a Driver backend under name.
//
// Backends are expected to call Register exactly once, typically from an
// init function triggered by a blank import:
//
//	import _ "github.com/gogpu/framegraph/driver/software"
//
// If a backend with the same name is already registered, it is replaced.
func Register(name string, d Driver) {
	if d == nil {
		panic("driver: Register called with nil Driver")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[name]; exists {
		Logger().Warn("driver backend replaced", "name", name)
	}
	registry[name] = d
}

// Get returns the Driver registered under name, or false if none is
// registered under that name.
func Get(name string) (Driver, bool) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := registry[name]
	return d, ok
}

// MustGet returns the Driver registered under name, or panics if none is
// registered under that name. It is a convenience for callers (demos,
// tests) that consider a missing backend a setup error rather than a
// recoverable condition.
func MustGet(name string) Driver {
	d, ok := Get(name)
	if !ok {
		panic(fmt.Sprintf("driver: no backend registered under %q", name))
	}
	return d
}

// Names returns the names of all currently registered backends.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
