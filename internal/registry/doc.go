// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

/*
Package registry holds named exemplar prototypes and mints copies of them on
demand, so callers never deal with concrete construction.

	reg := registry.New()
	reg.Put("PROTOTYPE_2", b)

	p, err := reg.Create("PROTOTYPE_2")
	if registry.IsKeyNotFound(err) {
	    // unknown key
	}

A Registry is not safe for concurrent use. It is meant to be built and used
by a single goroutine.
*/
package registry
