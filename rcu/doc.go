// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rcu implements the publish/read half of Read-Copy-Update.
//
// A writer builds an object, then hands it to [Pointer.Publish]. Readers
// call [Pointer.Dereference] without locks or fences and either get nil
// ("nothing published yet") or a pointer through which every write made
// to the object before Publish is visible.
//
//	var cfg rcu.Pointer[Config]
//
//	// Writer
//	cfg.Publish(Config{Limit: 10})
//
//	// Reader
//	if c := cfg.Dereference(); c != nil {
//		use(c.Limit) // 10
//	}
//
// # Ordering
//
// Publish writes the object's address with a release store (MOVQ on
// amd64, STLR on arm64). Dereference is a single relaxed load. Accesses
// made through the loaded address depend on it, and both supported
// targets order address-dependent accesses after the load that produced
// the address, so no read-side barrier is needed.
//
// # Reclamation
//
// There is none. Every published object is retained by its Pointer for
// the Pointer's lifetime, including objects later replaced by another
// Publish. This is a deliberate leak: without grace-period tracking no
// reader can be proven finished with an old object, and tracking grace
// periods is outside this package.
package rcu
