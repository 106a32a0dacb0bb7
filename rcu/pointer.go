// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rcu

import (
	"sync"
	"unsafe"

	"github.com/kolkov/litmus/internal/arch"
)

// Pointer is a published pointer to a T.
//
// The zero value holds the null sentinel and is ready to use. A Pointer
// must not be copied after first use.
//
// Thread Safety: Publish and Dereference may be called concurrently from
// any number of goroutines. Concurrent publishers are not arbitrated:
// the last release store in the slot's modification order wins.
type Pointer[T any] struct {
	// slot holds nil or the address of a retained *T. It is only
	// accessed through arch.LoadPointer and arch.StoreReleasePointer.
	slot unsafe.Pointer

	// mu guards retained. It is never held across the store to slot.
	mu sync.Mutex

	// retained keeps every published object reachable. The slot is
	// written without a GC write barrier, so this list is what keeps
	// a published object alive for readers that loaded it.
	retained []*T
}

// New returns a Pointer holding the null sentinel.
func New[T any]() *Pointer[T] {
	return &Pointer[T]{}
}

// Publish transfers obj to the Pointer and makes it visible to readers.
//
// obj is moved into a heap allocation that only the Pointer owns; the
// caller's copy is no longer connected to what readers see, so mutating
// it after Publish cannot race with them. Reference-typed fields of T
// (pointers, slices, maps) are shared as usual and must not be mutated
// after Publish either.
//
// Every write the caller made before Publish, to obj or anything else,
// is visible to a reader whose Dereference returns the new object.
//
// The object is never reclaimed. Publishing again replaces what new
// readers see; the old object stays alive.
func (p *Pointer[T]) Publish(obj T) {
	owned := new(T)
	*owned = obj

	p.mu.Lock()
	p.retained = append(p.retained, owned)
	p.mu.Unlock()

	raceRelease(unsafe.Pointer(&p.slot))
	arch.StoreReleasePointer(&p.slot, unsafe.Pointer(owned))
}

// Dereference returns the most recently observed published object, or
// nil if none has been published yet.
//
// nil is the expected state before the first Publish, not an error.
// The returned object is shared with every other reader and must be
// treated as read-only.
func (p *Pointer[T]) Dereference() *T {
	obj := (*T)(arch.LoadPointer(&p.slot))
	if obj != nil {
		raceAcquire(unsafe.Pointer(&p.slot))
	}
	return obj
}

// Published returns how many objects have been published and retained.
func (p *Pointer[T]) Published() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.retained)
}
