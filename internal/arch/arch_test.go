// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arch

import (
	"runtime"
	"testing"
	"unsafe"
)

// TestName checks that the encodings match the target being built.
func TestName(t *testing.T) {
	if Name != runtime.GOARCH {
		t.Fatalf("Name = %q, built for %q", Name, runtime.GOARCH)
	}
	if WeaklyOrdered != (Ordering == "weak") {
		t.Errorf("WeaklyOrdered = %v but Ordering = %q", WeaklyOrdered, Ordering)
	}
	if FenceEncoding == "" || ReleaseEncoding == "" {
		t.Errorf("missing encoding: fence=%q release=%q", FenceEncoding, ReleaseEncoding)
	}
}

// TestLoadStore tests single-threaded word round trips.
func TestLoadStore(t *testing.T) {
	tests := []struct {
		name string
		val  uintptr
	}{
		{"zero", 0},
		{"one", 1},
		{"high bit", 1 << (unsafe.Sizeof(uintptr(0))*8 - 1)},
		{"all ones", ^uintptr(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var word uintptr
			Store(&word, tt.val)
			if got := Load(&word); got != tt.val {
				t.Errorf("Load after Store(%#x) = %#x", tt.val, got)
			}

			StoreRelease(&word, ^tt.val)
			if got := Load(&word); got != ^tt.val {
				t.Errorf("Load after StoreRelease(%#x) = %#x", ^tt.val, got)
			}
		})
	}
}

// TestLoadInLoop checks that a Load inside a loop is re-executed each
// iteration rather than hoisted. The writer is released only after the
// loop has already seen the initial value.
func TestLoadInLoop(t *testing.T) {
	var word uintptr
	release := make(chan struct{})
	go func() {
		<-release
		Store(&word, 1)
	}()

	for i := 0; Load(&word) == 0; i++ {
		switch {
		case i == 0:
			close(release)
		case i > 1<<24:
			t.Fatal("Load never observed the store")
		case i%1024 == 0:
			// Lets the writer run when GOMAXPROCS is 1.
			runtime.Gosched()
		default:
			Relax()
		}
	}
}

// TestPointer tests pointer slots.
func TestPointer(t *testing.T) {
	var slot unsafe.Pointer
	if p := LoadPointer(&slot); p != nil {
		t.Fatalf("LoadPointer on empty slot = %p, want nil", p)
	}

	v := new(int)
	*v = 42
	StoreReleasePointer(&slot, unsafe.Pointer(v))

	p := (*int)(LoadPointer(&slot))
	if p != v {
		t.Fatalf("LoadPointer = %p, want %p", p, v)
	}
	if *p != 42 {
		t.Errorf("*LoadPointer = %d, want 42", *p)
	}
	runtime.KeepAlive(v)
}

// TestFence only checks that the barrier executes.
func TestFence(t *testing.T) {
	for i := 0; i < 100; i++ {
		Fence()
		Relax()
	}
}

func BenchmarkLoad(b *testing.B) {
	var word uintptr
	for i := 0; i < b.N; i++ {
		_ = Load(&word)
	}
}

func BenchmarkStore(b *testing.B) {
	var word uintptr
	for i := 0; i < b.N; i++ {
		Store(&word, uintptr(i))
	}
}

func BenchmarkStoreRelease(b *testing.B) {
	var word uintptr
	for i := 0; i < b.N; i++ {
		StoreRelease(&word, uintptr(i))
	}
}

func BenchmarkFence(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Fence()
	}
}
