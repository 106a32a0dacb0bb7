// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arch holds the per-target instruction encodings behind the
// public mem and rcu packages.
//
// Every routine is written in Go assembly (arch_amd64.s, arch_arm64.s)
// and is therefore opaque to the compiler: a call can be neither
// inlined, split, elided, hoisted out of a loop nor reordered with
// other calls on the same goroutine. What each routine adds at the
// hardware level depends on the target:
//
//	                amd64 (TSO)   arm64 (weak)
//	Load            MOVQ          MOVD (LDR)
//	Store           MOVQ          MOVD (STR)
//	StoreRelease    MOVQ          STLR
//	Fence           MFENCE        DMB ISH
//	Relax           PAUSE         YIELD
//
// The encoding is chosen at build time by file suffix. Building for
// any other GOARCH fails to compile (see arch_unsupported.go); there
// is no runtime fallback.
package arch
