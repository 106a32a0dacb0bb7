// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mem

import "github.com/kolkov/litmus/internal/arch"

// Fence is a full memory barrier.
//
// No access the calling thread issues before Fence is observed by
// another thread as happening after an access it issues after Fence,
// and vice versa. Fence has no data and makes no value visible by
// itself.
//
// Encoding: MFENCE on amd64, DMB ISH on arm64.
func Fence() {
	arch.Fence()
}
