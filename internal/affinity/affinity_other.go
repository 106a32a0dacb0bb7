// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux

package affinity

// Supported reports whether Pin can take effect on this platform.
const Supported = false

// Pin always returns ErrUnsupported.
func Pin(int) error {
	return ErrUnsupported
}

// Allowed always returns ErrUnsupported.
func Allowed() ([]int, error) {
	return nil, ErrUnsupported
}
