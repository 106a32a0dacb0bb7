// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !amd64 && !arm64

package arch

// Fence and release-store encodings exist only for amd64 and arm64.
// Any other target stops here at compile time.
var _ = fence_and_release_encodings_require_amd64_or_arm64
