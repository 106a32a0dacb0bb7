// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"strings"

	"golang.org/x/mod/semver"
)

// ToolchainVersion converts a Go toolchain version as reported by
// runtime.Version into a semantic version.
//
//	go1.24.3   -> v1.24.3
//	go1.24     -> v1.24.0
//	go1.25rc1  -> v1.25.0-rc1
//	devel ...  -> "" (invalid; sorts before every release)
func ToolchainVersion(v string) string {
	v, ok := strings.CutPrefix(v, "go")
	if !ok {
		return ""
	}
	// Drop experiment suffixes such as " X:nocoverageredesign".
	if i := strings.IndexByte(v, ' '); i >= 0 {
		v = v[:i]
	}

	pre := ""
	for _, tag := range []string{"rc", "beta"} {
		if i := strings.Index(v, tag); i >= 0 {
			v, pre = v[:i], "-"+v[i:]
			break
		}
	}
	if strings.Count(v, ".") == 1 {
		v += ".0"
	}

	sv := "v" + v + pre
	if !semver.IsValid(sv) {
		return ""
	}
	return sv
}

// AtLeast reports whether the Go toolchain version v is min or newer.
// min is a semantic version such as "v1.24.0".
func AtLeast(v, min string) bool {
	sv := ToolchainVersion(v)
	if sv == "" {
		// Development toolchains are assumed current.
		return strings.HasPrefix(v, "devel")
	}
	return semver.Compare(sv, min) >= 0
}
