// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenario

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kolkov/litmus/litmus"
)

// ErrUnknownTest is returned by Lookup for names not in the catalog.
var ErrUnknownTest = errors.New("scenario: unknown test")

// constructors lists the catalog in display order.
var constructors = []func() *litmus.Test{
	CoRR,
	CoRR4,
	MP,
	MPReleaseFence,
	MPRCU,
	LBFence,
	SB,
	SBFences,
}

// All returns a fresh copy of every test in the catalog.
func All() []*litmus.Test {
	tests := make([]*litmus.Test, 0, len(constructors))
	for _, c := range constructors {
		tests = append(tests, c())
	}
	return tests
}

// Names returns the catalog names in display order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for _, t := range All() {
		names = append(names, t.Name)
	}
	return names
}

// Lookup returns the test with the given name, ignoring case.
func Lookup(name string) (*litmus.Test, error) {
	for _, t := range All() {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTest, name)
}
