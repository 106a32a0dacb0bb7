// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenario

import (
	"context"
	"testing"

	"github.com/kolkov/litmus/litmus"
	"github.com/kolkov/litmus/mem"
)

func iterations() int {
	if testing.Short() {
		return 1000
	}
	return 20000
}

// TestScenarios runs the whole catalog and fails on any forbidden
// outcome. Interesting outcomes are only logged: their absence after
// any number of iterations proves nothing.
func TestScenarios(t *testing.T) {
	info := mem.GetInfo()
	for _, test := range All() {
		t.Run(test.Name, func(t *testing.T) {
			res, err := litmus.Run(context.Background(), test, litmus.Config{Iterations: iterations()})
			if err != nil {
				t.Fatalf("Run() error: %v", err)
			}
			if err := res.Err(); err != nil {
				t.Fatal(err)
			}

			if test.Interesting != nil {
				t.Logf("%s on %s (%s): weak outcome %d/%d", test.Name, info.Arch, info.Ordering,
					res.Interesting, res.Iterations)
			}
		})
	}
}

// TestCoRRRepeated is CoRR as a bare two-goroutine program, without
// the harness: one writer, one reader, joined every iteration.
func TestCoRRRepeated(t *testing.T) {
	for i := 0; i < iterations(); i++ {
		x := mem.NewCell(0)
		done := make(chan struct{})
		var r0, r1 uintptr

		go func() {
			x.WriteOnce(1)
			done <- struct{}{}
		}()
		go func() {
			r0 = x.ReadOnce()
			r1 = x.ReadOnce()
			done <- struct{}{}
		}()
		<-done
		<-done

		if r0 == 1 && r1 == 0 {
			t.Fatalf("iteration %d: forbidden outcome r0=1 r1=0", i)
		}
	}
}
