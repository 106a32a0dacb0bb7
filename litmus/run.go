// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package litmus

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kolkov/litmus/internal/affinity"
	"github.com/kolkov/litmus/internal/arch"
)

// spinBeforeYield is how many Relax rounds a waiting goroutine spins
// before it starts yielding its P. Spinning keeps the start of all
// threads tight; yielding keeps Run alive when GOMAXPROCS is smaller
// than the number of threads.
const spinBeforeYield = 1 << 12

// runner holds the state shared between the coordinator and the thread
// goroutines of one Run.
//
// Protocol per iteration:
//  1. Coordinator stores bodies and clears regs and done.
//  2. Coordinator increments gen.
//  3. Each thread observes the new gen, runs its body, increments done.
//  4. Coordinator waits for done == len(bodies) and reads regs.
//
// The sync/atomic operations on gen and done order steps 1→3 and 3→4;
// they sit outside the bodies and add no ordering inside them.
type runner struct {
	test   *Test
	bodies []Thread
	regs   Outcome

	gen  atomic.Uint64
	done atomic.Int32
	stop atomic.Bool
}

// Run executes t cfg.Iterations times and returns the outcome histogram.
//
// Run returns an error only for malformed tests, failed CPU pinning or a
// cancelled ctx (in which case the partial result is returned as well).
// A forbidden outcome is not an error of Run; check [Result.Err].
//
// Example:
//
//	res, err := litmus.Run(ctx, scenario.CoRR(), litmus.Config{Iterations: 1000})
//	if err != nil {
//		return err
//	}
//	if err := res.Err(); err != nil {
//		t.Fatal(err)
//	}
func Run(ctx context.Context, t *Test, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var first []Thread
	if t.New != nil {
		first = t.New()
	}
	if err := t.validate(first); err != nil {
		return nil, err
	}

	var cpus []int
	if cfg.Pin {
		var err error
		if cpus, err = affinity.Allowed(); err != nil {
			return nil, fmt.Errorf("litmus: %s: %w", t.Name, err)
		}
	}

	r := &runner{test: t}
	n := len(first)

	var wg sync.WaitGroup
	ready := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cpu := -1
			if cfg.Pin {
				cpu = affinity.CPUFor(cpus, i)
			}
			r.thread(i, cpu, ready)
		}()
	}
	defer func() {
		r.stop.Store(true)
		r.gen.Add(1)
		wg.Wait()
	}()

	for i := 0; i < n; i++ {
		if err := <-ready; err != nil {
			return nil, fmt.Errorf("litmus: %s: %w", t.Name, err)
		}
	}

	counts := make(map[Outcome]int)
	res := newResult(t)
	started := time.Now()

	var runErr error
	bodies := first
	for it := 0; it < cfg.Iterations; it++ {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		if bodies == nil {
			bodies = t.New()
			if err := t.checkBodies(bodies, n); err != nil {
				runErr = err
				break
			}
		}

		o := r.execute(bodies)
		bodies = nil

		counts[o]++
		res.Iterations++
		if cfg.StopOnForbidden && t.isForbidden(o) {
			break
		}
	}

	res.Elapsed = time.Since(started)
	res.fill(t, counts)
	return res, runErr
}

// execute runs one iteration and returns its outcome.
func (r *runner) execute(bodies []Thread) Outcome {
	r.bodies = bodies
	r.regs = Outcome{}
	r.done.Store(0)
	r.gen.Add(1)

	n := int32(len(bodies))
	for i := 0; r.done.Load() != n; i++ {
		pause(i)
	}
	return r.regs
}

// thread is the loop of one litmus thread goroutine. A cpu of -1
// leaves the thread unpinned.
func (r *runner) thread(idx, cpu int, ready chan<- error) {
	runtime.LockOSThread()
	if cpu >= 0 {
		// A pinned thread is left locked so that it exits with the
		// goroutine instead of returning to the scheduler pinned.
		if err := affinity.Pin(cpu); err != nil {
			ready <- fmt.Errorf("pin thread %d: %w", idx, err)
			return
		}
	} else {
		defer runtime.UnlockOSThread()
	}
	ready <- nil

	var seen uint64
	for {
		g := r.gen.Load()
		for i := 0; g == seen; i++ {
			pause(i)
			g = r.gen.Load()
		}
		seen = g

		if r.stop.Load() {
			return
		}
		r.bodies[idx](&r.regs)
		r.done.Add(1)
	}
}

func pause(i int) {
	if i < spinBeforeYield {
		arch.Relax()
		return
	}
	runtime.Gosched()
}
