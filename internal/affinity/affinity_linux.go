// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

package affinity

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Supported reports whether Pin can take effect on this platform.
const Supported = true

// Pin restricts the calling thread to cpu via sched_setaffinity(2).
func Pin(cpu int) error {
	if cpu < 0 {
		return fmt.Errorf("affinity: invalid cpu %d", cpu)
	}

	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)

	// pid 0 is the calling thread.
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("affinity: pin to cpu %d: %w", cpu, err)
	}
	return nil
}

// Allowed returns the IDs of the CPUs the calling thread may run on, in
// ascending order.
func Allowed() ([]int, error) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return nil, fmt.Errorf("affinity: read allowed cpus: %w", err)
	}

	n := set.Count()
	if n == 0 {
		return nil, ErrNoCPUs
	}
	cpus := make([]int, 0, n)
	for cpu := 0; len(cpus) < n; cpu++ {
		if set.IsSet(cpu) {
			cpus = append(cpus, cpu)
		}
	}
	return cpus, nil
}
