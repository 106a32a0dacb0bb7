// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package litmus

// Config controls how a test is executed.
type Config struct {
	// Iterations is the number of executions.
	Iterations int

	// Pin pins every thread to a CPU of the process's allowed set,
	// a distinct one per thread while the set is large enough (see
	// internal/affinity). Run fails if pinning is not possible.
	Pin bool

	// StopOnForbidden ends the run at the first forbidden outcome.
	StopOnForbidden bool
}

// DefaultIterations is the iteration count used by DefaultConfig.
const DefaultIterations = 10000

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Iterations: DefaultIterations,
	}
}

func (c Config) validate() error {
	if c.Iterations <= 0 {
		return ErrBadIterations
	}
	return nil
}
