// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package litmus

import (
	"runtime"
	"sort"
	"time"

	"github.com/kolkov/litmus/internal/arch"
)

// Observation is one line of a result histogram.
type Observation struct {
	// Outcome is the formatted outcome, e.g. "1:r0=1; 1:r1=0".
	Outcome string `json:"outcome"`

	// Count is how many iterations produced the outcome.
	Count int `json:"count"`

	// Forbidden marks outcomes the memory model forbids.
	Forbidden bool `json:"forbidden,omitempty"`

	// Interesting marks allowed outcomes that only weak hardware shows.
	Interesting bool `json:"interesting,omitempty"`
}

// Result is the outcome histogram of one Run.
type Result struct {
	Test       string    `json:"test"`
	Arch       string    `json:"arch"`
	Ordering   string    `json:"ordering"`
	GoVersion  string    `json:"go_version"`
	Started    time.Time `json:"started"`
	Iterations int       `json:"iterations"`

	// Forbidden and Interesting count iterations, not distinct outcomes.
	Forbidden   int `json:"forbidden"`
	Interesting int `json:"interesting"`

	// Histogram is sorted by descending count, then by outcome.
	Histogram []Observation `json:"histogram"`

	Elapsed time.Duration `json:"elapsed_ns"`
}

func newResult(t *Test) *Result {
	return &Result{
		Test:      t.Name,
		Arch:      arch.Name,
		Ordering:  arch.Ordering,
		GoVersion: runtime.Version(),
		Started:   time.Now(),
	}
}

// fill converts the raw counts into the sorted histogram.
func (r *Result) fill(t *Test, counts map[Outcome]int) {
	r.Histogram = make([]Observation, 0, len(counts))
	for o, c := range counts {
		obs := Observation{
			Outcome:     t.Format(o),
			Count:       c,
			Forbidden:   t.isForbidden(o),
			Interesting: t.isInteresting(o),
		}
		if obs.Forbidden {
			r.Forbidden += c
		}
		if obs.Interesting {
			r.Interesting += c
		}
		r.Histogram = append(r.Histogram, obs)
	}
	SortHistogram(r.Histogram)
}

// SortHistogram orders observations by descending count, then outcome.
func SortHistogram(h []Observation) {
	sort.Slice(h, func(i, j int) bool {
		if h[i].Count != h[j].Count {
			return h[i].Count > h[j].Count
		}
		return h[i].Outcome < h[j].Outcome
	})
}

// Err returns a *ForbiddenOutcomeError for the most frequent forbidden
// outcome, or nil if none was observed.
func (r *Result) Err() error {
	for _, obs := range r.Histogram {
		if obs.Forbidden {
			return &ForbiddenOutcomeError{
				Test:       r.Test,
				Outcome:    obs.Outcome,
				Count:      obs.Count,
				Iterations: r.Iterations,
			}
		}
	}
	return nil
}

// Verdict summarizes how often the test's target outcomes occurred, in
// the style of litmus7: "Never", "Sometimes" or "Always".
//
// The targets are the forbidden outcomes if any are observed or the
// test defines none interesting; otherwise the interesting ones.
func (r *Result) Verdict() string {
	n := r.targets()
	switch {
	case n == 0:
		return "Never"
	case n == r.Iterations:
		return "Always"
	default:
		return "Sometimes"
	}
}

func (r *Result) targets() int {
	if r.Forbidden > 0 {
		return r.Forbidden
	}
	return r.Interesting
}

// Merge folds other into r. Both must come from the same test.
//
// Merge is used to accumulate runs recorded over several invocations.
func (r *Result) Merge(other *Result) {
	idx := make(map[string]int, len(r.Histogram))
	for i, obs := range r.Histogram {
		idx[obs.Outcome] = i
	}
	for _, obs := range other.Histogram {
		if i, ok := idx[obs.Outcome]; ok {
			r.Histogram[i].Count += obs.Count
			continue
		}
		idx[obs.Outcome] = len(r.Histogram)
		r.Histogram = append(r.Histogram, obs)
	}
	SortHistogram(r.Histogram)

	r.Iterations += other.Iterations
	r.Forbidden += other.Forbidden
	r.Interesting += other.Interesting
	r.Elapsed += other.Elapsed
	if other.Started.Before(r.Started) {
		r.Started = other.Started
	}
}
