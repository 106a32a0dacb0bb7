// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kolkov/litmus/litmus"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func result(test, goVersion string, started time.Time, hist ...litmus.Observation) *litmus.Result {
	res := &litmus.Result{
		Test:      test,
		Arch:      "arm64",
		Ordering:  "weak",
		GoVersion: goVersion,
		Started:   started,
		Histogram: hist,
		Elapsed:   time.Millisecond,
	}
	for _, obs := range hist {
		res.Iterations += obs.Count
		if obs.Forbidden {
			res.Forbidden += obs.Count
		}
		if obs.Interesting {
			res.Interesting += obs.Count
		}
	}
	return res
}

func TestRecordRuns(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	started := time.Unix(1700000000, 123)

	in := result("MP", "go1.24.2", started,
		litmus.Observation{Outcome: "1:r0=1; 1:r1=1", Count: 90},
		litmus.Observation{Outcome: "1:r0=1; 1:r1=0", Count: 10, Interesting: true},
	)
	id, err := s.Record(ctx, in)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if id <= 0 {
		t.Errorf("Record id = %d, want > 0", id)
	}

	runs, err := s.Runs(ctx, "MP")
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Runs returned %d runs, want 1", len(runs))
	}

	got := runs[0].Result
	if runs[0].ID != id {
		t.Errorf("ID = %d, want %d", runs[0].ID, id)
	}
	if got.Test != "MP" || got.Arch != "arm64" || got.Ordering != "weak" || got.GoVersion != "go1.24.2" {
		t.Errorf("header = %q %q %q %q", got.Test, got.Arch, got.Ordering, got.GoVersion)
	}
	if !got.Started.Equal(started) {
		t.Errorf("Started = %v, want %v", got.Started, started)
	}
	if got.Iterations != 100 || got.Interesting != 10 || got.Forbidden != 0 {
		t.Errorf("counts = %d/%d/%d, want 100/10/0", got.Iterations, got.Interesting, got.Forbidden)
	}
	if got.Elapsed != time.Millisecond {
		t.Errorf("Elapsed = %v, want 1ms", got.Elapsed)
	}
	if len(got.Histogram) != 2 || got.Histogram[1] != in.Histogram[1] {
		t.Errorf("Histogram = %+v, want %+v", got.Histogram, in.Histogram)
	}
}

func TestRunsOrder(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	base := time.Unix(1700000000, 0)
	obs := litmus.Observation{Outcome: "1:r0=0; 1:r1=0", Count: 1}

	// Inserted out of order on purpose.
	for _, r := range []*litmus.Result{
		result("CoRR", "go1.25.0", base, obs),
		result("CoRR", "go1.24", base.Add(2*time.Hour), obs),
		result("CoRR", "go1.24.1", base.Add(time.Hour), obs),
		result("CoRR", "go1.24", base.Add(time.Hour), obs),
		result("SB", "go1.23.0", base, obs),
	} {
		if _, err := s.Record(ctx, r); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	runs, err := s.Runs(ctx, "CoRR")
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	want := []struct {
		goVersion string
		started   time.Time
	}{
		{"go1.24", base.Add(time.Hour)},
		{"go1.24", base.Add(2 * time.Hour)},
		{"go1.24.1", base.Add(time.Hour)},
		{"go1.25.0", base},
	}
	if len(runs) != len(want) {
		t.Fatalf("Runs returned %d runs, want %d", len(runs), len(want))
	}
	for i, w := range want {
		got := runs[i].Result
		if got.GoVersion != w.goVersion || !got.Started.Equal(w.started) {
			t.Errorf("run %d = %s at %v, want %s at %v", i, got.GoVersion, got.Started, w.goVersion, w.started)
		}
	}

	all, err := s.Runs(ctx, "")
	if err != nil {
		t.Fatalf("Runs(all): %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Runs(all) returned %d runs, want 5", len(all))
	}
	if all[0].Result.Test != "SB" {
		t.Errorf("oldest toolchain run = %s, want SB", all[0].Result.Test)
	}
}

func TestTotals(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	base := time.Unix(1700000000, 0)

	runs := []*litmus.Result{
		result("SB", "go1.24.0", base,
			litmus.Observation{Outcome: "0:r0=1; 1:r1=0", Count: 6},
			litmus.Observation{Outcome: "0:r0=0; 1:r1=0", Count: 4, Interesting: true}),
		result("SB", "go1.25.0", base.Add(time.Hour),
			litmus.Observation{Outcome: "0:r0=0; 1:r1=0", Count: 5, Interesting: true}),
		result("CoRR", "go1.24.0", base,
			litmus.Observation{Outcome: "1:r0=1; 1:r1=1", Count: 7}),
	}
	for _, r := range runs {
		if _, err := s.Record(ctx, r); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	totals, err := s.Totals(ctx, "")
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("Totals returned %d results, want 2", len(totals))
	}
	if totals[0].Test != "CoRR" || totals[1].Test != "SB" {
		t.Fatalf("Totals order = %s, %s; want CoRR, SB", totals[0].Test, totals[1].Test)
	}

	sb := totals[1]
	if sb.Iterations != 15 || sb.Interesting != 9 {
		t.Errorf("SB totals = %d iterations, %d interesting; want 15, 9", sb.Iterations, sb.Interesting)
	}
	if sb.Histogram[0].Outcome != "0:r0=0; 1:r1=0" || sb.Histogram[0].Count != 9 {
		t.Errorf("SB top outcome = %+v, want 9 x 0:r0=0; 1:r1=0", sb.Histogram[0])
	}
	if !sb.Started.Equal(base) {
		t.Errorf("SB Started = %v, want %v", sb.Started, base)
	}
	if sb.GoVersion != MixedVersions {
		t.Errorf("SB GoVersion = %q, want %q", sb.GoVersion, MixedVersions)
	}
	if totals[0].GoVersion != "go1.24.0" {
		t.Errorf("CoRR GoVersion = %q, want go1.24.0", totals[0].GoVersion)
	}
}

func TestTotalsSameToolchain(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	base := time.Unix(1700000000, 0)
	obs := litmus.Observation{Outcome: "1:r0=1; 1:r1=1", Count: 3}

	for i := 0; i < 2; i++ {
		if _, err := s.Record(ctx, result("CoRR", "go1.24.2", base.Add(time.Duration(i)*time.Hour), obs)); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	totals, err := s.Totals(ctx, "CoRR")
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}
	if len(totals) != 1 {
		t.Fatalf("Totals returned %d results, want 1", len(totals))
	}
	if totals[0].GoVersion != "go1.24.2" {
		t.Errorf("GoVersion = %q, want go1.24.2", totals[0].GoVersion)
	}
	if totals[0].Iterations != 6 {
		t.Errorf("Iterations = %d, want 6", totals[0].Iterations)
	}
}

func TestOpenReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	ctx := context.Background()

	rw, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := rw.Record(ctx, result("SB", "go1.24.0", time.Unix(1700000000, 0),
		litmus.Observation{Outcome: "0:r0=1; 1:r1=1", Count: 2})); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := rw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	ro, err := OpenReadOnly(path)
	if err != nil {
		t.Fatalf("OpenReadOnly: %v", err)
	}
	defer func() { _ = ro.Close() }()

	runs, err := ro.Runs(ctx, "SB")
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("Runs returned %d runs, want 1", len(runs))
	}
	if _, err := ro.Record(ctx, result("SB", "go1.24.0", time.Now())); err == nil {
		t.Error("Record on a read-only store succeeded")
	}
}

func TestOpenReadOnlyMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.db")

	if _, err := OpenReadOnly(path); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("OpenReadOnly(missing) = %v, want fs.ErrNotExist", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("OpenReadOnly created %s", path)
	}
}

func TestClosed(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if err := s.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close = %v, want ErrClosed", err)
	}
	if _, err := s.Record(context.Background(), &litmus.Result{}); !errors.Is(err, ErrClosed) {
		t.Errorf("Record after Close = %v, want ErrClosed", err)
	}
	if _, err := s.Runs(context.Background(), ""); !errors.Is(err, ErrClosed) {
		t.Errorf("Runs after Close = %v, want ErrClosed", err)
	}
}

func TestOpenBadPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "dir", "runs.db"))
	if err == nil {
		t.Fatal("Open in a missing directory succeeded")
	}
}

func TestToolchainVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"go1.24.3", "v1.24.3"},
		{"go1.24", "v1.24.0"},
		{"go1.25rc1", "v1.25.0-rc1"},
		{"go1.21beta2", "v1.21.0-beta2"},
		{"go1.24.1 X:nocoverageredesign", "v1.24.1"},
		{"devel go1.25-abcdef", ""},
		{"", ""},
		{"go", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ToolchainVersion(tt.in); got != tt.want {
				t.Errorf("ToolchainVersion(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAtLeast(t *testing.T) {
	tests := []struct {
		v    string
		min  string
		want bool
	}{
		{"go1.24.0", "v1.24.0", true},
		{"go1.24", "v1.24.0", true},
		{"go1.25.1", "v1.24.0", true},
		{"go1.23.9", "v1.24.0", false},
		{"go1.24rc1", "v1.24.0", false},
		{"devel go1.26-1234", "v1.24.0", true},
		{"weird", "v1.24.0", false},
	}

	for _, tt := range tests {
		if got := AtLeast(tt.v, tt.min); got != tt.want {
			t.Errorf("AtLeast(%q, %q) = %v, want %v", tt.v, tt.min, got, tt.want)
		}
	}
}
