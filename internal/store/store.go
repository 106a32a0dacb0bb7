// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store keeps a history of litmus runs in a SQLite database.
//
// Rare reorderings only show up after many iterations, often spread
// over many invocations, toolchains and machines. The store records
// every run so that histograms can be merged afterwards.
//
// Layout: one row per run; the histogram is stored as a JSON array of
// litmus.Observation.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3" // database/sql driver
	"github.com/sugawarayuuta/sonnet"
	"golang.org/x/mod/semver"

	"github.com/kolkov/litmus/litmus"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	test        TEXT    NOT NULL,
	arch        TEXT    NOT NULL,
	ordering    TEXT    NOT NULL,
	go_version  TEXT    NOT NULL,
	started_at  INTEGER NOT NULL,
	iterations  INTEGER NOT NULL,
	forbidden   INTEGER NOT NULL,
	interesting INTEGER NOT NULL,
	elapsed_ns  INTEGER NOT NULL,
	histogram   TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_test ON runs (test);
`

// MixedVersions is the GoVersion of a total merged from runs of more
// than one toolchain.
const MixedVersions = "mixed"

// ErrClosed is returned by operations on a closed Store.
var ErrClosed = errors.New("store: closed")

// Store is a run history database.
//
// Thread Safety: Record, Runs and Totals are safe for concurrent use.
// Close must not race with them.
type Store struct {
	db *sql.DB
}

// Run is one stored litmus run.
type Run struct {
	ID     int64
	Result *litmus.Result
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: create schema in %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// OpenReadOnly opens the existing database at path without creating or
// modifying it. A missing file yields an error wrapping fs.ErrNotExist.
func OpenReadOnly(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return ErrClosed
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Record stores res and returns its run ID.
func (s *Store) Record(ctx context.Context, res *litmus.Result) (int64, error) {
	if s.db == nil {
		return 0, ErrClosed
	}

	hist, err := sonnet.Marshal(res.Histogram)
	if err != nil {
		return 0, fmt.Errorf("store: encode histogram of %s: %w", res.Test, err)
	}

	r, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (test, arch, ordering, go_version, started_at, iterations,
			forbidden, interesting, elapsed_ns, histogram)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.Test, res.Arch, res.Ordering, res.GoVersion, res.Started.UnixNano(), res.Iterations,
		res.Forbidden, res.Interesting, int64(res.Elapsed), string(hist))
	if err != nil {
		return 0, fmt.Errorf("store: record %s: %w", res.Test, err)
	}
	return r.LastInsertId()
}

// Runs returns the stored runs of test (all tests if test is empty),
// ordered by Go toolchain version and then by start time.
func (s *Store) Runs(ctx context.Context, test string) ([]Run, error) {
	if s.db == nil {
		return nil, ErrClosed
	}

	query := `SELECT id, test, arch, ordering, go_version, started_at, iterations,
		forbidden, interesting, elapsed_ns, histogram FROM runs`
	var args []any
	if test != "" {
		query += ` WHERE test = ?`
		args = append(args, test)
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("store: query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: read runs: %w", err)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		a, b := runs[i].Result, runs[j].Result
		if c := semver.Compare(ToolchainVersion(a.GoVersion), ToolchainVersion(b.GoVersion)); c != 0 {
			return c < 0
		}
		return a.Started.Before(b.Started)
	})
	return runs, nil
}

// Totals merges the stored runs per test and arch. The results are
// ordered by test name, then arch. A total keeps the toolchain version
// of its runs if they agree and is MixedVersions otherwise.
func (s *Store) Totals(ctx context.Context, test string) ([]*litmus.Result, error) {
	runs, err := s.Runs(ctx, test)
	if err != nil {
		return nil, err
	}

	type key struct{ test, arch string }
	merged := make(map[key]*litmus.Result)
	var keys []key
	for _, run := range runs {
		k := key{run.Result.Test, run.Result.Arch}
		if total, ok := merged[k]; ok {
			if total.GoVersion != run.Result.GoVersion {
				total.GoVersion = MixedVersions
			}
			total.Merge(run.Result)
			continue
		}
		merged[k] = run.Result
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].test != keys[j].test {
			return keys[i].test < keys[j].test
		}
		return keys[i].arch < keys[j].arch
	})

	totals := make([]*litmus.Result, 0, len(keys))
	for _, k := range keys {
		totals = append(totals, merged[k])
	}
	return totals, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		run       Run
		res       litmus.Result
		startedNs int64
		elapsedNs int64
		hist      string
	)
	err := sc.Scan(&run.ID, &res.Test, &res.Arch, &res.Ordering, &res.GoVersion, &startedNs,
		&res.Iterations, &res.Forbidden, &res.Interesting, &elapsedNs, &hist)
	if err != nil {
		return Run{}, fmt.Errorf("store: scan run: %w", err)
	}
	if err := sonnet.Unmarshal([]byte(hist), &res.Histogram); err != nil {
		return Run{}, fmt.Errorf("store: decode histogram of run %d: %w", run.ID, err)
	}

	res.Started = time.Unix(0, startedNs)
	res.Elapsed = time.Duration(elapsedNs)
	run.Result = &res
	return run, nil
}
