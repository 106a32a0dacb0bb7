// run.go implements the 'litmus run' command.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sugawarayuuta/sonnet"

	"github.com/kolkov/litmus/internal/store"
	"github.com/kolkov/litmus/litmus"
	"github.com/kolkov/litmus/litmus/scenario"
)

// runConfig holds the parsed arguments of 'litmus run'.
type runConfig struct {
	litmus.Config

	// names are the tests to run; empty means the whole catalog.
	names []string

	// json selects JSON output instead of text reports.
	json bool

	// dbPath is the history database; empty disables recording.
	dbPath string
}

// runCommand implements the 'litmus run' command and returns the exit
// status.
//
// Example:
//
//	litmus run
//	litmus run -n 100000 -pin MP SB
//	litmus run -json -db runs.db CoRR
func runCommand(ctx context.Context, args []string) int {
	config, err := parseRunArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	tests, err := selectTests(config.names)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var db *store.Store
	if config.dbPath != "" {
		db, err = store.Open(config.dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer func() { _ = db.Close() }()
	}

	forbidden, err := runTests(ctx, tests, config, db, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if forbidden > 0 {
		fmt.Fprintf(os.Stderr, "FAIL: %d test(s) observed forbidden outcomes\n", forbidden)
		return 1
	}
	return 0
}

// parseRunArgs parses the flags of 'litmus run'. Remaining arguments
// are test names.
func parseRunArgs(args []string) (*runConfig, error) {
	config := &runConfig{Config: litmus.DefaultConfig()}

	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&config.Iterations, "n", litmus.DefaultIterations, "iterations per test")
	fs.BoolVar(&config.Pin, "pin", false, "pin test threads to CPUs")
	fs.BoolVar(&config.StopOnForbidden, "stop", false, "stop at the first forbidden outcome")
	fs.BoolVar(&config.json, "json", false, "print JSON")
	fs.StringVar(&config.dbPath, "db", "", "history database")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}
	if config.Iterations <= 0 {
		return nil, fmt.Errorf("run: -n must be positive, got %d", config.Iterations)
	}

	config.names = fs.Args()
	return config, nil
}

// selectTests resolves names against the catalog. No names selects the
// whole catalog.
func selectTests(names []string) ([]*litmus.Test, error) {
	if len(names) == 0 {
		return scenario.All(), nil
	}

	tests := make([]*litmus.Test, 0, len(names))
	for _, name := range names {
		t, err := scenario.Lookup(name)
		if err != nil {
			return nil, err
		}
		tests = append(tests, t)
	}
	return tests, nil
}

// runTests runs every test, writes its report to w and records it in
// db when db is not nil. It returns the number of tests that observed a
// forbidden outcome.
//
// A cancelled ctx stops after reporting the partial result of the
// current test.
func runTests(ctx context.Context, tests []*litmus.Test, config *runConfig, db *store.Store, w io.Writer) (int, error) {
	failed := 0
	for _, t := range tests {
		res, runErr := litmus.Run(ctx, t, config.Config)
		if res == nil {
			return failed, runErr
		}

		if err := writeResult(w, res, config.json); err != nil {
			return failed, err
		}
		if db != nil {
			// Partial results of a cancelled run are still recorded.
			if _, err := db.Record(context.WithoutCancel(ctx), res); err != nil {
				return failed, err
			}
		}
		if res.Err() != nil {
			failed++
		}
		if runErr != nil {
			return failed, runErr
		}
	}
	return failed, nil
}

func writeResult(w io.Writer, res *litmus.Result, asJSON bool) error {
	if !asJSON {
		if err := litmus.WriteReport(w, res); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	}

	data, err := sonnet.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode %s: %w", res.Test, err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
