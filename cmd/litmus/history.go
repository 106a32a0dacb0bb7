// history.go implements the 'litmus history' command.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/kolkov/litmus/internal/store"
	"github.com/kolkov/litmus/litmus"
)

// errNoDatabase is returned when history is called without -db.
var errNoDatabase = errors.New("history: -db is required")

// historyConfig holds the parsed arguments of 'litmus history'.
type historyConfig struct {
	dbPath string
	test   string
}

// historyCommand implements the 'litmus history' command and returns
// the exit status.
//
// Example:
//
//	litmus history -db runs.db
//	litmus history -db runs.db SB
func historyCommand(ctx context.Context, args []string) int {
	config, err := parseHistoryArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	db, err := store.OpenReadOnly(config.dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer func() { _ = db.Close() }()

	if err := writeHistory(ctx, os.Stdout, db, config.test); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseHistoryArgs(args []string) (*historyConfig, error) {
	config := &historyConfig{}

	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&config.dbPath, "db", "", "history database")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}

	if config.dbPath == "" {
		return nil, errNoDatabase
	}
	switch fs.NArg() {
	case 0:
	case 1:
		config.test = fs.Arg(0)
	default:
		return nil, fmt.Errorf("history: at most one test name, got %d", fs.NArg())
	}
	return config, nil
}

// writeHistory prints one line per stored run, then the merged report of
// every test.
func writeHistory(ctx context.Context, w io.Writer, db *store.Store, test string) error {
	runs, err := db.Runs(ctx, test)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "no runs recorded")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTEST\tARCH\tGO\tSTARTED\tITERATIONS\tFORBIDDEN\tINTERESTING")
	for _, run := range runs {
		res := run.Result
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%d\t%d\n",
			run.ID, res.Test, res.Arch, res.GoVersion, res.Started.UTC().Format(time.RFC3339),
			res.Iterations, res.Forbidden, res.Interesting)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	totals, err := db.Totals(ctx, test)
	if err != nil {
		return err
	}
	for _, total := range totals {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		if err := litmus.WriteReport(w, total); err != nil {
			return err
		}
	}
	return nil
}
