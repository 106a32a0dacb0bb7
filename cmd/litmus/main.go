// Package main implements the litmus CLI tool.
//
// The litmus tool runs the litmus tests of the scenario catalog on the
// current machine and reports the outcome histograms. It works by:
//
//  1. Looking up the requested tests in the catalog
//  2. Running each test many times on locked (optionally pinned) threads
//  3. Printing a litmus7-style report or JSON
//  4. Optionally recording every run in a SQLite history database
//
// Usage:
//
//	litmus list                       # List the catalog
//	litmus run MP SB                  # Run selected tests
//	litmus run -n 1000000 -db runs.db # Run everything, record history
//	litmus history -db runs.db MP     # Show recorded runs of MP
//
// A forbidden outcome is a correctness violation of the primitives; run
// exits with status 1 when one is observed.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	command := os.Args[1]

	switch command {
	case "list":
		listTests(os.Stdout)
	case "run":
		os.Exit(runCommand(ctx, os.Args[2:]))
	case "history":
		os.Exit(historyCommand(ctx, os.Args[2:]))
	case "version", "--version", "-v":
		writeVersion(os.Stdout)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`litmus - weak memory-model litmus tests

USAGE:
    litmus <command> [arguments]

COMMANDS:
    list       List the litmus tests of the catalog
    run        Run litmus tests and report outcome histograms
    history    Show runs recorded in a history database
    version    Show version and encoding information
    help       Show this help message

RUN FLAGS:
    -n N       Iterations per test (default 10000)
    -pin       Pin every test thread to its own CPU (linux)
    -stop      Stop a test at its first forbidden outcome
    -json      Print results as JSON, one object per line
    -db PATH   Record runs in the SQLite database at PATH

EXAMPLES:
    # Run every test of the catalog
    litmus run

    # Hunt for the store-buffering reordering
    litmus run -n 1000000 -pin SB

    # Accumulate runs across invocations and toolchains
    litmus run -db runs.db MP
    litmus history -db runs.db MP

ABOUT:
    Forbidden outcomes (marked with *) are bugs in the primitives or the
    toolchain; run exits with status 1 if any is observed. Interesting
    outcomes (marked with :>) are allowed but only appear on weakly
    ordered hardware or with store buffering. Not observing them is not
    an error: stress-running is a heuristic, not a proof.

`)
}
