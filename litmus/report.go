// Copyright 2025 The racedetector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package litmus

import (
	"fmt"
	"io"
)

// Histogram line markers.
const (
	markForbidden   = "*>"
	markInteresting = ":>"
	markPlain       = ": "
)

// WriteReport writes a human-readable report of res to w.
//
// Example output:
//
//	Test CoRR on amd64 (TSO), go1.24.3
//	Histogram (3 states)
//	      6120 : 1:r0=0; 1:r1=0
//	      3790 : 1:r0=1; 1:r1=1
//	        90 : 1:r0=0; 1:r1=1
//	Ok, no forbidden outcome in 10000 iterations
//	Observation CoRR Never 0 10000
//	Time CoRR 0.041s
//
// Forbidden outcomes are marked "*>", interesting ones ":>".
func WriteReport(w io.Writer, res *Result) error {
	rw := &reportWriter{w: w}

	rw.printf("Test %s on %s (%s), %s\n", res.Test, res.Arch, res.Ordering, res.GoVersion)
	rw.printf("Histogram (%d states)\n", len(res.Histogram))
	for _, obs := range res.Histogram {
		mark := markPlain
		switch {
		case obs.Forbidden:
			mark = markForbidden
		case obs.Interesting:
			mark = markInteresting
		}
		rw.printf("%10d %s%s\n", obs.Count, mark, obs.Outcome)
	}

	if res.Forbidden > 0 {
		rw.printf("FORBIDDEN outcome observed %d times in %d iterations\n", res.Forbidden, res.Iterations)
	} else {
		rw.printf("Ok, no forbidden outcome in %d iterations\n", res.Iterations)
	}
	if res.Interesting > 0 {
		rw.printf("Weak outcome observed %d times\n", res.Interesting)
	}

	target := res.targets()
	rw.printf("Observation %s %s %d %d\n", res.Test, res.Verdict(), target, res.Iterations-target)
	rw.printf("Time %s %.3fs\n", res.Test, res.Elapsed.Seconds())
	return rw.err
}

// reportWriter remembers the first write error so WriteReport can
// format unconditionally.
type reportWriter struct {
	w   io.Writer
	err error
}

func (rw *reportWriter) printf(format string, args ...any) {
	if rw.err != nil {
		return
	}
	_, rw.err = fmt.Fprintf(rw.w, format, args...)
}
