// list.go implements the 'litmus list' command.
package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/kolkov/litmus/litmus/scenario"
)

// listTests prints the catalog names with their one-line docs.
func listTests(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, t := range scenario.All() {
		fmt.Fprintf(tw, "%s\t%s\n", t.Name, t.Doc)
	}
	_ = tw.Flush()
}
