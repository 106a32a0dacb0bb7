// version.go implements the 'litmus version' command.
package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/kolkov/litmus/internal/store"
	"github.com/kolkov/litmus/mem"
)

// minGoVersion is the oldest toolchain the assembly is known to build
// and behave with.
const minGoVersion = "v1.24.0"

// writeVersion prints the version, the compiled-in encodings and the
// toolchain.
func writeVersion(w io.Writer) {
	info := mem.GetInfo()
	fmt.Fprintf(w, "litmus version %s\n", info.Version)
	fmt.Fprintf(w, "  arch:     %s (%s)\n", info.Arch, info.Ordering)
	fmt.Fprintf(w, "  fence:    %s\n", info.FenceEncoding)
	fmt.Fprintf(w, "  release:  %s\n", info.ReleaseEncoding)
	fmt.Fprintf(w, "  go:       %s\n", runtime.Version())

	if !store.AtLeast(runtime.Version(), minGoVersion) {
		fmt.Fprintf(w, "WARNING: built with %s, want %s or newer\n", runtime.Version(), minGoVersion)
	}
}
