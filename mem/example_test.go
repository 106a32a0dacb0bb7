package mem_test

import (
	"fmt"

	"github.com/kolkov/litmus/mem"
)

// Example demonstrates relaxed accesses on a single goroutine.
func Example() {
	x := mem.NewCell(0)
	x.WriteOnce(1)
	fmt.Println(x.ReadOnce())

	// Output:
	// 1
}

// Example_messagePassing shows a release store paired with a fenced read.
func Example_messagePassing() {
	var buf, flag mem.Cell
	done := make(chan uintptr)

	go func() {
		for flag.ReadOnce() == 0 {
		}
		mem.Fence()
		done <- buf.ReadOnce()
	}()

	buf.WriteOnce(42)
	mem.ReleaseStore(&flag, 1)
	fmt.Println(<-done)

	// Output:
	// 42
}
