package rcu_test

import (
	"fmt"

	"github.com/kolkov/litmus/rcu"
)

type config struct {
	limit int
}

// Example demonstrates publishing a value and reading it back.
func Example() {
	var cfg rcu.Pointer[config]

	if cfg.Dereference() == nil {
		fmt.Println("not published")
	}

	cfg.Publish(config{limit: 10})
	fmt.Println(cfg.Dereference().limit)

	// Output:
	// not published
	// 10
}
