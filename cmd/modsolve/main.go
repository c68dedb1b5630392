// Command modsolve parses a project manifest, runs the module placement
// solver, and optionally drives external compilers to build the
// resulting module artifacts.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
