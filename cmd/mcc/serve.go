package main

import (
	"fmt"
	"os"

	"mcc/internal/compileserver"
	"mcc/internal/driver"
)

// runServe blocks, running the compile daemon until it fails or is killed.
// addr defaults to :4747; override with -o (reused here as the listen
// address since serve never writes a file the way the other commands do).
func runServe(flags *driver.CommonFlags) error {
	addr := flags.Output
	if addr == "" {
		addr = ":4747"
	}
	fmt.Fprintf(os.Stderr, "mcc serve: listening on %s\n", addr)
	return compileserver.New(addr).ListenAndServe()
}
