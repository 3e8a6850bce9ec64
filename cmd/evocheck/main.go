// path: cmd/evocheck/main.go
// Command evocheck inspects the move-evolution rule table and checks
// creatures described in YAML case files.
package main

import (
	"errors"
	"fmt"
	"os"
)

const (
	exitSuccess = 0
	exitInvalid = 1
	exitError   = 2
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		if errors.Is(err, errVerdictInvalid) {
			os.Exit(exitInvalid)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitError)
	}
	os.Exit(exitSuccess)
}
