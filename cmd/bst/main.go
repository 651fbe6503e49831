package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/Osama3511/Binary-Search-Tree/internal/cmd"
)

// guard runs f and returns the exit status, 1 if f panicked.
func guard(f func()) (status int) {
	defer func() {
		if r := recover(); r != nil {
			pterm.Error.Printfln("bst: unhandled panic: %v", r)
			status = 1
		}
	}()

	f()
	return 0
}

func main() {
	os.Exit(guard(cmd.Execute))
}
