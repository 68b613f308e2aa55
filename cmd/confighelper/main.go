// FILE: lixenwraith/confighelper/cmd/confighelper/main.go

// confighelper reads and writes application settings files and JSON configuration.
package main

import (
	"fmt"
	"os"
)

var (
	run    = func() error { return NewRootCmd(os.Stdout, os.Stderr).Execute() }
	osExit = os.Exit
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		osExit(1)
	}
}
