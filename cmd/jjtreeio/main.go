// Package main is the entry point for jjtreeio, which binds each grammar
// given on the command line to a file session and writes its annotated
// copy next to the configured output directory.
package main

import (
	"io"
	"os"

	"github.com/fatih/color"
)

func main() {
	if code := run(os.Args[1:], os.Stdout, os.Stderr); code != 0 {
		os.Exit(code)
	}
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		printError(stderr, err)
		return 1
	}
	return 0
}

func printError(w io.Writer, err error) {
	_, _ = color.New(color.FgRed, color.Bold).Fprint(w, "Error: ")
	_, _ = io.WriteString(w, err.Error()+"\n")
}
