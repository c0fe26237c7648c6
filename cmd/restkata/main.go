// Package main is the entry point for the restkata CLI.
// Its sole responsibility is dispatching to the subcommands; dependency
// wiring happens in serve.go. No business logic belongs here.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		// Cobra has already printed the error.
		os.Exit(1)
	}
}
