// Package main is the entry point for the lograft CLI.
package main

import "gooze.dev/pkg/lograft/cmd"

func main() {
	cmd.Execute()
}
