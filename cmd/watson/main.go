// Package main provides the watson CLI tool.
//
// Usage:
//
//	watson [flags] <service> <command> [args]
//
// Services:
//
//	tts      - Text to Speech service
//	stt      - Speech to Text service
//	config   - Configuration management
//
// Configuration:
//
//	The CLI stores configuration in ~/.watson/
//	Use 'watson config' commands to manage contexts.
package main

import (
	"fmt"
	"os"

	"github.com/kawaki-san/ibm-watson-go/cmd/watson/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
