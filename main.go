package main

import (
	"fmt"
	"os"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/cmd"
)

// main - is the entry point of the application. Config and logger are set up by the root command.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])

	if err := root.Execute(); err != nil {
		return fmt.Errorf("tictactoe failed: %w", err)
	}

	return nil
}
