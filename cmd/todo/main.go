// Package main is the entry point for the todo CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	container, err := app.New(app.Options{TasksPath: tasksFileArg(args)})
	if err != nil {
		// Help and version still work when the config or data dir is unusable.
		if canRunWithoutContainer(args) {
			rootCmd := cli.NewRootCommand(nil, version)
			rootCmd.SetArgs(args)
			return rootCmd.Execute()
		}
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	rootCmd := cli.NewRootCommand(container, version)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// tasksFileArg returns the value of the global --file flag, which must be
// known before the container is built. Every other flag is ignored.
func tasksFileArg(args []string) string {
	fs := pflag.NewFlagSet("todo", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.BoolP("help", "h", false, "")
	file := fs.String(cli.FileFlag, "", "")
	_ = fs.Parse(args)
	return *file
}

func canRunWithoutContainer(args []string) bool {
	if len(args) == 0 {
		return false
	}
	if args[0] == "help" {
		return true
	}
	for _, arg := range args {
		switch arg {
		case "--version", "-v", "--help", "-h":
			return true
		}
	}
	return false
}
