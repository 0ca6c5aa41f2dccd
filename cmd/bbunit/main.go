package main

import (
	"errors"
	"fmt"
	"os"

	"bbunit/internal/cli"
	"bbunit/internal/cli/commands"
	"bbunit/internal/config"
	"bbunit/internal/exitcodes"
	"bbunit/internal/registry"
	"bbunit/internal/selftest"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], builtinSuite))
}

// builtinSuite gives every invocation a fresh registry
func builtinSuite() *registry.Registry {
	b := registry.NewBuilder()
	selftest.Register(b)
	return b.Build()
}

func run(args []string, suite commands.SuiteFunc) int {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "bbunit",
		Short:         "Run the unit-test suite",
		Long:          `Runs every registered unit test in registration order and exits non-zero if any of them failed.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)

	// Create initial config with defaults; the environment is applied when a command runs
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	cmds := commands.NewCommands(cfg, suite)
	cmds.Register(rootCmd, &flags, cfg)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, commands.ErrTestsFailed) {
			return exitcodes.TestFailure
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitcodes.RuntimeErr
	}
	return exitcodes.Success
}
