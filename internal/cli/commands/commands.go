package commands

import (
	"bbunit/internal/cli"
	"bbunit/internal/config"
	"bbunit/internal/execution"
	"bbunit/internal/registry"
	"bbunit/internal/storage"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// SuiteFunc builds a fresh registry for one invocation
type SuiteFunc func() *registry.Registry

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, suite SuiteFunc) *Commands {
	// Initialize dependencies
	jsonStorage := storage.NewJSONStorage(cfg)

	return &Commands{
		Run:  NewRunCommand(cfg, suite, execution.NewExecutor, jsonStorage),
		List: NewListCommand(cfg, suite),
	}
}

// Register registers all commands with cobra. The root command itself
// behaves like run.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Environment is applied only when a command runs; help and version skip it
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return cfg.LoadEnv(config.DefaultEnvFile)
	}

	applyFlags := func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		cfg.Apply(flags.ToConfigFlags())
		if cfg.NoColor {
			color.NoColor = true
		}
		return nil
	}

	rootCmd.RunE = c.Run.Execute
	rootCmd.PreRunE = applyFlags
	addRunFlags(rootCmd, flags)

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the unit-test suite",
		Long:    "Execute every registered test in registration order and report a summary",
		Args:    cobra.NoArgs,
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	addRunFlags(runCmd, flags)
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List registered tests",
		Long:    "Print the registered tests in execution order without running them",
		Args:    cobra.NoArgs,
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g., 'timeval_*' or '*registry*')")
	listCmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	rootCmd.AddCommand(listCmd)
}

func addRunFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().BoolVar(&flags.Timing, "timing", false, "Report elapsed wall-clock time for the whole run")
	cmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first test failure")
	cmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g., 'timeval_*' or '*registry*')")
	cmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar while tests run")
	cmd.Flags().StringVarP(&flags.OutputPath, "output", "o", "", "Write a JSON report of the run to this file")
	cmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
}
