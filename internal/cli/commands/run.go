package commands

import (
	"errors"
	"fmt"

	"bbunit/internal/config"
	"bbunit/internal/execution"
	"bbunit/internal/storage"
	"bbunit/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ErrTestsFailed is returned by run when at least one test failed.
var ErrTestsFailed = errors.New("tests failed")

// RunCommand handles the run command
type RunCommand struct {
	config      *config.Config
	suite       SuiteFunc
	newExecutor execution.NewExecutorFunc
	storage     storage.Storage
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	suite SuiteFunc,
	newExecutor execution.NewExecutorFunc,
	st storage.Storage,
) *RunCommand {
	return &RunCommand{
		config:      cfg,
		suite:       suite,
		newExecutor: newExecutor,
		storage:     st,
	}
}

// Execute runs the command. The exit status depends only on the test
// results; a report that cannot be saved is reported as a warning.
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	reg := rc.suite()
	if rc.config.Flags.NameFilter != "" {
		reg = reg.Filter(rc.config.Flags.NameFilter)
	}

	out := cmd.ErrOrStderr()
	sink := ui.NewConsoleSink(out, rc.config.MessagePrefix, rc.config.NoColor)
	executor := rc.newExecutor(sink, execution.Options{
		Timing:   rc.config.Timing,
		FailFast: rc.config.FailFast,
	})
	if rc.config.Flags.Progress {
		executor.SetProgress(ui.NewProgressBar(reg.Count(), out))
	}

	report := executor.Run(reg)

	if rc.config.GetOutputPath() != "" {
		if err := rc.storage.Save(report); err != nil {
			fmt.Fprintln(out, color.YellowString("Warning: failed to save run report: %v", err))
		}
	}

	if !report.Passed() {
		return fmt.Errorf("%w: %d of %d", ErrTestsFailed, report.Failed, report.Run)
	}
	return nil
}
