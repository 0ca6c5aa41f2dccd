package commands

import (
	"bbunit/internal/config"
	"bbunit/internal/ui"

	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config *config.Config
	suite  SuiteFunc
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, suite SuiteFunc) *ListCommand {
	return &ListCommand{
		config: cfg,
		suite:  suite,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	reg := lc.suite().Filter(lc.config.Flags.NameFilter)
	ui.NewFormatter(cmd.OutOrStdout()).PrintTestList(reg.Names())
	return nil
}
