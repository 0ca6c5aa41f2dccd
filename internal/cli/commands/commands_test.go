package commands

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"bbunit/internal/cli"
	"bbunit/internal/config"
	"bbunit/internal/domain"
	"bbunit/internal/execution"
	"bbunit/internal/registry"
	"bbunit/internal/storage"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoot(suite SuiteFunc, args ...string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	rootCmd := &cobra.Command{
		Use:           "bbunit",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cfg := config.New()
	var flags cli.Flags
	NewCommands(cfg, suite).Register(rootCmd, &flags, cfg)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	return rootCmd, &stdout, &stderr
}

func suiteOf(fails ...bool) SuiteFunc {
	names := []string{"A", "B", "C", "D"}
	return func() *registry.Registry {
		b := registry.NewBuilder()
		for i, f := range fails {
			f := f
			b.Add(names[i], func(t *domain.T) {
				if f {
					t.Fail()
				}
			})
		}
		return b.Build()
	}
}

func TestRun_AllPass(t *testing.T) {
	rootCmd, _, stderr := newRoot(suiteOf(false, false), "run", "--no-color")

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t,
		"unit: Running 2 test(s)...\n"+
			"unit: Case: [A]\n"+
			"unit: Case: [B]\n"+
			"unit: All tests passed\n",
		stderr.String())
}

func TestRun_DefaultCommandRuns(t *testing.T) {
	rootCmd, _, stderr := newRoot(suiteOf(), "--no-color")

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, stderr.String(), "unit: Running 0 test(s)...")
	assert.Contains(t, stderr.String(), "unit: All tests passed")
}

func TestRun_FailureReturnsSentinel(t *testing.T) {
	rootCmd, _, stderr := newRoot(suiteOf(false, true, false), "run", "--no-color")

	err := rootCmd.Execute()
	require.ErrorIs(t, err, ErrTestsFailed)
	assert.Contains(t, stderr.String(), "unit: [ERROR] [B]: TEST FAILED\n")
	assert.Contains(t, stderr.String(), "unit: [ERROR] 1 test(s) FAILED\n")
}

func TestRun_FilterAndTiming(t *testing.T) {
	rootCmd, _, stderr := newRoot(suiteOf(true, false, true), "run", "--no-color", "--timing", "-f", "B")

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, stderr.String(), "unit: Running 1 test(s)...")
	assert.Contains(t, stderr.String(), "unit: Elapsed time ")
	assert.NotContains(t, stderr.String(), "Case: [A]")
}

func TestRun_FailFast(t *testing.T) {
	rootCmd, _, stderr := newRoot(suiteOf(true, false), "run", "--no-color", "--fail-fast")

	require.ErrorIs(t, rootCmd.Execute(), ErrTestsFailed)
	assert.NotContains(t, stderr.String(), "Case: [B]")
}

func TestRun_WritesReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.json")
	rootCmd, _, _ := newRoot(suiteOf(false, true), "run", "--no-color", "-o", path)

	require.ErrorIs(t, rootCmd.Execute(), ErrTestsFailed)

	out, err := storage.NewJSONStorage(&config.Config{OutputPath: path}).Load()
	require.NoError(t, err)
	assert.Equal(t, 2, out.Meta.Run)
	assert.Equal(t, 1, out.Meta.Failed)
	require.Len(t, out.Details, 2)
	assert.True(t, out.Details[1].Failed)
}

func TestRun_RejectsArguments(t *testing.T) {
	rootCmd, _, _ := newRoot(suiteOf(), "run", "extra")
	assert.Error(t, rootCmd.Execute())
}

func TestList(t *testing.T) {
	rootCmd, stdout, _ := newRoot(suiteOf(false, false, false), "list", "--no-color")

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "Found 3 registered test(s):\n├── A\n├── B\n└── C\n", stdout.String())
}

type stubExecutor struct {
	opts     execution.Options
	progress execution.Progress
	report   domain.RunReport
}

func (e *stubExecutor) SetProgress(progress execution.Progress) { e.progress = progress }

func (e *stubExecutor) Run(q execution.Queue) domain.RunReport { return e.report }

type failingStorage struct {
	saved int
}

func (s *failingStorage) Save(domain.RunReport) error {
	s.saved++
	return errors.New("disk full")
}

func (s *failingStorage) Load() (*domain.RunResultsOutput, error) {
	return nil, errors.New("disk full")
}

func executeRun(t *testing.T, rc *RunCommand) (string, error) {
	t.Helper()
	var stderr bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetErr(&stderr)
	err := rc.Execute(cmd, nil)
	return stderr.String(), err
}

func TestRunCommand_UsesInjectedExecutor(t *testing.T) {
	cfg := config.New()
	cfg.Apply(config.Flags{Timing: true, FailFast: true, Progress: true, NoColor: true})

	stub := &stubExecutor{report: domain.RunReport{Run: 4, Failed: 2}}
	rc := NewRunCommand(cfg, suiteOf(false), func(sink execution.Sink, opts execution.Options) execution.Executor {
		stub.opts = opts
		return stub
	}, &failingStorage{})

	_, err := executeRun(t, rc)

	require.ErrorIs(t, err, ErrTestsFailed)
	assert.EqualError(t, err, "tests failed: 2 of 4")
	assert.True(t, stub.opts.Timing)
	assert.True(t, stub.opts.FailFast)
	assert.NotNil(t, stub.progress)
}

func TestRunCommand_SaveFailureKeepsTestStatus(t *testing.T) {
	tests := []struct {
		name    string
		report  domain.RunReport
		wantErr bool
	}{
		{name: "passing run", report: domain.RunReport{Run: 2}},
		{name: "failing run", report: domain.RunReport{Run: 2, Failed: 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Apply(config.Flags{OutputPath: "report.json", NoColor: true})
			st := &failingStorage{}
			stub := &stubExecutor{report: tt.report}
			rc := NewRunCommand(cfg, suiteOf(), func(execution.Sink, execution.Options) execution.Executor {
				return stub
			}, st)

			stderr, err := executeRun(t, rc)

			assert.Equal(t, 1, st.saved)
			assert.Contains(t, stderr, "Warning: failed to save run report: disk full")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrTestsFailed)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRunCommand_NoOutputSkipsStorage(t *testing.T) {
	st := &failingStorage{}
	rc := NewRunCommand(config.New(), suiteOf(false), execution.NewExecutor, st)

	_, err := executeRun(t, rc)

	require.NoError(t, err)
	assert.Zero(t, st.saved)
}

func TestRun_BadEnvironmentOnlyFailsWhenRunning(t *testing.T) {
	t.Setenv(config.EnvTiming, "maybe")

	rootCmd, _, _ := newRoot(suiteOf(), "--help")
	require.NoError(t, rootCmd.Execute())

	rootCmd, _, _ = newRoot(suiteOf(), "run")
	assert.ErrorContains(t, rootCmd.Execute(), config.EnvTiming)
}
