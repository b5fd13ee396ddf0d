package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/goliatone/go-immunization/config"
	"github.com/goliatone/go-immunization/pkg/types"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "yaml"
	DB      string // overrides persistence.server when set

	// FormatSet records whether --format was given explicitly; otherwise the
	// opener may apply output.format from configuration.
	FormatSet bool
}

// Registry is the facade the shell drives.
type Registry interface {
	AddIndividual(ctx context.Context, individual types.Individual) error
	AddIndividualVaccination(ctx context.Context, name, vaccine, date string) (*types.VaccinationRecord, error)
	UpdateIndividualVaccination(ctx context.Context, name, vaccine, date string) (types.VaccinationChange, error)
	DeleteIndividualVaccination(ctx context.Context, name, vaccine string) (types.VaccinationChange, error)
	DeleteIndividual(ctx context.Context, name string) error
	GetIndividual(ctx context.Context, name string) (*types.Individual, error)
	ListIndividuals(ctx context.Context) ([]types.Individual, error)
	GetIndividualVaccinationHistory(ctx context.Context, name string) ([]types.VaccinationRecord, error)
}

// Runtime bundles what a command needs once the store is open.
type Runtime struct {
	Registry Registry
	Config   *config.BaseConfig
	Close    func() error
}

// Opener builds the runtime on first use.
type Opener func(ctx context.Context, opts *RootOptions) (*Runtime, error)

// Shell is the registry CLI. The runtime is opened lazily so that help and
// usage errors never touch the database.
type Shell struct {
	opts    *RootOptions
	open    Opener
	runtime *Runtime
	root    *cobra.Command
}

// New creates the shell and its command tree.
func New(open Opener) *Shell {
	s := &Shell{
		opts: &RootOptions{},
		open: open,
	}
	s.root = s.newRootCommand()
	return s
}

// Command exposes the root cobra command.
func (s *Shell) Command() *cobra.Command {
	return s.root
}

func (s *Shell) newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "immunization",
		Short: "Immunization registry",
		Long:  "Track individuals and the vaccinations administered to them in a local SQLite registry.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s.opts.FormatSet = cmd.Flags().Changed("format")
			if !isValidFormat(s.opts.Format) {
				return NewExitError(ExitCommandError, ErrCodeUsage,
					fmt.Sprintf("invalid format %q: must be one of %v", s.opts.Format, ValidFormats))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&s.opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&s.opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&s.opts.DB, "db", "", "database DSN (defaults to persistence.server)")

	cmd.AddCommand(s.newIndividualCommand())
	cmd.AddCommand(s.newVaccinationCommand())
	cmd.AddCommand(s.newHistoryCommand())
	cmd.AddCommand(s.newConfigCommand())

	return cmd
}

// Execute runs the command tree against args.
func (s *Shell) Execute(ctx context.Context, args []string) error {
	s.root.SetArgs(args)
	return s.root.ExecuteContext(ctx)
}

// Run executes args, reports any failure through the formatter and returns
// the process exit code.
func (s *Shell) Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	s.root.SetOut(stdout)
	s.root.SetErr(stderr)

	err := s.Execute(ctx, args)
	if err == nil {
		return ExitSuccess
	}

	exitErr := classify(err)
	formatter := &OutputFormatter{Format: s.opts.Format, Writer: stdout, ErrWriter: stderr}
	if !isValidFormat(formatter.Format) {
		formatter.Format = "text"
	}
	_ = formatter.Error(exitErr.ErrCode, exitErr.Message, nil)
	return exitErr.Code
}

// Close releases the runtime if one was opened.
func (s *Shell) Close() error {
	if s.runtime == nil || s.runtime.Close == nil {
		return nil
	}
	closer := s.runtime.Close
	s.runtime = nil
	return closer()
}

func (s *Shell) registry(ctx context.Context) (*Runtime, error) {
	if s.runtime != nil {
		return s.runtime, nil
	}
	if s.open == nil {
		return nil, NewExitError(ExitCommandError, ErrCodeStorage, "registry is not configured")
	}
	rt, err := s.open(ctx, s.opts)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, ErrCodeStorage, fmt.Sprintf("could not open registry: %v", err), err)
	}
	s.runtime = rt
	return rt, nil
}

func (s *Shell) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    s.opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
	}
}

// usageArgs wraps a cobra positional validator so argument errors map to
// ExitCommandError.
func usageArgs(validator cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validator(cmd, args); err != nil {
			return WrapExitError(ExitCommandError, ErrCodeUsage, err.Error(), nil)
		}
		return nil
	}
}
