package command

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-immunization/pkg/types"
)

// IndividualAddInput registers an individual or replaces the stored date of
// birth for an existing name.
type IndividualAddInput struct {
	Name   string
	DOB    string
	Result *types.Individual
}

// Type implements gocommand.Message.
func (IndividualAddInput) Type() string {
	return "command.individual.add"
}

// Validate implements gocommand.Message.
func (input IndividualAddInput) Validate() error {
	switch {
	case blank(input.Name):
		return ErrNameRequired
	case blank(input.DOB):
		return ErrDOBRequired
	default:
		return nil
	}
}

// IndividualAddCommand upserts individuals.
type IndividualAddCommand struct {
	store  types.IndividualStore
	logger types.Logger
}

// IndividualAddCommandConfig wires dependencies for the add command.
type IndividualAddCommandConfig struct {
	Store  types.IndividualStore
	Logger types.Logger
}

// NewIndividualAddCommand constructs the add handler.
func NewIndividualAddCommand(cfg IndividualAddCommandConfig) *IndividualAddCommand {
	return &IndividualAddCommand{
		store:  cfg.Store,
		logger: safeLogger(cfg.Logger),
	}
}

var _ gocommand.Commander[IndividualAddInput] = (*IndividualAddCommand)(nil)

// Execute stores the individual keyed on name.
func (c *IndividualAddCommand) Execute(ctx context.Context, input IndividualAddInput) error {
	if c.store == nil {
		return types.ErrMissingStore
	}
	if err := input.Validate(); err != nil {
		return invalidInput(err, input.Type())
	}

	if err := c.store.UpsertIndividual(ctx, input.Name, input.DOB); err != nil {
		c.logger.Error("individual upsert failed", err, "name", input.Name)
		return err
	}
	c.logger.Info("individual added", "name", input.Name)

	if input.Result != nil {
		*input.Result = types.Individual{Name: input.Name, DOB: input.DOB}
	}
	return nil
}
