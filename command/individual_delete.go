package command

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-immunization/pkg/types"
)

// IndividualDeleteInput removes an individual along with its vaccinations.
type IndividualDeleteInput struct {
	Name string
}

// Type implements gocommand.Message.
func (IndividualDeleteInput) Type() string {
	return "command.individual.delete"
}

// Validate implements gocommand.Message.
func (input IndividualDeleteInput) Validate() error {
	if blank(input.Name) {
		return ErrNameRequired
	}
	return nil
}

// IndividualDeleteCommand deletes registered individuals.
type IndividualDeleteCommand struct {
	store  types.IndividualStore
	logger types.Logger
}

// IndividualDeleteCommandConfig wires dependencies for the delete command.
type IndividualDeleteCommandConfig struct {
	Store  types.IndividualStore
	Logger types.Logger
}

// NewIndividualDeleteCommand constructs the delete handler.
func NewIndividualDeleteCommand(cfg IndividualDeleteCommandConfig) *IndividualDeleteCommand {
	return &IndividualDeleteCommand{
		store:  cfg.Store,
		logger: safeLogger(cfg.Logger),
	}
}

var _ gocommand.Commander[IndividualDeleteInput] = (*IndividualDeleteCommand)(nil)

// Execute fails with ErrIndividualNotFound when the name is unknown.
func (c *IndividualDeleteCommand) Execute(ctx context.Context, input IndividualDeleteInput) error {
	if c.store == nil {
		return types.ErrMissingStore
	}
	if err := input.Validate(); err != nil {
		return invalidInput(err, input.Type())
	}
	if _, err := requireIndividual(ctx, c.store, input.Name); err != nil {
		return err
	}

	if err := c.store.DeleteIndividual(ctx, input.Name); err != nil {
		c.logger.Error("individual delete failed", err, "name", input.Name)
		return err
	}
	c.logger.Info("individual deleted", "name", input.Name)
	return nil
}
