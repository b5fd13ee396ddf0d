package command

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-immunization/pkg/types"
)

// VaccinationDeleteInput removes every record of a vaccine for an individual.
type VaccinationDeleteInput struct {
	Name        string
	VaccineName string
	Result      *types.VaccinationChange
}

// Type implements gocommand.Message.
func (VaccinationDeleteInput) Type() string {
	return "command.vaccination.delete"
}

// Validate implements gocommand.Message.
func (input VaccinationDeleteInput) Validate() error {
	return validateVaccination(input.Name, input.VaccineName, "", false)
}

// VaccinationDeleteCommand deletes vaccination records.
type VaccinationDeleteCommand struct {
	store  types.RegistryStore
	logger types.Logger
}

// VaccinationDeleteCommandConfig wires dependencies for the delete command.
type VaccinationDeleteCommandConfig struct {
	Store  types.RegistryStore
	Logger types.Logger
}

// NewVaccinationDeleteCommand constructs the delete handler.
func NewVaccinationDeleteCommand(cfg VaccinationDeleteCommandConfig) *VaccinationDeleteCommand {
	return &VaccinationDeleteCommand{
		store:  cfg.Store,
		logger: safeLogger(cfg.Logger),
	}
}

var _ gocommand.Commander[VaccinationDeleteInput] = (*VaccinationDeleteCommand)(nil)

// Execute deletes all matching rows. Zero matches is not an error.
func (c *VaccinationDeleteCommand) Execute(ctx context.Context, input VaccinationDeleteInput) error {
	if c.store == nil {
		return types.ErrMissingStore
	}
	if err := input.Validate(); err != nil {
		return invalidInput(err, input.Type())
	}
	if _, err := requireIndividual(ctx, c.store, input.Name); err != nil {
		return err
	}

	affected, err := c.store.DeleteVaccination(ctx, input.Name, input.VaccineName)
	if err != nil {
		c.logger.Error("vaccination delete failed", err, "name", input.Name, "vaccine", input.VaccineName)
		return err
	}
	c.logger.Info("vaccination deleted", "name", input.Name, "vaccine", input.VaccineName, "affected", affected)

	if input.Result != nil {
		*input.Result = types.VaccinationChange{
			IndividualName: input.Name,
			VaccineName:    input.VaccineName,
			Affected:       affected,
		}
	}
	return nil
}
