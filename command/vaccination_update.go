package command

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-immunization/pkg/types"
)

// VaccinationUpdateInput changes the administration date of every record
// matching the individual and vaccine.
type VaccinationUpdateInput struct {
	Name             string
	VaccineName      string
	DateAdministered string
	Result           *types.VaccinationChange
}

// Type implements gocommand.Message.
func (VaccinationUpdateInput) Type() string {
	return "command.vaccination.update"
}

// Validate implements gocommand.Message.
func (input VaccinationUpdateInput) Validate() error {
	return validateVaccination(input.Name, input.VaccineName, input.DateAdministered, true)
}

// VaccinationUpdateCommand rewrites vaccination dates.
type VaccinationUpdateCommand struct {
	store  types.RegistryStore
	logger types.Logger
}

// VaccinationUpdateCommandConfig wires dependencies for the update command.
type VaccinationUpdateCommandConfig struct {
	Store  types.RegistryStore
	Logger types.Logger
}

// NewVaccinationUpdateCommand constructs the update handler.
func NewVaccinationUpdateCommand(cfg VaccinationUpdateCommandConfig) *VaccinationUpdateCommand {
	return &VaccinationUpdateCommand{
		store:  cfg.Store,
		logger: safeLogger(cfg.Logger),
	}
}

var _ gocommand.Commander[VaccinationUpdateInput] = (*VaccinationUpdateCommand)(nil)

// Execute updates all matching rows. Zero matches is not an error.
func (c *VaccinationUpdateCommand) Execute(ctx context.Context, input VaccinationUpdateInput) error {
	if c.store == nil {
		return types.ErrMissingStore
	}
	if err := input.Validate(); err != nil {
		return invalidInput(err, input.Type())
	}
	if _, err := requireIndividual(ctx, c.store, input.Name); err != nil {
		return err
	}

	affected, err := c.store.UpdateVaccination(ctx, input.Name, input.VaccineName, input.DateAdministered)
	if err != nil {
		c.logger.Error("vaccination update failed", err, "name", input.Name, "vaccine", input.VaccineName)
		return err
	}
	c.logger.Info("vaccination updated", "name", input.Name, "vaccine", input.VaccineName, "affected", affected)

	if input.Result != nil {
		*input.Result = types.VaccinationChange{
			IndividualName: input.Name,
			VaccineName:    input.VaccineName,
			Affected:       affected,
		}
	}
	return nil
}
