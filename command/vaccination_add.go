package command

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-immunization/pkg/types"
)

// VaccinationAddInput records a vaccine administered to a registered
// individual.
type VaccinationAddInput struct {
	Name             string
	VaccineName      string
	DateAdministered string
	Result           *types.VaccinationRecord
}

// Type implements gocommand.Message.
func (VaccinationAddInput) Type() string {
	return "command.vaccination.add"
}

// Validate implements gocommand.Message.
func (input VaccinationAddInput) Validate() error {
	return validateVaccination(input.Name, input.VaccineName, input.DateAdministered, true)
}

// VaccinationAddCommand appends vaccination records.
type VaccinationAddCommand struct {
	store  types.RegistryStore
	logger types.Logger
}

// VaccinationAddCommandConfig wires dependencies for the add command.
type VaccinationAddCommandConfig struct {
	Store  types.RegistryStore
	Logger types.Logger
}

// NewVaccinationAddCommand constructs the add handler.
func NewVaccinationAddCommand(cfg VaccinationAddCommandConfig) *VaccinationAddCommand {
	return &VaccinationAddCommand{
		store:  cfg.Store,
		logger: safeLogger(cfg.Logger),
	}
}

var _ gocommand.Commander[VaccinationAddInput] = (*VaccinationAddCommand)(nil)

// Execute checks the individual exists before inserting; the store itself
// accepts records for unknown names.
func (c *VaccinationAddCommand) Execute(ctx context.Context, input VaccinationAddInput) error {
	if c.store == nil {
		return types.ErrMissingStore
	}
	if err := input.Validate(); err != nil {
		return invalidInput(err, input.Type())
	}
	if _, err := requireIndividual(ctx, c.store, input.Name); err != nil {
		return err
	}

	created, err := c.store.AddVaccination(ctx, input.Name, input.VaccineName, input.DateAdministered)
	if err != nil {
		c.logger.Error("vaccination add failed", err, "name", input.Name, "vaccine", input.VaccineName)
		return err
	}
	c.logger.Info("vaccination added", "name", input.Name, "vaccine", input.VaccineName)

	if input.Result != nil && created != nil {
		*input.Result = *created
	}
	return nil
}

func validateVaccination(name, vaccine, date string, needDate bool) error {
	switch {
	case blank(name):
		return ErrNameRequired
	case blank(vaccine):
		return ErrVaccineRequired
	case needDate && blank(date):
		return ErrDateRequired
	default:
		return nil
	}
}
