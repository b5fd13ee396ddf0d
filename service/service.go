package service

import (
	"context"

	"github.com/goliatone/go-immunization/command"
	"github.com/goliatone/go-immunization/pkg/types"
	"github.com/goliatone/go-immunization/query"
)

// Service is the registry facade. It resolves names against the store before
// delegating, and exposes the underlying command/query handlers for
// transports that prefer to dispatch messages directly.
type Service struct {
	cfg      Config
	commands Commands
	queries  Queries
}

// Commands exposes the service command handlers.
type Commands struct {
	IndividualAdd     *command.IndividualAddCommand
	IndividualDelete  *command.IndividualDeleteCommand
	VaccinationAdd    *command.VaccinationAddCommand
	VaccinationUpdate *command.VaccinationUpdateCommand
	VaccinationDelete *command.VaccinationDeleteCommand
}

// Queries exposes read-model helpers.
type Queries struct {
	Individual         *query.IndividualQuery
	IndividualList     *query.IndividualListQuery
	VaccinationHistory *query.VaccinationHistoryQuery
}

// Config captures the dependencies supplied by the host application.
type Config struct {
	Store  types.RegistryStore
	Logger types.Logger
}

// New constructs a Service from the supplied configuration.
func New(cfg Config) *Service {
	if cfg.Logger == nil {
		cfg.Logger = types.NopLogger{}
	}
	s := &Service{cfg: cfg}
	s.commands = s.buildCommands()
	s.queries = s.buildQueries()
	return s
}

// Commands returns the command facade.
func (s *Service) Commands() Commands {
	return s.commands
}

// Queries returns the query facade.
func (s *Service) Queries() Queries {
	return s.queries
}

// Ready reports whether a store has been wired in.
func (s *Service) Ready() bool {
	return s != nil && s.cfg.Store != nil
}

// HealthCheck surfaces missing configuration and, when the store supports
// it, verifies the connection.
func (s *Service) HealthCheck(ctx context.Context) error {
	if !s.Ready() {
		return types.ErrServiceNotReady
	}
	if pinger, ok := s.cfg.Store.(interface{ Ping(context.Context) error }); ok {
		return pinger.Ping(ctx)
	}
	return nil
}

// AddIndividual registers the individual, replacing the date of birth when
// the name already exists.
func (s *Service) AddIndividual(ctx context.Context, individual types.Individual) error {
	return s.commands.IndividualAdd.Execute(ctx, command.IndividualAddInput{
		Name: individual.Name,
		DOB:  individual.DOB,
	})
}

// AddIndividualVaccination records a vaccination for a registered individual.
func (s *Service) AddIndividualVaccination(ctx context.Context, name, vaccine, date string) (*types.VaccinationRecord, error) {
	result := &types.VaccinationRecord{}
	err := s.commands.VaccinationAdd.Execute(ctx, command.VaccinationAddInput{
		Name:             name,
		VaccineName:      vaccine,
		DateAdministered: date,
		Result:           result,
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateIndividualVaccination sets the date on every matching record.
func (s *Service) UpdateIndividualVaccination(ctx context.Context, name, vaccine, date string) (types.VaccinationChange, error) {
	var result types.VaccinationChange
	err := s.commands.VaccinationUpdate.Execute(ctx, command.VaccinationUpdateInput{
		Name:             name,
		VaccineName:      vaccine,
		DateAdministered: date,
		Result:           &result,
	})
	return result, err
}

// DeleteIndividualVaccination removes every matching record.
func (s *Service) DeleteIndividualVaccination(ctx context.Context, name, vaccine string) (types.VaccinationChange, error) {
	var result types.VaccinationChange
	err := s.commands.VaccinationDelete.Execute(ctx, command.VaccinationDeleteInput{
		Name:        name,
		VaccineName: vaccine,
		Result:      &result,
	})
	return result, err
}

// DeleteIndividual removes the individual and its vaccination records.
func (s *Service) DeleteIndividual(ctx context.Context, name string) error {
	return s.commands.IndividualDelete.Execute(ctx, command.IndividualDeleteInput{Name: name})
}

// GetIndividual loads a single individual.
func (s *Service) GetIndividual(ctx context.Context, name string) (*types.Individual, error) {
	return s.queries.Individual.Query(ctx, query.IndividualQueryInput{Name: name})
}

// ListIndividuals returns every individual ordered by name.
func (s *Service) ListIndividuals(ctx context.Context) ([]types.Individual, error) {
	return s.queries.IndividualList.Query(ctx, query.IndividualListInput{})
}

// GetIndividualVaccinationHistory returns an empty history, not an error, for
// unknown names.
func (s *Service) GetIndividualVaccinationHistory(ctx context.Context, name string) ([]types.VaccinationRecord, error) {
	return s.queries.VaccinationHistory.Query(ctx, query.VaccinationHistoryInput{Name: name})
}

func (s *Service) buildCommands() Commands {
	return Commands{
		IndividualAdd: command.NewIndividualAddCommand(command.IndividualAddCommandConfig{
			Store:  s.cfg.Store,
			Logger: s.cfg.Logger,
		}),
		IndividualDelete: command.NewIndividualDeleteCommand(command.IndividualDeleteCommandConfig{
			Store:  s.cfg.Store,
			Logger: s.cfg.Logger,
		}),
		VaccinationAdd: command.NewVaccinationAddCommand(command.VaccinationAddCommandConfig{
			Store:  s.cfg.Store,
			Logger: s.cfg.Logger,
		}),
		VaccinationUpdate: command.NewVaccinationUpdateCommand(command.VaccinationUpdateCommandConfig{
			Store:  s.cfg.Store,
			Logger: s.cfg.Logger,
		}),
		VaccinationDelete: command.NewVaccinationDeleteCommand(command.VaccinationDeleteCommandConfig{
			Store:  s.cfg.Store,
			Logger: s.cfg.Logger,
		}),
	}
}

func (s *Service) buildQueries() Queries {
	return Queries{
		Individual:         query.NewIndividualQuery(s.cfg.Store),
		IndividualList:     query.NewIndividualListQuery(s.cfg.Store),
		VaccinationHistory: query.NewVaccinationHistoryQuery(s.cfg.Store),
	}
}
