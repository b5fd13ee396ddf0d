package store

import (
	"context"
	"errors"

	"github.com/goliatone/go-immunization/pkg/types"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Config wires the Bun-backed registry store. Either DB or both repositories
// must be provided; raw updates and the delete cascade need a DB, which is
// taken from the repositories when they expose one.
type Config struct {
	DB           *bun.DB
	Individuals  repository.Repository[*IndividualRecord]
	Vaccinations repository.Repository[*VaccinationRecord]
	Logger       types.Logger
}

// Store implements types.RegistryStore over the individuals and vaccinations
// tables.
type Store struct {
	db           *bun.DB
	individuals  repository.Repository[*IndividualRecord]
	vaccinations repository.Repository[*VaccinationRecord]
	logger       types.Logger
	closer       func() error
}

// New constructs a store around an existing connection. The caller keeps
// ownership of cfg.DB; Close is a no-op for stores built this way.
func New(cfg Config) (*Store, error) {
	individuals := cfg.Individuals
	vaccinations := cfg.Vaccinations
	db := cfg.DB

	if individuals == nil || vaccinations == nil {
		if db == nil {
			return nil, errors.New("store: db or repositories must be provided")
		}
		if individuals == nil {
			individuals = repository.NewRepository(db, repository.ModelHandlers[*IndividualRecord]{
				NewRecord: func() *IndividualRecord { return &IndividualRecord{} },
				GetID: func(*IndividualRecord) uuid.UUID {
					return uuid.Nil
				},
				SetID: func(*IndividualRecord, uuid.UUID) {},
			})
		}
		if vaccinations == nil {
			vaccinations = repository.NewRepository(db, repository.ModelHandlers[*VaccinationRecord]{
				NewRecord: func() *VaccinationRecord { return &VaccinationRecord{} },
				GetID: func(*VaccinationRecord) uuid.UUID {
					return uuid.Nil
				},
				SetID: func(*VaccinationRecord, uuid.UUID) {},
			})
		}
	}
	if db == nil {
		if withDB, ok := individuals.(interface{ DB() *bun.DB }); ok {
			db = withDB.DB()
		}
	}
	if db == nil {
		return nil, errors.New("store: db required for updates")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = types.NopLogger{}
	}

	return &Store{
		db:           db,
		individuals:  individuals,
		vaccinations: vaccinations,
		logger:       logger,
	}, nil
}

var _ types.RegistryStore = (*Store)(nil)

// DB exposes the underlying connection.
func (s *Store) DB() *bun.DB {
	return s.db
}

// Ping verifies the connection is usable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection when the store opened it itself.
func (s *Store) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	closer := s.closer
	s.closer = nil
	return closer()
}

// UpsertIndividual inserts the individual or replaces the stored dob when the
// name already exists.
func (s *Store) UpsertIndividual(ctx context.Context, name, dob string) error {
	rec := &IndividualRecord{Name: name, DOB: dob}
	_, err := s.db.NewInsert().
		Model(rec).
		On("CONFLICT (name) DO UPDATE").
		Set("dob = EXCLUDED.dob").
		Exec(ctx)
	if err != nil {
		return repository.MapDatabaseError(err, repository.DetectDriver(s.db))
	}
	s.logger.Debug("individual upserted", "name", name)
	return nil
}

// GetIndividual returns the individual stored under name, or nil when absent.
func (s *Store) GetIndividual(ctx context.Context, name string) (*types.Individual, error) {
	rec, err := s.individuals.Get(ctx, repository.SelectBy("name", "=", name))
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toIndividual(rec), nil
}

// ListIndividuals returns every registered individual ordered by name.
func (s *Store) ListIndividuals(ctx context.Context) ([]types.Individual, error) {
	records, _, err := s.individuals.List(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.OrderExpr("name ASC")
	})
	if err != nil {
		return nil, err
	}
	out := make([]types.Individual, 0, len(records))
	for _, rec := range records {
		out = append(out, *toIndividual(rec))
	}
	return out, nil
}

// DeleteIndividual removes the individual's vaccination rows and then the
// individual row. Both deletes commit together; unknown names are a no-op.
func (s *Store) DeleteIndividual(ctx context.Context, name string) error {
	var removed int64
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().
			Model((*VaccinationRecord)(nil)).
			Where("individual_name = ?", name).
			Exec(ctx)
		if err != nil {
			return err
		}
		removed, _ = res.RowsAffected()
		_, err = tx.NewDelete().
			Model((*IndividualRecord)(nil)).
			Where("name = ?", name).
			Exec(ctx)
		return err
	})
	if err != nil {
		return repository.MapDatabaseError(err, repository.DetectDriver(s.db))
	}
	s.logger.Debug("individual deleted", "name", name, "vaccinations_removed", removed)
	return nil
}

// AddVaccination inserts a record without checking that name is registered.
func (s *Store) AddVaccination(ctx context.Context, name, vaccine, date string) (*types.VaccinationRecord, error) {
	created, err := s.vaccinations.Create(ctx, &VaccinationRecord{
		IndividualName:   name,
		VaccineName:      vaccine,
		DateAdministered: date,
	})
	if err != nil {
		return nil, err
	}
	rec := toVaccination(created)
	s.logger.Debug("vaccination added", "name", name, "vaccine", vaccine, "id", rec.ID)
	return &rec, nil
}

// UpdateVaccination sets date_administered on every row matching
// (name, vaccine) and reports how many rows changed.
func (s *Store) UpdateVaccination(ctx context.Context, name, vaccine, date string) (int64, error) {
	res, err := s.db.NewUpdate().
		Model((*VaccinationRecord)(nil)).
		Set("date_administered = ?", date).
		Where("individual_name = ?", name).
		Where("vaccine_name = ?", vaccine).
		Exec(ctx)
	if err != nil {
		return 0, repository.MapDatabaseError(err, repository.DetectDriver(s.db))
	}
	affected, _ := res.RowsAffected()
	s.logger.Debug("vaccination updated", "name", name, "vaccine", vaccine, "affected", affected)
	return affected, nil
}

// DeleteVaccination removes every row matching (name, vaccine).
func (s *Store) DeleteVaccination(ctx context.Context, name, vaccine string) (int64, error) {
	res, err := s.db.NewDelete().
		Model((*VaccinationRecord)(nil)).
		Where("individual_name = ?", name).
		Where("vaccine_name = ?", vaccine).
		Exec(ctx)
	if err != nil {
		return 0, repository.MapDatabaseError(err, repository.DetectDriver(s.db))
	}
	affected, _ := res.RowsAffected()
	s.logger.Debug("vaccination deleted", "name", name, "vaccine", vaccine, "affected", affected)
	return affected, nil
}

// GetVaccinationHistory returns the rows for name in insertion order. The
// slice is empty, never nil, when nothing matches.
func (s *Store) GetVaccinationHistory(ctx context.Context, name string) ([]types.VaccinationRecord, error) {
	records, _, err := s.vaccinations.List(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("individual_name = ?", name).OrderExpr("id ASC")
	})
	if err != nil {
		return nil, err
	}
	out := make([]types.VaccinationRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, toVaccination(rec))
	}
	return out, nil
}

func toIndividual(rec *IndividualRecord) *types.Individual {
	if rec == nil {
		return nil
	}
	return &types.Individual{
		Name: rec.Name,
		DOB:  rec.DOB,
	}
}

func toVaccination(rec *VaccinationRecord) types.VaccinationRecord {
	if rec == nil {
		return types.VaccinationRecord{}
	}
	return types.VaccinationRecord{
		ID:               rec.ID,
		IndividualName:   rec.IndividualName,
		VaccineName:      rec.VaccineName,
		DateAdministered: rec.DateAdministered,
	}
}
