package query

import (
	"context"
	"strings"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-immunization/pkg/types"
)

// VaccinationHistoryInput names the individual whose records are listed.
type VaccinationHistoryInput struct {
	Name string
}

// Type implements gocommand.Message.
func (VaccinationHistoryInput) Type() string {
	return "query.vaccination.history"
}

// VaccinationHistoryQuery returns vaccination records in insertion order.
// Unlike the mutations, an unknown individual yields an empty history rather
// than an error, as does a blank name.
type VaccinationHistoryQuery struct {
	store types.RegistryStore
}

// NewVaccinationHistoryQuery constructs the history helper.
func NewVaccinationHistoryQuery(store types.RegistryStore) *VaccinationHistoryQuery {
	return &VaccinationHistoryQuery{store: store}
}

var _ gocommand.Querier[VaccinationHistoryInput, []types.VaccinationRecord] = (*VaccinationHistoryQuery)(nil)

// Query resolves the individual, then loads the history.
func (q *VaccinationHistoryQuery) Query(ctx context.Context, input VaccinationHistoryInput) ([]types.VaccinationRecord, error) {
	if q.store == nil {
		return nil, types.ErrMissingStore
	}
	if strings.TrimSpace(input.Name) == "" {
		return []types.VaccinationRecord{}, nil
	}
	individual, err := q.store.GetIndividual(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if individual == nil {
		return []types.VaccinationRecord{}, nil
	}
	history, err := q.store.GetVaccinationHistory(ctx, individual.Name)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []types.VaccinationRecord{}
	}
	return history, nil
}
