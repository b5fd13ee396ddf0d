package query

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-immunization/pkg/types"
)

// IndividualListInput requests every registered individual.
type IndividualListInput struct{}

// Type implements gocommand.Message.
func (IndividualListInput) Type() string {
	return "query.individual.list"
}

// IndividualListQuery lists individuals ordered by name.
type IndividualListQuery struct {
	store types.IndividualStore
}

// NewIndividualListQuery constructs the list helper.
func NewIndividualListQuery(store types.IndividualStore) *IndividualListQuery {
	return &IndividualListQuery{store: store}
}

var _ gocommand.Querier[IndividualListInput, []types.Individual] = (*IndividualListQuery)(nil)

// Query returns the full roster.
func (q *IndividualListQuery) Query(ctx context.Context, _ IndividualListInput) ([]types.Individual, error) {
	if q.store == nil {
		return nil, types.ErrMissingStore
	}
	individuals, err := q.store.ListIndividuals(ctx)
	if err != nil {
		return nil, err
	}
	if individuals == nil {
		individuals = []types.Individual{}
	}
	return individuals, nil
}
