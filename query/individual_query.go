package query

import (
	"context"
	"strings"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-immunization/command"
	"github.com/goliatone/go-immunization/pkg/types"
)

// IndividualQueryInput names the individual to load.
type IndividualQueryInput struct {
	Name string
}

// Type implements gocommand.Message.
func (IndividualQueryInput) Type() string {
	return "query.individual.get"
}

// IndividualQuery fetches a single individual and reports absence as
// command.ErrIndividualNotFound.
type IndividualQuery struct {
	store types.IndividualStore
}

// NewIndividualQuery constructs the lookup helper.
func NewIndividualQuery(store types.IndividualStore) *IndividualQuery {
	return &IndividualQuery{store: store}
}

var _ gocommand.Querier[IndividualQueryInput, *types.Individual] = (*IndividualQuery)(nil)

// Query returns the stored individual.
func (q *IndividualQuery) Query(ctx context.Context, input IndividualQueryInput) (*types.Individual, error) {
	if q.store == nil {
		return nil, types.ErrMissingStore
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, command.ErrNameRequired
	}
	individual, err := q.store.GetIndividual(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if individual == nil {
		return nil, command.NewIndividualNotFound(input.Name)
	}
	return individual, nil
}
