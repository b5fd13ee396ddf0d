package command

import (
	"context"
	"strings"

	"github.com/goliatone/go-immunization/pkg/types"
)

func safeLogger(logger types.Logger) types.Logger {
	if logger != nil {
		return logger
	}
	return types.NopLogger{}
}

func blank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// requireIndividual resolves name before a mutation, converting absence into
// the reportable not-found error.
func requireIndividual(ctx context.Context, store types.IndividualStore, name string) (*types.Individual, error) {
	individual, err := store.GetIndividual(ctx, name)
	if err != nil {
		return nil, err
	}
	if individual == nil {
		return nil, NewIndividualNotFound(name)
	}
	return individual, nil
}
