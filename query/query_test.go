package query

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-immunization/command"
	"github.com/goliatone/go-immunization/pkg/types"
	"github.com/stretchr/testify/require"
)

func TestIndividualQuery_ReturnsIndividual(t *testing.T) {
	store := &fakeStore{individuals: map[string]string{"Alice": "1990-01-01"}}
	q := NewIndividualQuery(store)

	got, err := q.Query(context.Background(), IndividualQueryInput{Name: "Alice"})
	require.NoError(t, err)
	require.Equal(t, &types.Individual{Name: "Alice", DOB: "1990-01-01"}, got)
}

func TestIndividualQuery_NotFound(t *testing.T) {
	q := NewIndividualQuery(&fakeStore{})

	got, err := q.Query(context.Background(), IndividualQueryInput{Name: "Ghost"})
	require.Nil(t, got)
	require.True(t, command.IsIndividualNotFound(err))
}

func TestIndividualQuery_RequiresName(t *testing.T) {
	q := NewIndividualQuery(&fakeStore{})
	_, err := q.Query(context.Background(), IndividualQueryInput{})
	require.ErrorIs(t, err, command.ErrNameRequired)
}

func TestIndividualListQuery_NeverNil(t *testing.T) {
	q := NewIndividualListQuery(&fakeStore{})

	list, err := q.Query(context.Background(), IndividualListInput{})
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}

func TestVaccinationHistoryQuery_UnknownIsSilent(t *testing.T) {
	store := &fakeStore{
		history: []types.VaccinationRecord{
			{ID: 1, IndividualName: "Ghost", VaccineName: "Flu", DateAdministered: "2023-10-01"},
		},
	}
	q := NewVaccinationHistoryQuery(store)

	history, err := q.Query(context.Background(), VaccinationHistoryInput{Name: "Ghost"})
	require.NoError(t, err)
	require.NotNil(t, history)
	require.Empty(t, history)
	require.False(t, store.historyCalled, "history must not be read for unregistered names")
}

func TestVaccinationHistoryQuery_BlankNameIsEmpty(t *testing.T) {
	store := &fakeStore{}
	q := NewVaccinationHistoryQuery(store)

	history, err := q.Query(context.Background(), VaccinationHistoryInput{Name: "  "})
	require.NoError(t, err)
	require.NotNil(t, history)
	require.Empty(t, history)
	require.False(t, store.historyCalled)
}

func TestVaccinationHistoryQuery_ReturnsRecords(t *testing.T) {
	store := &fakeStore{
		individuals: map[string]string{"Bob": "2000-05-05"},
		history: []types.VaccinationRecord{
			{ID: 1, IndividualName: "Bob", VaccineName: "Flu", DateAdministered: "2023-10-01"},
			{ID: 2, IndividualName: "Bob", VaccineName: "MMR", DateAdministered: "2001-06-01"},
		},
	}
	q := NewVaccinationHistoryQuery(store)

	history, err := q.Query(context.Background(), VaccinationHistoryInput{Name: "Bob"})
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, "Flu", history[0].VaccineName)
}

func TestVaccinationHistoryQuery_PropagatesStoreError(t *testing.T) {
	store := &fakeStore{failWith: errors.New("locked")}
	q := NewVaccinationHistoryQuery(store)

	_, err := q.Query(context.Background(), VaccinationHistoryInput{Name: "Bob"})
	require.EqualError(t, err, "locked")
}

func TestQueries_MissingStore(t *testing.T) {
	_, err := NewIndividualQuery(nil).Query(context.Background(), IndividualQueryInput{Name: "A"})
	require.ErrorIs(t, err, types.ErrMissingStore)
	_, err = NewIndividualListQuery(nil).Query(context.Background(), IndividualListInput{})
	require.ErrorIs(t, err, types.ErrMissingStore)
	_, err = NewVaccinationHistoryQuery(nil).Query(context.Background(), VaccinationHistoryInput{Name: "A"})
	require.ErrorIs(t, err, types.ErrMissingStore)
}

type fakeStore struct {
	individuals   map[string]string
	history       []types.VaccinationRecord
	failWith      error
	historyCalled bool
}

var _ types.RegistryStore = (*fakeStore)(nil)

func (f *fakeStore) UpsertIndividual(context.Context, string, string) error { return nil }

func (f *fakeStore) GetIndividual(_ context.Context, name string) (*types.Individual, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	dob, ok := f.individuals[name]
	if !ok {
		return nil, nil
	}
	return &types.Individual{Name: name, DOB: dob}, nil
}

func (f *fakeStore) DeleteIndividual(context.Context, string) error { return nil }

func (f *fakeStore) ListIndividuals(context.Context) ([]types.Individual, error) {
	return nil, nil
}

func (f *fakeStore) AddVaccination(context.Context, string, string, string) (*types.VaccinationRecord, error) {
	return nil, nil
}

func (f *fakeStore) UpdateVaccination(context.Context, string, string, string) (int64, error) {
	return 0, nil
}

func (f *fakeStore) DeleteVaccination(context.Context, string, string) (int64, error) {
	return 0, nil
}

func (f *fakeStore) GetVaccinationHistory(_ context.Context, name string) ([]types.VaccinationRecord, error) {
	f.historyCalled = true
	out := []types.VaccinationRecord{}
	for _, rec := range f.history {
		if rec.IndividualName == name {
			out = append(out, rec)
		}
	}
	return out, nil
}
