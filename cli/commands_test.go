package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-immunization/config"
	"github.com/goliatone/go-immunization/internal/testdb"
	"github.com/goliatone/go-immunization/pkg/types"
	"github.com/goliatone/go-immunization/service"
	"github.com/goliatone/go-immunization/store"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type harness struct {
	t       *testing.T
	runtime *Runtime
	opened  int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db := testdb.New(t)
	st, err := store.New(store.Config{DB: db})
	require.NoError(t, err)
	return &harness{
		t: t,
		runtime: &Runtime{
			Registry: service.New(service.Config{Store: st}),
			Config:   config.Defaults(),
		},
	}
}

func (h *harness) open(context.Context, *RootOptions) (*Runtime, error) {
	h.opened++
	return h.runtime, nil
}

func (h *harness) run(args ...string) (string, string, int) {
	h.t.Helper()
	var stdout, stderr bytes.Buffer
	shell := New(h.open)
	code := shell.Run(context.Background(), args, &stdout, &stderr)
	require.NoError(h.t, shell.Close())
	return stdout.String(), stderr.String(), code
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	stdout, stderr, code := h.run(args...)
	require.Equal(h.t, ExitSuccess, code, "stderr: %s", stderr)
	return stdout
}

func TestIndividualAdd_Confirms(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("individual", "add", "Alice", "1990-01-01")
	assert.Equal(t, "Alice has been added to the registry.\n", out)

	out = h.mustRun("individual", "show", "Alice")
	assert.Contains(t, out, "Date of birth: 1990-01-01")
}

func TestVaccinationFlow_Text(t *testing.T) {
	h := newHarness(t)
	h.mustRun("individual", "add", "Bob", "2000-05-05")

	out := h.mustRun("vaccination", "add", "Bob", "Flu", "2023-10-01")
	assert.Equal(t, "Vaccination record added for Bob.\n", out)

	out = h.mustRun("vaccination", "update", "Bob", "Flu", "2023-10-15")
	assert.Equal(t, "Vaccination record updated for Bob.\n", out)

	out = h.mustRun("history", "Bob")
	assert.Contains(t, out, "2023-10-15")
	assert.NotContains(t, out, "2023-10-01")

	out = h.mustRun("vaccination", "delete", "Bob", "Flu")
	assert.Equal(t, "Vaccination record for Flu deleted for Bob.\n", out)

	out = h.mustRun("individual", "delete", "Bob")
	assert.Equal(t, "Bob has been deleted from the registry.\n", out)
}

func TestNotFound_ReportsOnStderr(t *testing.T) {
	h := newHarness(t)

	cases := [][]string{
		{"vaccination", "update", "Ghost", "Flu", "2023-10-15"},
		{"vaccination", "delete", "Ghost", "Flu"},
		{"vaccination", "add", "Ghost", "Flu", "2023-10-15"},
		{"individual", "delete", "Ghost"},
		{"individual", "show", "Ghost"},
	}
	for _, args := range cases {
		t.Run(strings.Join(args[:2], "_"), func(t *testing.T) {
			stdout, stderr, code := h.run(args...)
			assert.Equal(t, ExitFailure, code)
			assert.Empty(t, stdout)
			assert.Equal(t, "Error: Ghost is not in the registry.\n", stderr)
		})
	}
}

func TestHistory_EmptyExitsNonZero(t *testing.T) {
	h := newHarness(t)
	h.mustRun("individual", "add", "Dave", "1970-01-01")

	_, stderr, code := h.run("history", "Dave")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr, "Dave is not in the registry or has no vaccination records.")

	_, stderr, code = h.run("history", "Ghost")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr, "Ghost is not in the registry or has no vaccination records.")
}

func TestUsageErrors(t *testing.T) {
	h := newHarness(t)

	_, stderr, code := h.run("individual", "add", "Alice")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr, "Error: ")

	_, _, code = h.run("--format", "xml", "history", "Alice")
	assert.Equal(t, ExitCommandError, code)

	assert.Zero(t, h.opened, "usage errors must not open the registry")
}

func TestValidationErrors(t *testing.T) {
	h := newHarness(t)

	_, stderr, code := h.run("individual", "add", "  ", "1990-01-01")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr, "name required")
}

func TestJSONEnvelope(t *testing.T) {
	h := newHarness(t)
	h.mustRun("individual", "add", "Carol", "1985-03-03")
	h.mustRun("vaccination", "add", "Carol", "Tetanus", "2015-03-01")

	out := h.mustRun("--format", "json", "vaccination", "update", "Carol", "Tetanus", "2016-03-01")
	var resp struct {
		Status string       `json:"status"`
		Data   Confirmation `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.NotNil(t, resp.Data.Affected)
	assert.EqualValues(t, 1, *resp.Data.Affected)

	out = h.mustRun("--format", "json", "history", "Carol")
	var history struct {
		Data HistoryView `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &history))
	require.Len(t, history.Data.Records, 1)
	assert.Equal(t, "2016-03-01", history.Data.Records[0].DateAdministered)

	stdout, stderr, code := h.run("--format", "json", "individual", "delete", "Ghost")
	assert.Equal(t, ExitFailure, code)
	assert.Empty(t, stderr)
	var failure CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &failure))
	assert.Equal(t, "error", failure.Status)
	require.NotNil(t, failure.Error)
	assert.Equal(t, ErrCodeNotFound, failure.Error.Code)
	assert.Equal(t, "Ghost is not in the registry.", failure.Error.Message)
}

func TestYAMLEnvelope(t *testing.T) {
	h := newHarness(t)
	h.mustRun("individual", "add", "Alice", "1990-01-01")

	out := h.mustRun("--format", "yaml", "individual", "list")
	var resp struct {
		Status string          `yaml:"status"`
		Data   IndividualsView `yaml:"data"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data.Individuals, 1)
	assert.Equal(t, "Alice", resp.Data.Individuals[0].Name)
}

func TestOpenerFailure(t *testing.T) {
	var stdout, stderr bytes.Buffer
	shell := New(func(context.Context, *RootOptions) (*Runtime, error) {
		return nil, errors.New("disk unavailable")
	})
	code := shell.Run(context.Background(), []string{"history", "Alice"}, &stdout, &stderr)
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr.String(), "could not open registry")
}

func TestConfigCommand_JSON(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("--format", "json", "config")
	var resp struct {
		Data config.BaseConfig `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "sqlite", resp.Data.Persistence.Driver)
}

func TestRenderHistory_Golden(t *testing.T) {
	var buf bytes.Buffer
	err := RenderHistory(&buf, []types.VaccinationRecord{
		{ID: 1, IndividualName: "Carol", VaccineName: "Tetanus", DateAdministered: "2015-03-01"},
		{ID: 2, IndividualName: "Carol", VaccineName: "MMR", DateAdministered: "1999-07-12"},
		{ID: 3, IndividualName: "Carol", VaccineName: "Hepatitis B", DateAdministered: "2001-01-30"},
	})
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "history_table", buf.Bytes())
}

func TestRenderIndividuals_Golden(t *testing.T) {
	var buf bytes.Buffer
	err := RenderIndividuals(&buf, []types.Individual{
		{Name: "Alice", DOB: "1990-01-01"},
		{Name: "Bob", DOB: "2000-05-05"},
	})
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "individuals_table", buf.Bytes())
}
