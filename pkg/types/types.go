package types

import (
	"context"
	"errors"
)

// Individual is a person tracked by the registry. Name is the unique key and
// is never reassigned; DOB is stored exactly as supplied.
type Individual struct {
	Name string `json:"name"`
	DOB  string `json:"dob"`
}

// VaccinationRecord is one vaccine administered to an individual on a date.
// IndividualName references Individual.Name but is not checked on write.
type VaccinationRecord struct {
	ID               int64  `json:"id"`
	IndividualName   string `json:"individual_name"`
	VaccineName      string `json:"vaccine_name"`
	DateAdministered string `json:"date_administered"`
}

// VaccinationChange reports how many rows a vaccine-scoped mutation touched.
// Affected may be zero; the store does not treat that as an error.
type VaccinationChange struct {
	IndividualName string `json:"individual_name"`
	VaccineName    string `json:"vaccine_name"`
	Affected       int64  `json:"affected"`
}

// IndividualStore persists individuals keyed by name.
type IndividualStore interface {
	UpsertIndividual(ctx context.Context, name, dob string) error
	// GetIndividual returns nil and a nil error when the name is absent.
	GetIndividual(ctx context.Context, name string) (*Individual, error)
	DeleteIndividual(ctx context.Context, name string) error
	ListIndividuals(ctx context.Context) ([]Individual, error)
}

// VaccinationStore persists vaccination records. Update and delete target
// every row matching (name, vaccine), not a single record id.
type VaccinationStore interface {
	AddVaccination(ctx context.Context, name, vaccine, date string) (*VaccinationRecord, error)
	UpdateVaccination(ctx context.Context, name, vaccine, date string) (int64, error)
	DeleteVaccination(ctx context.Context, name, vaccine string) (int64, error)
	GetVaccinationHistory(ctx context.Context, name string) ([]VaccinationRecord, error)
}

// RegistryStore is the full storage contract consumed by commands and queries.
type RegistryStore interface {
	IndividualStore
	VaccinationStore
}

// Logger captures basic logging hooks used by the service.
type Logger interface {
	Debug(msg string, fields ...any)
	Info(msg string, fields ...any)
	Error(msg string, err error, fields ...any)
}

// NopLogger discards all log lines.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(string, ...any) {}

// Info implements Logger.
func (NopLogger) Info(string, ...any) {}

// Error implements Logger.
func (NopLogger) Error(string, error, ...any) {}

var (
	// ErrIndividualNotFound indicates the requested individual is not registered.
	ErrIndividualNotFound = errors.New("go-immunization: individual not found")
	// ErrNameRequired indicates an individual name was omitted.
	ErrNameRequired = errors.New("go-immunization: individual name required")
	// ErrServiceNotReady indicates the service has not been properly configured.
	ErrServiceNotReady = errors.New("go-immunization: service not ready")
	// ErrMissingStore occurs when commands or queries lack a storage backend.
	ErrMissingStore = errors.New("go-immunization: missing registry store")
)
