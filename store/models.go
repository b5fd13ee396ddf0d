package store

import "github.com/uptrace/bun"

// IndividualRecord models the individuals row.
type IndividualRecord struct {
	bun.BaseModel `bun:"table:individuals"`

	Name string `bun:"name,pk"`
	DOB  string `bun:"dob"`
}

// VaccinationRecord models the vaccinations row.
type VaccinationRecord struct {
	bun.BaseModel `bun:"table:vaccinations"`

	ID               int64  `bun:"id,pk,autoincrement"`
	IndividualName   string `bun:"individual_name"`
	VaccineName      string `bun:"vaccine_name"`
	DateAdministered string `bun:"date_administered"`
}
