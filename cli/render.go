package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goliatone/go-immunization/pkg/types"
)

// RenderHistory writes the history as an aligned NAME/VACCINE/DATE table.
func RenderHistory(w io.Writer, records []types.VaccinationRecord) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tVACCINE\tDATE ADMINISTERED")
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", rec.IndividualName, rec.VaccineName, rec.DateAdministered)
	}
	return tw.Flush()
}

// RenderIndividuals writes individuals as an aligned NAME/DOB table.
func RenderIndividuals(w io.Writer, individuals []types.Individual) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDATE OF BIRTH")
	for _, ind := range individuals {
		fmt.Fprintf(tw, "%s\t%s\n", ind.Name, ind.DOB)
	}
	return tw.Flush()
}

// Confirmation is the payload for successful mutations.
type Confirmation struct {
	Message  string `json:"message" yaml:"message"`
	Name     string `json:"name" yaml:"name"`
	Vaccine  string `json:"vaccine,omitempty" yaml:"vaccine,omitempty"`
	Affected *int64 `json:"affected,omitempty" yaml:"affected,omitempty"`
}

func (c Confirmation) String() string {
	return c.Message
}

// HistoryView is the payload for the history command.
type HistoryView struct {
	Name    string                    `json:"name" yaml:"name"`
	Records []types.VaccinationRecord `json:"records" yaml:"records"`
}

func (v HistoryView) String() string {
	var b strings.Builder
	_ = RenderHistory(&b, v.Records)
	return strings.TrimSuffix(b.String(), "\n")
}

// IndividualsView is the payload for the individual list command.
type IndividualsView struct {
	Individuals []types.Individual `json:"individuals" yaml:"individuals"`
}

func (v IndividualsView) String() string {
	var b strings.Builder
	_ = RenderIndividuals(&b, v.Individuals)
	return strings.TrimSuffix(b.String(), "\n")
}

// IndividualView is the payload for the individual show command.
type IndividualView struct {
	types.Individual `yaml:",inline"`
}

func (v IndividualView) String() string {
	return fmt.Sprintf("Name: %s\nDate of birth: %s", v.Name, v.DOB)
}
