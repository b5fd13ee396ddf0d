package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (s *Shell) newVaccinationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vaccination",
		Aliases: []string{"vax"},
		Short:   "Manage vaccination records",
	}
	cmd.AddCommand(s.newVaccinationAddCommand())
	cmd.AddCommand(s.newVaccinationUpdateCommand())
	cmd.AddCommand(s.newVaccinationDeleteCommand())
	return cmd
}

func (s *Shell) newVaccinationAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <vaccine> <date>",
		Short: "Record a vaccination for a registered individual",
		Args:  usageArgs(cobra.ExactArgs(3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := s.registry(cmd.Context())
			if err != nil {
				return err
			}
			name, vaccine, date := args[0], args[1], args[2]
			if _, err := rt.Registry.AddIndividualVaccination(cmd.Context(), name, vaccine, date); err != nil {
				return err
			}
			return s.formatter(cmd).Success(Confirmation{
				Message: fmt.Sprintf("Vaccination record added for %s.", name),
				Name:    name,
				Vaccine: vaccine,
			})
		},
	}
}

func (s *Shell) newVaccinationUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update <name> <vaccine> <date>",
		Short: "Change the date of every matching vaccination record",
		Args:  usageArgs(cobra.ExactArgs(3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := s.registry(cmd.Context())
			if err != nil {
				return err
			}
			name, vaccine, date := args[0], args[1], args[2]
			change, err := rt.Registry.UpdateIndividualVaccination(cmd.Context(), name, vaccine, date)
			if err != nil {
				return err
			}
			return s.formatter(cmd).Success(Confirmation{
				Message:  fmt.Sprintf("Vaccination record updated for %s.", name),
				Name:     name,
				Vaccine:  vaccine,
				Affected: &change.Affected,
			})
		},
	}
}

func (s *Shell) newVaccinationDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name> <vaccine>",
		Short: "Delete every matching vaccination record",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := s.registry(cmd.Context())
			if err != nil {
				return err
			}
			name, vaccine := args[0], args[1]
			change, err := rt.Registry.DeleteIndividualVaccination(cmd.Context(), name, vaccine)
			if err != nil {
				return err
			}
			return s.formatter(cmd).Success(Confirmation{
				Message:  fmt.Sprintf("Vaccination record for %s deleted for %s.", vaccine, name),
				Name:     name,
				Vaccine:  vaccine,
				Affected: &change.Affected,
			})
		},
	}
}
