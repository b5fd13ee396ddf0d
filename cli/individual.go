package cli

import (
	"fmt"

	"github.com/goliatone/go-immunization/pkg/types"
	"github.com/spf13/cobra"
)

func (s *Shell) newIndividualCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "individual",
		Short: "Manage registered individuals",
	}
	cmd.AddCommand(s.newIndividualAddCommand())
	cmd.AddCommand(s.newIndividualDeleteCommand())
	cmd.AddCommand(s.newIndividualShowCommand())
	cmd.AddCommand(s.newIndividualListCommand())
	return cmd
}

func (s *Shell) newIndividualAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <dob>",
		Short: "Add an individual or replace their date of birth",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := s.registry(cmd.Context())
			if err != nil {
				return err
			}
			name, dob := args[0], args[1]
			if err := rt.Registry.AddIndividual(cmd.Context(), types.Individual{Name: name, DOB: dob}); err != nil {
				return err
			}
			return s.formatter(cmd).Success(Confirmation{
				Message: fmt.Sprintf("%s has been added to the registry.", name),
				Name:    name,
			})
		},
	}
}

func (s *Shell) newIndividualDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete an individual and all of their vaccination records",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := s.registry(cmd.Context())
			if err != nil {
				return err
			}
			name := args[0]
			if err := rt.Registry.DeleteIndividual(cmd.Context(), name); err != nil {
				return err
			}
			return s.formatter(cmd).Success(Confirmation{
				Message: fmt.Sprintf("%s has been deleted from the registry.", name),
				Name:    name,
			})
		},
	}
}

func (s *Shell) newIndividualShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a registered individual",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := s.registry(cmd.Context())
			if err != nil {
				return err
			}
			individual, err := rt.Registry.GetIndividual(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return s.formatter(cmd).Success(IndividualView{Individual: *individual})
		},
	}
}

func (s *Shell) newIndividualListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered individuals",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := s.registry(cmd.Context())
			if err != nil {
				return err
			}
			individuals, err := rt.Registry.ListIndividuals(cmd.Context())
			if err != nil {
				return err
			}
			return s.formatter(cmd).Success(IndividualsView{Individuals: individuals})
		},
	}
}
