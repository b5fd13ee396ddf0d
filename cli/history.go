package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (s *Shell) newHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history <name>",
		Short: "Show the vaccination history of an individual",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := s.registry(cmd.Context())
			if err != nil {
				return err
			}
			name := args[0]
			records, err := rt.Registry.GetIndividualVaccinationHistory(cmd.Context(), name)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				return NewExitError(ExitFailure, ErrCodeNoHistory,
					fmt.Sprintf("%s is not in the registry or has no vaccination records.", name))
			}
			return s.formatter(cmd).Success(HistoryView{Name: name, Records: records})
		},
	}
}
