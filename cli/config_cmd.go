package cli

import (
	"fmt"

	"github.com/goliatone/go-print"
	"github.com/spf13/cobra"
)

func (s *Shell) newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := s.registry(cmd.Context())
			if err != nil {
				return err
			}
			if s.opts.Format != "text" {
				return s.formatter(cmd).Success(rt.Config)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), print.MaybeHighlightJSON(rt.Config))
			return err
		},
	}
}
