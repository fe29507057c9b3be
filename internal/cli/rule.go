package cli

import (
	"fmt"

	"github.com/gork-labs/strcalc/pkg/calc"
	"github.com/spf13/cobra"
)

func newRuleCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rule input...",
		Short: "Show which rule each input selects",
		Long: `Rule prints the rule each argument selects. The two-character sequence \n
in an argument is read as a newline. Inputs starting with "-" must follow
"--" so they are not read as flags:

  strcalc rule -- -2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				in := unescapeNewlines(arg)
				kind := calc.Select(in, a.opts...).Kind()
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%q\t%s\n", in, kind); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), Version)
			return err
		},
	}
}
