// validate.go implements the "rehearse validate" command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rehearse-dev/rehearse/internal/bank"
	"github.com/rehearse-dev/rehearse/internal/config"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [FILE]",
		Short: "Check a question bank file",
		Long: `Load a question bank and report every problem found. Without FILE the
bank configured in .rehearse/config.yaml is checked, or the built-in
bank when none is configured.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				root, err := projectRoot(cmd)
				if err != nil {
					return err
				}
				cfg, err := config.Load(root)
				if err != nil {
					return err
				}
				path = cfg.BankPath(root)
			}

			b, err := bank.LoadOrDefault(path)
			if err != nil {
				return err
			}
			if path == "" {
				path = "built-in bank"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %s (%d questions, %d keywords)\n", path, b.Len(), b.TotalKeywords())
			return nil
		},
	}
}
