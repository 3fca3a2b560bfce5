// questions.go implements the "rehearse questions" listing.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newQuestionsCmd() *cobra.Command {
	var (
		bankPath     string
		showKeywords bool
	)
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List the questions in the bank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBank(cmd, bankPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, q := range b.Questions {
				fmt.Fprintf(out, "%2d. [%s] %s (%d keywords)\n", i+1, q.ID, q.Text, len(q.Keywords))
				if showKeywords {
					fmt.Fprintf(out, "    %s\n", strings.Join(q.Keywords, ", "))
				}
			}
			fmt.Fprintf(out, "\n%d questions, %d keywords\n", b.Len(), b.TotalKeywords())
			return nil
		},
	}
	cmd.Flags().StringVar(&bankPath, "bank", "", "Question bank file (YAML or JSON)")
	cmd.Flags().BoolVar(&showKeywords, "keywords", false, "Show each question's keywords")
	return cmd
}
