// ask.go implements the "rehearse ask" single-question mode.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rehearse-dev/rehearse/internal/bank"
	"github.com/rehearse-dev/rehearse/internal/config"
	"github.com/rehearse-dev/rehearse/internal/evaluate"
	"github.com/rehearse-dev/rehearse/internal/report"
)

func newAskCmd() *cobra.Command {
	var (
		bankPath string
		answer   string
	)
	cmd := &cobra.Command{
		Use:   "ask [N|ID]",
		Short: "Score a single answer without a timer",
		Long: `Show one question (the first by default), read an answer from --answer
or from one line of standard input, and print the keyword feedback
together with the sample answer.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := "1"
			if len(args) == 1 {
				ref = args[0]
			}
			return runAsk(cmd, bankPath, ref, answer, cmd.Flags().Changed("answer"))
		},
	}
	cmd.Flags().StringVar(&bankPath, "bank", "", "Question bank file (YAML or JSON)")
	cmd.Flags().StringVar(&answer, "answer", "", "Answer text (default: read one line from stdin)")
	return cmd
}

func runAsk(cmd *cobra.Command, bankPath, ref, answer string, haveAnswer bool) error {
	b, err := loadBank(cmd, bankPath)
	if err != nil {
		return err
	}
	idx, q, err := b.Lookup(ref)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Question %d: %s\n", idx+1, q.Text)

	if !haveAnswer {
		fmt.Fprint(out, "Your answer: ")
		answer, err = readLine(cmd.InOrStdin())
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	fb := evaluate.Evaluate(answer, q.Keywords)
	fmt.Fprintln(out, "Feedback:")
	for _, label := range fb.Labels() {
		fmt.Fprintf(out, "  %s\n", label)
	}
	fmt.Fprintf(out, "Score: %d/%d keywords covered\n", fb.CoveredCount(), len(fb))
	if len(fb) > 0 {
		tier := report.ClassifyRatio(float64(fb.CoveredCount()) / float64(len(fb)))
		fmt.Fprintln(out, tier.Message())
	}
	fmt.Fprintf(out, "Sample answer: %s\n", q.SampleAnswer)
	return nil
}

// readLine reads a single answer line. EOF without input is an empty answer.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// loadBank resolves the bank from --bank, then config, then the built-in one.
func loadBank(cmd *cobra.Command, bankPath string) (*bank.Bank, error) {
	if bankPath != "" {
		return bank.Load(bankPath)
	}
	root, err := projectRoot(cmd)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	return bank.LoadOrDefault(cfg.BankPath(root))
}
