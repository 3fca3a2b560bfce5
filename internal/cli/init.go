// init.go implements the "rehearse init" command.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rehearse-dev/rehearse/internal/bank"
	"github.com/rehearse-dev/rehearse/internal/config"
)

const questionsFile = "questions.yaml"

func newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize rehearse in the current project",
		Long: `Create .rehearse/config.yaml with default settings and
.rehearse/questions.yaml holding the built-in question bank, ready to edit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := projectRoot(cmd)
			if err != nil {
				return err
			}
			return runInit(cmd, dir, force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration")
	return cmd
}

func runInit(cmd *cobra.Command, dir string, force bool) error {
	out := cmd.OutOrStdout()

	if _, err := os.Stat(config.Path(dir)); err == nil && !force {
		return errors.New(".rehearse/config.yaml already exists; use --force to overwrite")
	}

	cfg := config.DefaultConfig()
	cfg.Bank.Path = filepath.Join(config.Dir, questionsFile)
	if err := config.WriteConfig(dir, cfg); err != nil {
		return err
	}

	data, err := bank.Marshal(bank.Default())
	if err != nil {
		return err
	}
	bankPath := filepath.Join(dir, cfg.Bank.Path)
	if err := os.WriteFile(bankPath, data, 0644); err != nil {
		return fmt.Errorf("writing question bank: %w", err)
	}

	if err := ensureGitignore(dir); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to set up .gitignore: %v\n", err)
	}

	fmt.Fprintf(out, "Created %s\n", config.Path(dir))
	fmt.Fprintf(out, "Created %s\n", bankPath)
	fmt.Fprintln(out, "Edit the questions, then run: rehearse practice")
	return nil
}

// ensureGitignore keeps the event log and exported reports out of git.
// config.yaml and questions.yaml are meant to be committed.
func ensureGitignore(dir string) error {
	gitignorePath := filepath.Join(dir, ".gitignore")

	requiredEntries := []string{
		".env",
		".rehearse/log.jsonl",
		".rehearse/reports/",
	}

	existing := ""
	if data, err := os.ReadFile(gitignorePath); err == nil {
		existing = string(data)
	}

	var missing []string
	for _, entry := range requiredEntries {
		if !strings.Contains(existing, entry) {
			missing = append(missing, entry)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var toAppend strings.Builder
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		toAppend.WriteString("\n")
	}
	if existing != "" {
		toAppend.WriteString("\n# Added by rehearse init\n")
	}
	for _, entry := range missing {
		toAppend.WriteString(entry + "\n")
	}

	f, err := os.OpenFile(gitignorePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening .gitignore: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(toAppend.String()); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}
	return nil
}
