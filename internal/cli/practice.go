// practice.go implements the "rehearse practice" command.
package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/rehearse-dev/rehearse/internal/bank"
	"github.com/rehearse-dev/rehearse/internal/config"
	"github.com/rehearse-dev/rehearse/internal/log"
	"github.com/rehearse-dev/rehearse/internal/session"
	"github.com/rehearse-dev/rehearse/internal/tui"
	"github.com/rehearse-dev/rehearse/internal/tui/app"
)

type practiceOptions struct {
	bankPath  string
	timeLimit time.Duration
	plain     bool
	exportDir string
}

func newPracticeCmd() *cobra.Command {
	var opts practiceOptions
	cmd := &cobra.Command{
		Use:   "practice",
		Short: "Run a timed practice session",
		Long: `Ask every question in the bank in order. Each question has its own
time limit; when it runs out, whatever you typed so far is submitted.

In a terminal this opens the full-screen interface. With --plain, or when
input or output is not a terminal, answers are read one per line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPractice(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.bankPath, "bank", "", "Question bank file (YAML or JSON)")
	cmd.Flags().DurationVar(&opts.timeLimit, "time-limit", 0, "Time allowed per question, e.g. 90s (default from config, 60s)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Line-based mode without the full-screen interface")
	cmd.Flags().StringVar(&opts.exportDir, "export-dir", "", "Directory for the CSV report (plain mode exports only when set)")
	return cmd
}

// practiceEnv is everything a practice run needs, resolved from config,
// environment and flags.
type practiceEnv struct {
	cfg       *config.Config
	bank      *bank.Bank
	logger    *log.Logger
	exportDir string
}

func loadPracticeEnv(cmd *cobra.Command, opts practiceOptions) (*practiceEnv, error) {
	root, err := projectRoot(cmd)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	if opts.bankPath != "" {
		// Flag paths are relative to the working directory, not --dir.
		if cfg.Bank.Path, err = filepath.Abs(opts.bankPath); err != nil {
			return nil, fmt.Errorf("resolving %s: %w", opts.bankPath, err)
		}
	}
	if opts.timeLimit > 0 {
		cfg.Session.TimeLimit = limitSeconds(opts.timeLimit)
	}

	b, err := bank.LoadOrDefault(cfg.BankPath(root))
	if err != nil {
		return nil, err
	}

	env := &practiceEnv{cfg: cfg, bank: b, exportDir: cfg.ExportDir(root)}
	if opts.exportDir != "" {
		env.exportDir = opts.exportDir
	}
	if cfg.Log.Enabled {
		logger, err := log.NewLogger(root)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: event log disabled: %v\n", err)
		} else {
			env.logger = logger
		}
	}
	return env, nil
}

// limitSeconds converts a --time-limit value to whole seconds, rounding up
// so that a positive limit never becomes zero.
func limitSeconds(d time.Duration) int {
	return int((d + time.Second - 1) / time.Second)
}

func (env *practiceEnv) newSession(cmd *cobra.Command) (*session.Session, error) {
	opts := []session.Option{session.WithTimeLimit(env.cfg.TimeLimit())}
	if env.logger != nil {
		opts = append(opts, session.WithObserver(log.SessionObserver{
			Logger: env.logger,
			Warn:   cmd.ErrOrStderr(),
		}))
	}
	return session.New(env.bank, opts...)
}

func runPractice(cmd *cobra.Command, opts practiceOptions) error {
	env, err := loadPracticeEnv(cmd, opts)
	if err != nil {
		return err
	}
	s, err := env.newSession(cmd)
	if err != nil {
		return err
	}

	if opts.plain || !tui.IsTTY() || !tui.IsInputTTY() {
		runner := tui.NewFallbackRunner(s, cmd.InOrStdin(), cmd.OutOrStdout())
		runner.Logger = env.logger
		if opts.exportDir != "" {
			runner.ExportDir = opts.exportDir
		}
		_, err := runner.Run(cmd.Context())
		return err
	}

	return tui.Run(app.New(s, app.Options{
		ExportDir:    env.exportDir,
		TickInterval: env.cfg.TickInterval(),
		Logger:       env.logger,
	}))
}
