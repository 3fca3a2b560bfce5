// reports.go implements the "rehearse reports" command for listing and
// pruning exported CSV reports.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rehearse-dev/rehearse/internal/cleanup"
	"github.com/rehearse-dev/rehearse/internal/config"
)

func newReportsCmd() *cobra.Command {
	var (
		keep      int
		olderThan time.Duration
		dryRun    bool
	)
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "List or prune exported session reports",
		Long: `List the CSV reports in the export directory, newest last.
With --keep or --older-than, delete the reports outside that window.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := projectRoot(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.Load(root)
			if err != nil {
				return err
			}
			dir := cfg.ExportDir(root)
			out := cmd.OutOrStdout()

			var pruned []string
			switch {
			case cmd.Flags().Changed("keep"):
				pruned, err = cleanup.PruneKeepRecent(dir, keep, dryRun)
			case olderThan > 0:
				pruned, err = cleanup.PruneByAge(dir, olderThan, time.Now(), dryRun)
			default:
				return listReports(cmd, dir)
			}
			if err != nil {
				return err
			}

			verb := "Removed"
			if dryRun {
				verb = "Would remove"
			}
			for _, name := range pruned {
				fmt.Fprintf(out, "%s %s\n", verb, name)
			}
			fmt.Fprintf(out, "%s %d report(s)\n", verb, len(pruned))
			return nil
		},
	}
	cmd.Flags().IntVar(&keep, "keep", 0, "Keep only the N most recent reports")
	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "Remove reports exported longer ago than this, e.g. 720h")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be removed without deleting")
	return cmd
}

func listReports(cmd *cobra.Command, dir string) error {
	files, err := cleanup.ListReports(dir)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(files) == 0 {
		fmt.Fprintf(out, "No reports in %s\n", dir)
		return nil
	}
	for _, f := range files {
		fmt.Fprintf(out, "%s  %s\n", f.ExportedAt.Local().Format("2006-01-02 15:04"), f.Name)
	}
	fmt.Fprintf(out, "\n%d report(s) in %s\n", len(files), dir)
	return nil
}
