package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var prepareDryRun bool

var prepareCmd = &cobra.Command{
	Use:   "prepare [dump]",
	Short: "Build the term dictionary from a Wikipedia dump",
	Long: `Streams the dump once and records each token's document frequency.
The dictionary drives keyword selection during find, so prepare must run
before the first find over a new dump.

The dump may be a plain XML export or a .bz2 compressed one. With
--dry-run the dictionary is built in memory and discarded, which reports
the stats without touching the stored dictionary.`,
	Args: cobra.ExactArgs(1),
	RunE: runPrepare,
}

func init() {
	prepareCmd.Flags().BoolVar(&prepareDryRun, "dry-run", false,
		"report stats without updating the stored dictionary")
	rootCmd.AddCommand(prepareCmd)
}

func runPrepare(cmd *cobra.Command, args []string) error {
	if newPreparer == nil {
		return errors.New("prepare service not configured")
	}

	preparer, err := newPreparer(args[0], prepareDryRun)
	if err != nil {
		return fmt.Errorf("open dump: %w", err)
	}

	stats, err := preparer.Prepare(context.Background())
	if err != nil {
		return fmt.Errorf("prepare failed: %w", err)
	}

	cmd.Printf("Dictionary built: %d articles, %d distinct tokens\n",
		stats.Articles, stats.Tokens)
	return nil
}
