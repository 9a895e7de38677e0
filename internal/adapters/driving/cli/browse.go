package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wikifinder/internal/adapters/driving/tui"
)

// runBrowser starts the TUI over a report. Swapped out in tests.
var runBrowser = func(app *tui.App) error {
	return app.Run()
}

var browseCmd = &cobra.Command{
	Use:   "browse [results]",
	Short: "Review a saved result set in the terminal",
	Long: `Opens an interactive browser over a saved result set. Navigate from
articles to claims to candidate sources, copy citation fragments to the
clipboard and open source pages in the default browser.`,
	Args: cobra.ExactArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if reportService == nil || actionService == nil {
		return errors.New("browse services not configured")
	}

	report, err := reportService.Load(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("load results: %w", err)
	}

	app, err := tui.NewApp(tui.NewPorts(actionService), report)
	if err != nil {
		return fmt.Errorf("start browser: %w", err)
	}
	return runBrowser(app)
}
