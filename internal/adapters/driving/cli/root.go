// Package cli implements the wikifinder command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/wikifinder/internal/core/ports/driven"
	"github.com/custodia-labs/wikifinder/internal/core/ports/driving"
	"github.com/custodia-labs/wikifinder/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// verboseFlag enables debug logging on stderr.
var verboseFlag bool

// Services the commands call. Injected by SetServices before Execute;
// commands fail with a clear error when their service is missing.
var (
	newFinder     func(dumpPath string) (driving.FinderService, error)
	newPreparer   func(dumpPath string, dryRun bool) (driving.PrepareService, error)
	reportService driving.ReportService
	actionService driving.ResultActionService
	configStore   driven.ConfigStore
)

// Services bundles everything the commands need.
type Services struct {
	// NewFinder builds a finder pipeline over the dump at dumpPath.
	NewFinder func(dumpPath string) (driving.FinderService, error)

	// NewPreparer builds a dictionary builder over the dump at dumpPath.
	// With dryRun the dictionary is built in memory and discarded.
	NewPreparer func(dumpPath string, dryRun bool) (driving.PrepareService, error)

	Reports driving.ReportService
	Actions driving.ResultActionService
	Config  driven.ConfigStore
}

// SetServices injects the services the commands delegate to.
func SetServices(s Services) {
	newFinder = s.NewFinder
	newPreparer = s.NewPreparer
	reportService = s.Reports
	actionService = s.Actions
	configStore = s.Config
}

var rootCmd = &cobra.Command{
	Use:   "wikifinder",
	Short: "Find web sources for unsubstantiated Wikipedia claims",
	Long: `wikifinder scans a Wikipedia XML dump for claims marked with the
"citation needed" template, searches the web for pages that might
substantiate them, and renders the candidates as an HTML report for
human review.

Typical workflow:
  wikifinder prepare dump.xml.bz2     build the term dictionary
  wikifinder find dump.xml.bz2        find candidate sources
  wikifinder render results.json      render the HTML report
  wikifinder browse results.json      review results in the terminal`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"print pipeline progress to stderr")
}

// Execute runs the root command with the given build version.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	return rootCmd.Execute()
}
