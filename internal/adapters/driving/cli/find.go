package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/wikifinder/internal/core/ports/driving"
)

var (
	findMaxArticles int
	findMaxSites    int
	findOutPath     string
	findHTMLPath    string
)

var findCmd = &cobra.Command{
	Use:   "find [dump]",
	Short: "Find candidate web sources for claims in a dump",
	Long: `Streams the dump, extracts claims marked "citation needed", searches
the web for each claim's keyword query, fetches the candidate pages and
keeps the ones whose text resembles the claim.

Results are saved as JSON for later rendering or browsing, and the HTML
report is written alongside them. Pass --html "" to skip the report.`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().IntVar(&findMaxArticles, "max-articles", 0,
		"stop after this many articles with claims (0 = no limit)")
	findCmd.Flags().IntVar(&findMaxSites, "max-sites", 0,
		"candidate pages to check per claim (0 = provider default)")
	findCmd.Flags().StringVarP(&findOutPath, "out", "o", "results.json",
		"path for the JSON result set")
	findCmd.Flags().StringVar(&findHTMLPath, "html", "report.html",
		"path for the HTML report (empty to skip)")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	if newFinder == nil || reportService == nil {
		return errors.New("finder service not configured")
	}

	finder, err := newFinder(args[0])
	if err != nil {
		return fmt.Errorf("open dump: %w", err)
	}

	opts := driving.FinderOptions{
		MaxArticles:      findMaxArticles,
		MaxSitesPerClaim: findMaxSites,
	}
	report, err := finder.Find(context.Background(), opts)
	if err != nil {
		return fmt.Errorf("find failed: %w", err)
	}
	report.RunID = uuid.NewString()

	if err := reportService.Save(context.Background(), findOutPath, report); err != nil {
		return fmt.Errorf("save results: %w", err)
	}

	status := finder.Status()
	cmd.Printf("Processed %d articles, %d claims, %d sources matched\n",
		status.ArticlesProcessed, status.ClaimsProcessed, status.SitesMatched)
	cmd.Printf("Results written to %s\n", findOutPath)

	if findHTMLPath != "" {
		if err := reportService.WriteHTML(report, findHTMLPath); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		cmd.Printf("Report written to %s\n", findHTMLPath)
	}
	return nil
}
