package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var renderOutPath string

var renderCmd = &cobra.Command{
	Use:   "render [results]",
	Short: "Render a saved result set as an HTML report",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutPath, "out", "o", "",
		"output path (default: results path with .html extension)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	report, err := reportService.Load(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("load results: %w", err)
	}

	out := renderOutPath
	if out == "" {
		out = htmlPathFor(args[0])
	}
	if err := reportService.WriteHTML(report, out); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	cmd.Printf("Report written to %s\n", out)
	return nil
}

func htmlPathFor(resultsPath string) string {
	if base, ok := strings.CutSuffix(resultsPath, ".json"); ok {
		return base + ".html"
	}
	return resultsPath + ".html"
}
