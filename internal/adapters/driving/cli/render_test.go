package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRenderTest(r *mockReportService) func() {
	oldReports := reportService
	reportService = r
	return func() {
		reportService = oldReports
		renderOutPath = ""
	}
}

func TestRenderCmd_Use(t *testing.T) {
	assert.Equal(t, "render [results]", renderCmd.Use)
}

func TestRenderCmd_Executes(t *testing.T) {
	reports := &mockReportService{report: testReport()}
	cleanup := setupRenderTest(reports)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"render", "results.json"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "results.html", reports.htmlPath)
	assert.Contains(t, buf.String(), "Report written to results.html")
}

func TestRenderCmd_ExplicitOutPath(t *testing.T) {
	reports := &mockReportService{report: testReport()}
	cleanup := setupRenderTest(reports)
	defer cleanup()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"render", "results.json", "--out", "review.html"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "review.html", reports.htmlPath)
}

func TestRenderCmd_LoadFails(t *testing.T) {
	reports := &mockReportService{loadErr: errors.New("not found")}
	cleanup := setupRenderTest(reports)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"render", "results.json"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "load results")
}

func TestHTMLPathFor(t *testing.T) {
	assert.Equal(t, "results.html", htmlPathFor("results.json"))
	assert.Equal(t, "out/run2.html", htmlPathFor("out/run2.json"))
	assert.Equal(t, "results.dat.html", htmlPathFor("results.dat"))
}
