package services

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/custodia-labs/wikifinder/internal/core/domain"
	"github.com/custodia-labs/wikifinder/internal/core/ports/driving"
)

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// Ensure ResultActionService implements the interface.
var _ driving.ResultActionService = (*ResultActionService)(nil)

// ResultActionService provides actions on report entries.
type ResultActionService struct{}

// NewResultActionService creates a new result action service.
func NewResultActionService() *ResultActionService {
	return &ResultActionService{}
}

// CopyCitation copies the source's citation fragment to the system
// clipboard. Failure is advisory: the UI shows a status message and
// carries on, it never aborts the report view.
func (s *ResultActionService) CopyCitation(_ context.Context, match *domain.SourceMatch) error {
	if match == nil {
		return fmt.Errorf("source match is nil")
	}
	return copyToClipboard(match.Citation())
}

// OpenURL opens a source URL in the default browser.
func (s *ResultActionService) OpenURL(_ context.Context, url string) error {
	if url == "" {
		return fmt.Errorf("url is empty")
	}
	return openURL(url)
}

// copyToClipboard copies text to the system clipboard using OS-specific commands.
func copyToClipboard(text string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case osDarwin:
		cmd = exec.Command("pbcopy")
	case osLinux:
		// Try xclip first, fall back to xsel
		if _, err := exec.LookPath("xclip"); err == nil {
			cmd = exec.Command("xclip", "-selection", "clipboard")
		} else if _, err := exec.LookPath("xsel"); err == nil {
			cmd = exec.Command("xsel", "--clipboard", "--input")
		} else {
			return fmt.Errorf("%w: install xclip or xsel", domain.ErrClipboardUnavailable)
		}
	case osWindows:
		cmd = exec.Command("cmd", "/c", "clip")
	default:
		return fmt.Errorf("%w: unsupported platform %s", domain.ErrClipboardUnavailable, runtime.GOOS)
	}

	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrClipboardUnavailable, err)
	}
	return nil
}

// openURL opens a URL with the platform's default handler.
func openURL(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case osDarwin:
		cmd = exec.Command("open", url)
	case osLinux:
		cmd = exec.Command("xdg-open", url)
	case osWindows:
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
