// Package sourcedetail provides the candidate source view for the report
// browser.
package sourcedetail

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/wikifinder/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wikifinder/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wikifinder/internal/core/domain"
	"github.com/custodia-labs/wikifinder/internal/core/ports/driving"
)

// View lists candidate sources for the selected claim and offers the
// copy-citation and open-in-browser actions on them.
type View struct {
	styles  *styles.Styles
	actions driving.ResultActionService

	claim    domain.Claim
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new source detail view.
func NewView(s *styles.Styles, actions driving.ResultActionService) *View {
	return &View{
		styles:  s,
		actions: actions,
	}
}

// SetClaim sets the claim whose sources are listed and resets the cursor.
func (v *View) SetClaim(claim domain.Claim) {
	v.claim = claim
	v.selected = 0
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the source view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.claim.Sites)-1 {
			v.selected++
		}
	case "c":
		if len(v.claim.Sites) > 0 && v.selected < len(v.claim.Sites) {
			return v, v.copyCitation(v.claim.Sites[v.selected])
		}
	case "o":
		if len(v.claim.Sites) > 0 && v.selected < len(v.claim.Sites) {
			return v, v.openURL(v.claim.Sites[v.selected].URL)
		}
	}

	return v, nil
}

// copyCitation returns a command that copies the source's citation fragment.
// Clipboard failures are reported via the message, never fatal.
func (v *View) copyCitation(match domain.SourceMatch) tea.Cmd {
	return func() tea.Msg {
		if v.actions == nil {
			return messages.CitationCopied{Err: fmt.Errorf("action service not available")}
		}
		err := v.actions.CopyCitation(context.Background(), &match)
		return messages.CitationCopied{Citation: match.Citation(), Err: err}
	}
}

// openURL returns a command that opens the source in the default browser.
func (v *View) openURL(url string) tea.Cmd {
	return func() tea.Msg {
		if v.actions == nil {
			return messages.URLOpened{URL: url, Err: fmt.Errorf("action service not available")}
		}
		err := v.actions.OpenURL(context.Background(), url)
		return messages.URLOpened{URL: url, Err: err}
	}
}

// View renders the source list with the selected source's detail below it.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Candidate sources"))
	b.WriteString("\n\n")

	claimText := strings.Join(strings.Fields(v.claim.Text), " ")
	b.WriteString(v.styles.Quote.Render(claimText))
	b.WriteString("\n\n")

	if len(v.claim.Sites) == 0 {
		b.WriteString(v.styles.Muted.Render("No candidate sources were found for this claim."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	for i := range v.claim.Sites {
		b.WriteString(v.renderSource(i, &v.claim.Sites[i]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderDetail(&v.claim.Sites[v.selected]))
	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

func (v *View) renderSource(index int, match *domain.SourceMatch) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	title := match.Title
	maxTitleLen := v.width - 6
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	if index == v.selected {
		return v.styles.Selected.Render(indicator + title)
	}
	return v.styles.Normal.Render(indicator + title)
}

// renderDetail renders URL, snippet and matched text for the selected source.
func (v *View) renderDetail(match *domain.SourceMatch) string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render(match.URL))
	b.WriteString("\n")
	if match.Snippet != "" {
		b.WriteString(v.styles.Muted.Render(match.Snippet))
		b.WriteString("\n")
	}
	if match.MatchedText != "" {
		b.WriteString(v.styles.Quote.Render(match.MatchedText))
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) renderHelp() string {
	return v.styles.Help.Render("[c] copy citation  [o] open in browser  [j/k] move  [esc] back  [q] quit")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// SelectedIndex returns the currently selected source index.
func (v *View) SelectedIndex() int {
	return v.selected
}
