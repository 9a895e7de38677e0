// Package claims provides the claim list view for the report browser.
package claims

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/wikifinder/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wikifinder/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wikifinder/internal/core/domain"
)

// View lists the claims of the selected article.
type View struct {
	styles   *styles.Styles
	article  domain.Article
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new claim list view.
func NewView(s *styles.Styles) *View {
	return &View{styles: s}
}

// SetArticle sets the article whose claims are listed and resets the cursor.
func (v *View) SetArticle(article domain.Article) {
	v.article = article
	v.selected = 0
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the claim list.
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
		if v.selected < len(v.article.Claims)-1 {
			v.selected++
		}
	case "enter":
		if len(v.article.Claims) > 0 && v.selected < len(v.article.Claims) {
			claim := v.article.Claims[v.selected]
			return v, func() tea.Msg {
				return messages.ClaimSelected{Claim: claim}
			}
		}
	}

	return v, nil
}

// View renders the claim list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(v.article.Title))
	b.WriteString("\n\n")

	if len(v.article.Claims) == 0 {
		b.WriteString(v.styles.Muted.Render("No unsourced claims were found in this article."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	for i := range v.article.Claims {
		b.WriteString(v.renderClaim(i, &v.article.Claims[i]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

func (v *View) renderClaim(index int, claim *domain.Claim) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	sites := fmt.Sprintf("%d sources", len(claim.Sites))
	if len(claim.Sites) == 1 {
		sites = "1 source"
	}

	text := strings.Join(strings.Fields(claim.Text), " ")
	maxTextLen := v.width - len(sites) - 8
	if maxTextLen < 20 {
		maxTextLen = 20
	}
	if len(text) > maxTextLen {
		text = text[:maxTextLen-3] + "..."
	}

	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("%s%s  (%s)", indicator, text, sites))
	}
	return v.styles.Normal.Render(indicator+text+"  ") +
		v.styles.Muted.Render("("+sites+")")
}

func (v *View) renderHelp() string {
	return v.styles.Help.Render("[enter] sources  [j/k] move  [esc] back  [q] quit")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// SelectedIndex returns the currently selected claim index.
func (v *View) SelectedIndex() int {
	return v.selected
}
